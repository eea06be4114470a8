package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/domain/club"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
)

func TestClubRepository_UniqueName(t *testing.T) {
	ctx := context.Background()
	repo := NewClubRepository(club.Club{ID: 7, Name: "Galatasaray"})

	created, err := repo.Create(ctx, club.Club{Name: "Fenerbahçe"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	_, err = repo.Create(ctx, club.Club{Name: "Galatasaray"})
	require.Error(t, err)
	assert.True(t, dberr.IsUniqueViolation(err))
	assert.Equal(t, 1, repo.Writes())
}

func TestFixtureRepository_FindByKey(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 5, 19, 0, 0, 0, time.UTC)
	repo := NewFixtureRepository()

	created, err := repo.Create(ctx, fixture.Fixture{LeagueSeasonID: 1, HomeClubSeasonID: 2, AwayClubSeasonID: 3, Date: &day})
	require.NoError(t, err)

	got, ok, err := repo.FindByKey(ctx, fixture.Key{LeagueSeasonID: 1, HomeClubSeasonID: 2, AwayClubSeasonID: 3})
	require.NoError(t, err)
	require.True(t, ok, "nil date matches any date")
	assert.Equal(t, created.ID, got.ID)

	other := day.AddDate(0, 0, 7)
	_, ok, err = repo.FindByKey(ctx, fixture.Key{LeagueSeasonID: 1, HomeClubSeasonID: 2, AwayClubSeasonID: 3, Date: &other})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.FindByKey(ctx, fixture.Key{LeagueSeasonID: 1, HomeClubSeasonID: 3, AwayClubSeasonID: 2, Date: &day})
	require.NoError(t, err)
	assert.False(t, ok, "home and away are not interchangeable")
}

func TestMatchEventRepository_Backfill(t *testing.T) {
	ctx := context.Background()
	minute := 23
	text := "45+2"
	repo := NewMatchEventRepository()

	_, err := repo.Create(ctx, matchevent.Event{FixtureID: 1, Minute: &minute})
	require.NoError(t, err)
	_, err = repo.Create(ctx, matchevent.Event{FixtureID: 1, MinuteText: &text})
	require.NoError(t, err)

	_, err = repo.Create(ctx, matchevent.Event{FixtureID: 1, MinuteText: &text})
	assert.True(t, dberr.IsUniqueViolation(err))

	missing, err := repo.CountMissingMinuteText(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), missing)

	updated, err := repo.BackfillMinuteText(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Equal(t, "23", *repo.List()[0].MinuteText)

	updated, err = repo.BackfillMinuteText(ctx)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestPlayerRepository_FindByLastName(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1998, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := NewPlayerRepository()

	first, err := repo.Create(ctx, player.Player{LastName: "Yılmaz"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, player.Player{LastName: "Yılmaz", DateOfBirth: &dob})
	require.NoError(t, err)

	got, ok, err := repo.FindByLastName(ctx, "Yılmaz", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)

	got, ok, err = repo.FindByLastName(ctx, "Yılmaz", &dob)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
}
