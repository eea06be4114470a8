package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/club"
	"github.com/riskibarqy/football-stats/internal/domain/league"
	"github.com/riskibarqy/football-stats/internal/domain/matchweek"
	"github.com/riskibarqy/football-stats/internal/domain/nation"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// ResolverOptions decide how the resolver treats names it cannot find.
type ResolverOptions struct {
	// DryRun hands out placeholder ids instead of creating rows.
	DryRun bool
	// CreateClubs creates unknown clubs. When false a miss is ErrUnresolved.
	CreateClubs bool
	// NormalizeNames folds club names with club.NormalizeName before lookup.
	NormalizeNames bool
}

// LeagueSeasonRef is the league season an import runs against, with the
// league's nation that newly created clubs inherit.
type LeagueSeasonRef struct {
	ID       int64
	LeagueID int64
	SeasonID int64
	NationID *int64
}

// ResolverCacheStats sums the memo counters of every entity kind resolved
// in one run.
type ResolverCacheStats struct {
	Hits    int
	Misses  int
	Entries int
}

// EntityResolver turns names and parent ids into stable identities. All
// results are memoised for the lifetime of the resolver, which is one run.
type EntityResolver struct {
	nations    nation.Repository
	seasons    season.Repository
	leagues    league.Repository
	clubs      club.Repository
	matchWeeks matchweek.Repository

	options      ResolverOptions
	placeholders id.Generator
	logger       *logging.Logger

	nationIDs       *cache.Memo[int64]
	seasonIDs       *cache.Memo[int64]
	leagueIDs       *cache.Memo[int64]
	leagueSeasonIDs *cache.Memo[LeagueSeasonRef]
	clubIDs         *cache.Memo[int64]
	clubSeasonIDs   *cache.Memo[int64]
	matchWeekIDs    *cache.Memo[int64]
}

func NewEntityResolver(
	repos ImportRepositories,
	options ResolverOptions,
	placeholders id.Generator,
	logger *logging.Logger,
) *EntityResolver {
	if placeholders == nil {
		placeholders = id.NewPlaceholderGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &EntityResolver{
		nations:         repos.Nations,
		seasons:         repos.Seasons,
		leagues:         repos.Leagues,
		clubs:           repos.Clubs,
		matchWeeks:      repos.MatchWeeks,
		options:         options,
		placeholders:    placeholders,
		logger:          logger,
		nationIDs:       cache.NewMemo[int64](),
		seasonIDs:       cache.NewMemo[int64](),
		leagueIDs:       cache.NewMemo[int64](),
		leagueSeasonIDs: cache.NewMemo[LeagueSeasonRef](),
		clubIDs:         cache.NewMemo[int64](),
		clubSeasonIDs:   cache.NewMemo[int64](),
		matchWeekIDs:    cache.NewMemo[int64](),
	}
}

// ClubName is the identity a raw club name resolves under.
func (r *EntityResolver) ClubName(raw string) string {
	name := strings.TrimSpace(raw)
	if r.options.NormalizeNames {
		name = club.NormalizeName(name)
	}
	return name
}

// ResolveClub returns the id of the club named name, creating it with
// nationID when allowed. An empty name or a miss without CreateClubs gives
// ErrUnresolved.
func (r *EntityResolver) ResolveClub(ctx context.Context, name string, nationID *int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityResolver.ResolveClub")
	defer span.End()

	name = r.ClubName(name)
	if name == "" {
		return 0, fmt.Errorf("%w: club name is empty", ErrUnresolved)
	}

	return r.clubIDs.GetOrLoad(ctx, name, func(ctx context.Context) (int64, error) {
		find := func(ctx context.Context) (int64, bool, error) {
			item, ok, err := r.clubs.FindByName(ctx, name)
			if err != nil {
				return 0, false, fmt.Errorf("find club %q: %w", name, err)
			}
			return item.ID, ok, nil
		}

		if !r.options.CreateClubs {
			clubID, ok, err := find(ctx)
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, fmt.Errorf("%w: club %q", ErrUnresolved, name)
			}
			return clubID, nil
		}

		return r.findOrCreate(ctx, "club", find, func(ctx context.Context) (int64, error) {
			item := club.Club{Name: name}
			if nationID != nil && !id.IsPlaceholder(*nationID) {
				item.NationID = nationID
			}
			created, err := r.clubs.Create(ctx, item)
			if err != nil {
				return 0, fmt.Errorf("create club %q: %w", name, err)
			}
			r.logger.DebugContext(ctx, "club created", "club_id", created.ID, "name", name)
			return created.ID, nil
		}, false)
	})
}

// FindClub looks a club up without ever creating it.
func (r *EntityResolver) FindClub(ctx context.Context, name string) (int64, bool, error) {
	name = r.ClubName(name)
	if name == "" {
		return 0, false, nil
	}
	if clubID, ok := r.clubIDs.Get(name); ok {
		return clubID, true, nil
	}

	item, ok, err := r.clubs.FindByName(ctx, name)
	if err != nil {
		return 0, false, fmt.Errorf("find club %q: %w", name, err)
	}
	if ok {
		r.clubIDs.Set(name, item.ID)
	}
	return item.ID, ok, nil
}

func (r *EntityResolver) ResolveClubSeason(ctx context.Context, clubID, leagueSeasonID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityResolver.ResolveClubSeason")
	defer span.End()

	if clubID == 0 || leagueSeasonID == 0 {
		return 0, fmt.Errorf("%w: club id and league season id are required", ErrInvalidInput)
	}

	key := memoKey(clubID, leagueSeasonID)
	return r.clubSeasonIDs.GetOrLoad(ctx, key, func(ctx context.Context) (int64, error) {
		return r.findOrCreate(ctx, "club season",
			func(ctx context.Context) (int64, bool, error) {
				item, ok, err := r.clubs.FindSeason(ctx, clubID, leagueSeasonID)
				if err != nil {
					return 0, false, fmt.Errorf("find club season %s: %w", key, err)
				}
				return item.ID, ok, nil
			},
			func(ctx context.Context) (int64, error) {
				created, err := r.clubs.CreateSeason(ctx, club.Season{ClubID: clubID, LeagueSeasonID: leagueSeasonID})
				if err != nil {
					return 0, fmt.Errorf("create club season %s: %w", key, err)
				}
				return created.ID, nil
			},
			id.IsPlaceholder(clubID) || id.IsPlaceholder(leagueSeasonID),
		)
	})
}

// ResolveLeagueSeason binds the league to the season. The league must
// already exist unless it is a dry-run placeholder.
func (r *EntityResolver) ResolveLeagueSeason(ctx context.Context, leagueID, seasonID int64) (LeagueSeasonRef, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityResolver.ResolveLeagueSeason")
	defer span.End()

	if leagueID == 0 || seasonID == 0 {
		return LeagueSeasonRef{}, fmt.Errorf("%w: league id and season id are required", ErrInvalidInput)
	}

	key := memoKey(leagueID, seasonID)
	return r.leagueSeasonIDs.GetOrLoad(ctx, key, func(ctx context.Context) (LeagueSeasonRef, error) {
		ref := LeagueSeasonRef{LeagueID: leagueID, SeasonID: seasonID}
		if !id.IsPlaceholder(leagueID) {
			item, ok, err := r.leagues.GetByID(ctx, leagueID)
			if err != nil {
				return LeagueSeasonRef{}, fmt.Errorf("get league %d: %w", leagueID, err)
			}
			if !ok {
				return LeagueSeasonRef{}, fmt.Errorf("%w: id=%d", ErrLeagueNotFound, leagueID)
			}
			ref.NationID = item.NationID
		}

		leagueSeasonID, err := r.findOrCreate(ctx, "league season",
			func(ctx context.Context) (int64, bool, error) {
				item, ok, err := r.leagues.FindSeason(ctx, leagueID, seasonID)
				if err != nil {
					return 0, false, fmt.Errorf("find league season %s: %w", key, err)
				}
				return item.ID, ok, nil
			},
			func(ctx context.Context) (int64, error) {
				created, err := r.leagues.CreateSeason(ctx, league.Season{LeagueID: leagueID, SeasonID: seasonID})
				if err != nil {
					return 0, fmt.Errorf("create league season %s: %w", key, err)
				}
				return created.ID, nil
			},
			id.IsPlaceholder(leagueID) || id.IsPlaceholder(seasonID),
		)
		if err != nil {
			return LeagueSeasonRef{}, err
		}
		ref.ID = leagueSeasonID
		return ref, nil
	})
}

// ResolveMatchWeek keeps the digits of raw as the week number. ok is false
// when raw has no digits, in which case nothing is created.
func (r *EntityResolver) ResolveMatchWeek(ctx context.Context, leagueSeasonID int64, raw string) (matchweek.MatchWeek, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityResolver.ResolveMatchWeek")
	defer span.End()

	weekNumber, ok := matchweek.ParseWeekNumber(raw)
	if !ok {
		return matchweek.MatchWeek{}, false, nil
	}

	key := memoKey(leagueSeasonID, int64(weekNumber))
	weekID, err := r.matchWeekIDs.GetOrLoad(ctx, key, func(ctx context.Context) (int64, error) {
		return r.findOrCreate(ctx, "match week",
			func(ctx context.Context) (int64, bool, error) {
				item, ok, err := r.matchWeeks.Find(ctx, leagueSeasonID, weekNumber)
				if err != nil {
					return 0, false, fmt.Errorf("find match week %s: %w", key, err)
				}
				return item.ID, ok, nil
			},
			func(ctx context.Context) (int64, error) {
				created, err := r.matchWeeks.Create(ctx, matchweek.MatchWeek{LeagueSeasonID: leagueSeasonID, WeekNumber: weekNumber})
				if err != nil {
					return 0, fmt.Errorf("create match week %s: %w", key, err)
				}
				return created.ID, nil
			},
			id.IsPlaceholder(leagueSeasonID),
		)
	})
	if err != nil {
		return matchweek.MatchWeek{}, false, err
	}

	return matchweek.MatchWeek{ID: weekID, LeagueSeasonID: leagueSeasonID, WeekNumber: weekNumber}, true, nil
}

func (r *EntityResolver) ResolveNation(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: nation name is required", ErrInvalidInput)
	}

	return r.nationIDs.GetOrLoad(ctx, name, func(ctx context.Context) (int64, error) {
		return r.findOrCreate(ctx, "nation",
			func(ctx context.Context) (int64, bool, error) {
				item, ok, err := r.nations.FindByName(ctx, name)
				if err != nil {
					return 0, false, fmt.Errorf("find nation %q: %w", name, err)
				}
				return item.ID, ok, nil
			},
			func(ctx context.Context) (int64, error) {
				created, err := r.nations.Create(ctx, nation.Nation{Name: name})
				if err != nil {
					return 0, fmt.Errorf("create nation %q: %w", name, err)
				}
				return created.ID, nil
			},
			false,
		)
	})
}

func (r *EntityResolver) ResolveSeason(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}

	return r.seasonIDs.GetOrLoad(ctx, name, func(ctx context.Context) (int64, error) {
		return r.findOrCreate(ctx, "season",
			func(ctx context.Context) (int64, bool, error) {
				item, ok, err := r.seasons.FindByName(ctx, name)
				if err != nil {
					return 0, false, fmt.Errorf("find season %q: %w", name, err)
				}
				return item.ID, ok, nil
			},
			func(ctx context.Context) (int64, error) {
				created, err := r.seasons.Create(ctx, season.Season{Name: name})
				if err != nil {
					return 0, fmt.Errorf("create season %q: %w", name, err)
				}
				return created.ID, nil
			},
			false,
		)
	})
}

// ResolveLeague finds or creates a league by name within a nation.
func (r *EntityResolver) ResolveLeague(ctx context.Context, name string, nationID int64) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	return r.leagueIDs.GetOrLoad(ctx, strconv.FormatInt(nationID, 10)+"|"+name, func(ctx context.Context) (int64, error) {
		return r.findOrCreate(ctx, "league",
			func(ctx context.Context) (int64, bool, error) {
				item, ok, err := r.leagues.FindByName(ctx, name, &nationID)
				if err != nil {
					return 0, false, fmt.Errorf("find league %q: %w", name, err)
				}
				return item.ID, ok, nil
			},
			func(ctx context.Context) (int64, error) {
				created, err := r.leagues.Create(ctx, league.League{Name: name, NationID: &nationID})
				if err != nil {
					return 0, fmt.Errorf("create league %q: %w", name, err)
				}
				return created.ID, nil
			},
			id.IsPlaceholder(nationID),
		)
	})
}

// findOrCreate is the shared lookup path. skipFind is set when a parent id
// is a dry-run placeholder, since storage cannot hold a child of it. A
// unique violation on create means another run won the race, so the row is
// looked up again.
func (r *EntityResolver) findOrCreate(
	ctx context.Context,
	kind string,
	find func(context.Context) (int64, bool, error),
	create func(context.Context) (int64, error),
	skipFind bool,
) (int64, error) {
	if !skipFind {
		found, ok, err := find(ctx)
		if err != nil {
			return 0, err
		}
		if ok {
			return found, nil
		}
	}

	if r.options.DryRun {
		placeholder := r.placeholders.Next()
		r.logger.DebugContext(ctx, "dry run placeholder", "kind", kind, "id", placeholder)
		return placeholder, nil
	}

	created, err := create(ctx)
	if err == nil {
		return created, nil
	}
	if !dberr.IsUniqueViolation(err) {
		return 0, err
	}

	r.logger.WarnContext(ctx, "create raced with another writer, looking up again", "kind", kind, "error", err)
	found, ok, findErr := find(ctx)
	if findErr != nil {
		return 0, errors.Join(err, findErr)
	}
	if !ok {
		return 0, err
	}
	return found, nil
}

func memoKey(a, b int64) string {
	return strconv.FormatInt(a, 10) + "|" + strconv.FormatInt(b, 10)
}

// CacheStats reports how many lookups the run memo answered without storage.
func (r *EntityResolver) CacheStats() ResolverCacheStats {
	var stats ResolverCacheStats
	addMemoStats(&stats, r.nationIDs)
	addMemoStats(&stats, r.seasonIDs)
	addMemoStats(&stats, r.leagueIDs)
	addMemoStats(&stats, r.leagueSeasonIDs)
	addMemoStats(&stats, r.clubIDs)
	addMemoStats(&stats, r.clubSeasonIDs)
	addMemoStats(&stats, r.matchWeekIDs)
	return stats
}

func addMemoStats[V any](stats *ResolverCacheStats, memo *cache.Memo[V]) {
	hits, misses := memo.Stats()
	stats.Hits += hits
	stats.Misses += misses
	stats.Entries += memo.Len()
}
