package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("clubs").
		Where(Eq("nation_id", int64(90)), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM clubs WHERE nation_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(90) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("clubs").
		Columns("name", "nation_id").
		Values("Galatasaray", int64(90)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO clubs (name, nation_id) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Galatasaray" || args[1] != int64(90) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("squad_memberships").
		Set("shirt_number", 10).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE squad_memberships SET shirt_number = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 10 || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NullAwareConditions(t *testing.T) {
	query, args, err := Select("id").
		From("leagues").
		Where(Eq("name", "Süper Lig"), NotDistinct("nation_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM leagues WHERE name = $1 AND nation_id IS NOT DISTINCT FROM $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != nil {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("table_name").
		From("information_schema.tables").
		Where(
			In("table_name", []any{"fixtures", "gk_perfs"}),
			Expr("date = ?::date", "2024-03-05"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT table_name FROM information_schema.tables WHERE table_name IN ($1, $2) AND date = $3::date"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "2024-03-05" {
		t.Fatalf("unexpected args: %+v", args)
	}

	empty, _, err := Select("id").From("fixtures").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build empty in query: %v", err)
	}
	if empty != "SELECT id FROM fixtures WHERE 1=0" {
		t.Fatalf("unexpected empty in query: %s", empty)
	}
}

func TestUpdateBuilder_BackfillShape(t *testing.T) {
	query, args, err := Update("match_events").
		SetExpr("minute_text", "minute::text").
		Where(IsNotNull("minute"), IsNull("minute_text")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE match_events SET minute_text = minute::text WHERE minute IS NOT NULL AND minute_text IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type clubSeasonInsert struct {
		ClubID         int64 `db:"club_id"`
		LeagueSeasonID int64 `db:"league_season_id"`
		internal       int
		Ignored        string `db:"-"`
	}

	query, args, err := InsertModel("club_seasons", &clubSeasonInsert{ClubID: 3, LeagueSeasonID: 7}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO club_seasons (club_id, league_season_id) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}

	// second build reads the cached column plan
	again, againArgs, err := InsertModel("club_seasons", clubSeasonInsert{ClubID: 4, LeagueSeasonID: 8}, "")
	if err != nil {
		t.Fatalf("build cached insert model query: %v", err)
	}
	if again != "INSERT INTO club_seasons (club_id, league_season_id) VALUES ($1, $2)" || againArgs[0] != int64(4) {
		t.Fatalf("unexpected cached build: %s %+v", again, againArgs)
	}

	if _, _, err := InsertModel("club_seasons", (*clubSeasonInsert)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
