package querybuilder

import "testing"

func TestSelectBuilder_SearchWithPagination(t *testing.T) {
	query, args, err := Select("*").
		From("teams").
		Where(Eq("league_id", int64(2021)), ILike("name", "%chel%")).
		OrderBy("name ASC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM teams WHERE league_id = $1 AND name ILIKE $2 ORDER BY name ASC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(2021) || args[1] != "%chel%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrAndSubqueryExpr(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(
			Or(Eq("home_team_id", int64(57)), Eq("away_team_id", int64(57))),
			Expr("id NOT IN (SELECT match_id FROM predictions WHERE user_id = ?)", int64(9)),
		).
		OrderBy("date ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE (home_team_id = $1 OR away_team_id = $2)" +
		" AND id NOT IN (SELECT match_id FROM predictions WHERE user_id = $3) ORDER BY date ASC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_WithConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("favourite_teams").
		Columns("user_id", "team_id").
		Values(int64(1), int64(999)).
		Suffix("ON CONFLICT (user_id, team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO favourite_teams (user_id, team_id) VALUES ($1, $2) ON CONFLICT (user_id, team_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("predictions").
		Set("points_awarded", 3).
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE predictions SET points_awarded = $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("favourite_teams").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}

	query, args, err := DeleteFrom("favourite_teams").
		Where(Eq("user_id", int64(1)), Eq("team_id", int64(999))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM favourite_teams WHERE user_id = $1 AND team_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
