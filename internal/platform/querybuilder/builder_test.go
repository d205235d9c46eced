package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_WhereOrderLimitOffset(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matches").
		Where(Eq("match_id", "m1"), Eq("player", "alice")).
		OrderBy("date DESC", "id DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT * FROM matches WHERE match_id = $1 AND player = $2 ORDER BY date DESC, id DESC LIMIT 10 OFFSET 20"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{"m1", "alice"}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestSelect_ExprRewritesPlaceholders(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matches").
		Where(Eq("date", "2026-08-27"), Expr("LOWER(status) IN (?, ?)", "live", "started")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT * FROM matches WHERE date = $1 AND LOWER(status) IN ($2, $3)"
	if query != want {
		t.Fatalf("unexpected query: %q", query)
	}
	if !reflect.DeepEqual(args, []any{"2026-08-27", "live", "started"}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestInsertModel_UsesDBTags(t *testing.T) {
	t.Parallel()

	type row struct {
		MatchID string `db:"match_id"`
		Player  string `db:"player"`
		Skipped string `db:"-"`
	}

	query, args, err := InsertModel("finished_matches", row{MatchID: "m1", Player: "alice", Skipped: "x"},
		"ON CONFLICT (match_id, player) DO NOTHING")
	if err != nil {
		t.Fatalf("InsertModel error: %v", err)
	}

	want := "INSERT INTO finished_matches (match_id, player) VALUES ($1, $2) ON CONFLICT (match_id, player) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query: %q", query)
	}
	if !reflect.DeepEqual(args, []any{"m1", "alice"}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestUpdate_SetAndSetExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Update("matches").
		Set("status", "Finished").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "UPDATE matches SET status = $1, updated_at = NOW() WHERE id = $2"
	if query != want {
		t.Fatalf("unexpected query: %q", query)
	}
	if !reflect.DeepEqual(args, []any{"Finished", int64(7)}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestIn_EmptyValuesNeverMatches(t *testing.T) {
	t.Parallel()

	query, _, err := Select("*").From("matches").Where(In("status", nil)).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT * FROM matches WHERE 1=0" {
		t.Fatalf("unexpected query: %q", query)
	}
}
