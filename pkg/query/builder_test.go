package query_test

import (
	"testing"
	"time"

	"docuvault/pkg/query"
)

func itemsProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "items", "i").
		Project("id", "ID").
		Project("name", "Name").
		Project("created_at", "CreatedAt")
}

func strPtr(s string) *string { return &s }

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(itemsProjection()).Build()

	want := "SELECT i.id, i.name, i.created_at FROM public.items i"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuildParameterNumbering(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	sql, args := query.
		NewBuilder(itemsProjection()).
		WhereContains("Name", strPtr("report")).
		WhereBetween("CreatedAt", &start, &end).
		Build()

	want := "SELECT i.id, i.name, i.created_at FROM public.items i" +
		" WHERE i.name ILIKE $1 AND i.created_at BETWEEN $2 AND $3"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("args = %v, want 3", args)
	}
	if args[0] != "%report%" {
		t.Errorf("args[0] = %v, want %%report%%", args[0])
	}
}

func TestBuildWithDefaultSort(t *testing.T) {
	sort := query.SortField{Field: "CreatedAt", Descending: true}
	sql, _ := query.NewBuilder(itemsProjection(), sort).Build()

	want := "SELECT i.id, i.name, i.created_at FROM public.items i ORDER BY i.created_at DESC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(itemsProjection()).BuildPage(3, 10)

	want := "SELECT i.id, i.name, i.created_at FROM public.items i LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildCount(t *testing.T) {
	sql, args := query.
		NewBuilder(itemsProjection()).
		WhereEquals("Name", strPtr("exact")).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.items i WHERE i.name = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want 1", args)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(itemsProjection()).BuildSingle("ID", 42)

	want := "SELECT i.id, i.name, i.created_at FROM public.items i WHERE i.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if args[0] != 42 {
		t.Errorf("args[0] = %v, want 42", args[0])
	}
}

func TestJoinedProjection(t *testing.T) {
	proj := query.
		NewProjectionMap("public", "items", "i").
		Project("id", "ID").
		Project("name", "Name").
		Join("public", "item_tags", "it", "LEFT JOIN", "i.id = it.item_id").
		Map("tag_id", "TagID")

	sql, args := query.
		NewBuilder(proj).
		Distinct().
		WhereIn("TagID", []any{"a", "b"}).
		Build()

	want := "SELECT DISTINCT i.id, i.name" +
		" FROM public.items i LEFT JOIN public.item_tags it ON i.id = it.item_id" +
		" WHERE it.tag_id IN ($1, $2)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2", args)
	}
}

func TestDistinctCount(t *testing.T) {
	sql, _ := query.NewBuilder(itemsProjection()).Distinct().BuildCount()

	want := "SELECT COUNT(DISTINCT i.id) FROM public.items i"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestWhereBetweenSingleBound(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	sql, args := query.
		NewBuilder(itemsProjection()).
		WhereBetween("CreatedAt", &start, nil).
		Build()

	want := "SELECT i.id, i.name, i.created_at FROM public.items i WHERE i.created_at >= $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want 1", args)
	}
}

func TestWhereConditionsSkipNil(t *testing.T) {
	sql, args := query.
		NewBuilder(itemsProjection()).
		WhereContains("Name", nil).
		WhereEquals("Name", nil).
		WhereIn("ID", nil).
		WhereBetween("CreatedAt", nil, nil).
		WhereSearch(nil, "Name").
		Build()

	want := "SELECT i.id, i.name, i.created_at FROM public.items i"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestWhereSearch(t *testing.T) {
	sql, args := query.
		NewBuilder(itemsProjection()).
		WhereSearch(strPtr("doc"), "Name", "ID").
		Build()

	want := "SELECT i.id, i.name, i.created_at FROM public.items i" +
		" WHERE (i.name ILIKE $1 OR i.id ILIKE $2)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if args[0] != "%doc%" || args[1] != "%doc%" {
		t.Errorf("args = %v", args)
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("name, -created_at")

	if len(fields) != 2 {
		t.Fatalf("len = %d, want 2", len(fields))
	}
	if fields[0].Field != "name" || fields[0].Descending {
		t.Errorf("fields[0] = %+v", fields[0])
	}
	if fields[1].Field != "created_at" || !fields[1].Descending {
		t.Errorf("fields[1] = %+v", fields[1])
	}

	if query.ParseSortFields("") != nil {
		t.Error("empty input should return nil")
	}
}
