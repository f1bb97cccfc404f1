package repositories

import (
	"testing"

	"dealership/internal/domain"
	"dealership/internal/resources"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCollectionListFilterAndPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM colors WHERE LOWER\\(name\\) LIKE \\?").
		WithArgs("%me%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	mock.ExpectQuery("SELECT id, document_id, .+ FROM colors WHERE LOWER\\(name\\) LIKE \\? ORDER BY id DESC LIMIT \\? OFFSET \\?").
		WithArgs("%me%", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "document_id", "name", "hex_code"}).
			AddRow(5, "doc-5", "Merah", "#ff0000").
			AddRow(4, "doc-4", "Merah Metalik", "#aa0000"))

	repo := CollectionRepository{DB: db}
	records, meta, err := repo.List(resources.Colors, domain.ListQuery{
		Page: 2, PageSize: 10, FilterField: "name", FilterValue: "Me",
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].GetString("name") != "Merah" {
		t.Fatalf("unexpected first record name: %v", records[0].Fields["name"])
	}
	if meta.Total != 23 || meta.PageCount != 3 || meta.Page != 2 {
		t.Fatalf("unexpected pagination meta: %+v", meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCollectionListRejectsNonFilterableField(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := CollectionRepository{DB: db}
	_, _, err = repo.List(resources.Colors, domain.ListQuery{
		FilterField: "hexCode", FilterValue: "ff",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for hexCode filter, got %v", err)
	}
}

func TestCollectionListInvalidPageSizeFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM colors").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, document_id, .+ FROM colors ORDER BY id DESC LIMIT \\? OFFSET \\?").
		WithArgs(domain.DefaultPageSize, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "document_id", "name", "hex_code"}))

	repo := CollectionRepository{DB: db}
	records, meta, err := repo.List(resources.Colors, domain.ListQuery{Page: 1, PageSize: 33})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty page, got %d records", len(records))
	}
	if meta.PageSize != domain.DefaultPageSize {
		t.Fatalf("page size not normalized, got %d", meta.PageSize)
	}
	if meta.PageCount != 0 || meta.Total != 0 {
		t.Fatalf("empty set should have pageCount 0 and total 0, got %+v", meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCollectionDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM colors WHERE document_id = \\?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := CollectionRepository{DB: db}
	if err := repo.Delete(resources.Colors, "missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCoercePayloadCreateRequiresName(t *testing.T) {
	_, err := coercePayload(resources.Colors, map[string]any{"hexCode": "#fff"}, true)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
}

func TestCoercePayloadPatchSkipsAbsentRequired(t *testing.T) {
	out, err := coercePayload(resources.Colors, map[string]any{"hexCode": "#fff"}, false)
	if err != nil {
		t.Fatalf("patch without name should pass, got %v", err)
	}
	if _, present := out["name"]; present {
		t.Fatalf("name should not appear in patch when absent")
	}
}

func TestCoercePayloadPatchRejectsBlankedRequired(t *testing.T) {
	_, err := coercePayload(resources.Colors, map[string]any{"name": "   "}, false)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for blanked name, got %v", err)
	}
}

func TestCoercePayloadDropsUnknownKeys(t *testing.T) {
	out, err := coercePayload(resources.Colors, map[string]any{
		"name":       "Hitam",
		"documentId": "abc",
		"createdAt":  "2025-01-01",
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out["name"] != "Hitam" {
		t.Fatalf("unknown keys should be dropped, got %+v", out)
	}
}

func TestCoerceValueNumbers(t *testing.T) {
	field := resources.Field{Key: "price", Kind: resources.KindInt}

	v, err := coerceValue(field, float64(17500000))
	if err != nil || v.(int64) != 17500000 {
		t.Fatalf("float64 coercion failed: %v %v", v, err)
	}

	v, err = coerceValue(field, "250000")
	if err != nil || v.(int64) != 250000 {
		t.Fatalf("string coercion failed: %v %v", v, err)
	}

	if _, err := coerceValue(field, "abc"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for non-numeric string, got %v", err)
	}
}
