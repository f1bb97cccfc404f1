package repositories

import (
	"testing"

	"dealership/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var orderColumns = []string{
	"id", "document_id", "order_number", "order_date",
	"customer_name", "customer_address", "customer_phone", "customer_id_card",
	"payment_method", "finish", "editable",
	"sales_document_id", "sales_name", "sales_phone", "sales_branch",
	"vt_document_id", "vt_name", "vt_category", "vt_year",
	"color_document_id", "color_name", "unit_price", "created_at",
}

func orderRow(finish, editable bool) *sqlmock.Rows {
	return sqlmock.NewRows(orderColumns).AddRow(
		1, "ord-1", "SPK-2025-001", "2025-08-17",
		"Budi", "Jl. Melati 1", "0812", "3171xxxx",
		"cash", finish, editable,
		"sls-1", "Andi", "0813", "Jakarta",
		"vt-1", "Avanza G", "MPV", 2025,
		"clr-1", "Hitam", 17500000, "2025-08-17 09:00:00",
	)
}

func TestOrderUpdateFlagsFinishOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE orders SET finish = \\?, updated_at = NOW\\(\\) WHERE document_id = \\?").
		WithArgs(true, "ord-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT(?s:.+)FROM orders o(?s:.+)WHERE o\\.document_id = \\?").
		WithArgs("ord-1").
		WillReturnRows(orderRow(true, true))

	repo := OrderRepository{DB: db}
	finish := true
	o, err := repo.UpdateFlags("ord-1", &finish, nil)
	if err != nil {
		t.Fatalf("UpdateFlags returned error: %v", err)
	}
	if !o.Finish {
		t.Fatalf("finish flag not applied")
	}
	if !o.Editable {
		t.Fatalf("editable should be untouched when key absent")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateFlagsNoFieldsReturnsCurrent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// no UPDATE expected, only the read-back
	mock.ExpectQuery("SELECT(?s:.+)FROM orders o(?s:.+)WHERE o\\.document_id = \\?").
		WithArgs("ord-1").
		WillReturnRows(orderRow(false, true))

	repo := OrderRepository{DB: db}
	o, err := repo.UpdateFlags("ord-1", nil, nil)
	if err != nil {
		t.Fatalf("UpdateFlags returned error: %v", err)
	}
	if o.Finish || !o.Editable {
		t.Fatalf("flags changed without payload: %+v", o)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderListRejectsUnknownSortField(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := OrderRepository{DB: db}
	_, _, err = repo.List(domain.ListQuery{SortField: "unitPrice", SortOrder: "desc"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown sort field, got %v", err)
	}
}

func TestOrderGetByDocumentIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(?s:.+)FROM orders o(?s:.+)WHERE o\\.document_id = \\?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(orderColumns))

	repo := OrderRepository{DB: db}
	if _, err := repo.GetByDocumentID("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
