package repositories

import (
	"database/sql"
	"strings"

	"dealership/internal/domain"
	"dealership/internal/domain/models"
)

// OrderRepository reads SPK rows with their sales and unit references joined
// in. Orders are created by the sales app upstream; the admin panel only
// flips the finish/editable flags.
type OrderRepository struct {
	DB *sql.DB
}

// orderFilterColumns whitelists the single-field contains filter.
var orderFilterColumns = map[string]string{
	"orderNumber":  "o.order_number",
	"customerName": "o.customer_name",
	"salesName":    "s.name",
}

// orderSortColumns whitelists the single sort key.
var orderSortColumns = map[string]string{
	"orderNumber":  "o.order_number",
	"orderDate":    "o.order_date",
	"customerName": "o.customer_name",
	"createdAt":    "o.created_at",
}

const orderSelect = `
	SELECT
		o.id,
		o.document_id,
		COALESCE(o.order_number, ''),
		COALESCE(DATE_FORMAT(o.order_date, '%Y-%m-%d'), ''),
		COALESCE(o.customer_name, ''),
		COALESCE(o.customer_address, ''),
		COALESCE(o.customer_phone, ''),
		COALESCE(o.customer_id_card, ''),
		COALESCE(o.payment_method, ''),
		COALESCE(o.finish, 0),
		COALESCE(o.editable, 1),
		COALESCE(s.document_id, ''),
		COALESCE(s.name, ''),
		COALESCE(s.phone, ''),
		COALESCE(s.branch, ''),
		COALESCE(vt.document_id, ''),
		COALESCE(vt.name, ''),
		COALESCE(vt.category, ''),
		COALESCE(vt.model_year, 0),
		COALESCE(cl.document_id, ''),
		COALESCE(cl.name, ''),
		COALESCE(o.unit_price, 0),
		COALESCE(DATE_FORMAT(o.created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM orders o
	LEFT JOIN sales_profiles s ON s.id = o.sales_id
	LEFT JOIN vehicle_types vt ON vt.id = o.vehicle_type_id
	LEFT JOIN colors cl ON cl.id = o.color_id
`

func (r OrderRepository) List(q domain.ListQuery) ([]models.Order, domain.Pagination, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if q.FilterField != "" {
		col, ok := orderFilterColumns[q.FilterField]
		if !ok {
			return nil, domain.Pagination{}, domain.ValidationError{Field: q.FilterField, Msg: "field tidak bisa difilter"}
		}
		where = " WHERE LOWER(" + col + ") LIKE ?"
		args = append(args, "%"+strings.ToLower(q.FilterValue)+"%")
	}

	countQuery := `SELECT COUNT(*) FROM orders o LEFT JOIN sales_profiles s ON s.id = o.sales_id` + where
	var total int
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "gagal menghitung SPK", Err: err}
	}

	order := " ORDER BY o.id DESC"
	if q.SortField != "" {
		col, ok := orderSortColumns[q.SortField]
		if !ok {
			return nil, domain.Pagination{}, domain.ValidationError{Field: q.SortField, Msg: "field tidak bisa diurutkan"}
		}
		dir := "ASC"
		if q.SortOrder == "desc" {
			dir = "DESC"
		}
		order = " ORDER BY " + col + " " + dir + ", o.id DESC"
	}

	rows, err := r.DB.Query(orderSelect+where+order+" LIMIT ? OFFSET ?", append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "gagal mengambil data SPK", Err: err}
	}
	defer rows.Close()

	list := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, domain.Pagination{}, domain.InternalError{Msg: "gagal scan data SPK", Err: err}
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}

	return list, domain.NewPagination(q, total), nil
}

func (r OrderRepository) GetByDocumentID(documentID string) (models.Order, error) {
	row := r.DB.QueryRow(orderSelect+" WHERE o.document_id = ?", documentID)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return models.Order{}, domain.NotFoundError{Resource: "SPK"}
	}
	if err != nil {
		return models.Order{}, domain.InternalError{Msg: "gagal mengambil SPK", Err: err}
	}
	return o, nil
}

// UpdateFlags writes finish/editable with key-presence semantics: a nil
// pointer means the key was absent from the payload.
func (r OrderRepository) UpdateFlags(documentID string, finish, editable *bool) (models.Order, error) {
	if finish == nil && editable == nil {
		return r.GetByDocumentID(documentID)
	}

	sets := []string{}
	args := []any{}
	if finish != nil {
		sets = append(sets, "finish = ?")
		args = append(args, *finish)
	}
	if editable != nil {
		sets = append(sets, "editable = ?")
		args = append(args, *editable)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, documentID)

	res, err := r.DB.Exec(`UPDATE orders SET `+strings.Join(sets, ", ")+` WHERE document_id = ?`, args...)
	if err != nil {
		return models.Order{}, domain.InternalError{Msg: "gagal update status SPK", Err: err}
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		// RowsAffected is also 0 on a no-op write, so confirm existence
		// before reporting not found.
		if _, getErr := r.GetByDocumentID(documentID); getErr != nil {
			return models.Order{}, getErr
		}
	}

	return r.GetByDocumentID(documentID)
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID,
		&o.DocumentID,
		&o.OrderNumber,
		&o.OrderDate,
		&o.CustomerName,
		&o.CustomerAddress,
		&o.CustomerPhone,
		&o.CustomerIDCard,
		&o.PaymentMethod,
		&o.Finish,
		&o.Editable,
		&o.Sales.DocumentID,
		&o.Sales.Name,
		&o.Sales.Phone,
		&o.Sales.Branch,
		&o.Unit.TypeDocumentID,
		&o.Unit.TypeName,
		&o.Unit.Category,
		&o.Unit.Year,
		&o.Unit.ColorDocumentID,
		&o.Unit.ColorName,
		&o.Unit.Price,
		&o.CreatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}
