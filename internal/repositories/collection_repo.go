package repositories

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"dealership/internal/domain"
	"dealership/internal/resources"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// CollectionRepository serves every schema-driven reference collection with
// one SQL shape: authoritative COUNT, then the requested page.
type CollectionRepository struct {
	DB *sql.DB
}

func (r CollectionRepository) List(s resources.Schema, q domain.ListQuery) ([]domain.Record, domain.Pagination, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if q.FilterField != "" {
		f, ok := s.FieldByKey(q.FilterField)
		if !ok || !f.Filterable {
			return nil, domain.Pagination{}, domain.ValidationError{Field: q.FilterField, Msg: "field tidak bisa difilter"}
		}
		where = " WHERE LOWER(" + f.Column + ") LIKE ?"
		args = append(args, "%"+strings.ToLower(q.FilterValue)+"%")
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM `+s.Table+where, args...).Scan(&total); err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "gagal menghitung " + s.Label, Err: err}
	}

	order := " ORDER BY id DESC"
	if q.SortField != "" {
		f, ok := s.FieldByKey(q.SortField)
		if !ok || !f.Sortable {
			return nil, domain.Pagination{}, domain.ValidationError{Field: q.SortField, Msg: "field tidak bisa diurutkan"}
		}
		dir := "ASC"
		if q.SortOrder == "desc" {
			dir = "DESC"
		}
		order = " ORDER BY " + f.Column + " " + dir + ", id DESC"
	}

	query := selectClause(s) + where + order + " LIMIT ? OFFSET ?"
	args = append(args, q.PageSize, q.Offset())

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "gagal mengambil data " + s.Label, Err: err}
	}
	defer rows.Close()

	list := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(s, rows)
		if err != nil {
			return nil, domain.Pagination{}, domain.InternalError{Msg: "gagal scan data " + s.Label, Err: err}
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}

	return list, domain.NewPagination(q, total), nil
}

func (r CollectionRepository) GetByDocumentID(s resources.Schema, documentID string) (domain.Record, error) {
	row := r.DB.QueryRow(selectClause(s)+" WHERE document_id = ?", documentID)
	rec, err := scanRecord(s, row)
	if err == sql.ErrNoRows {
		return domain.Record{}, domain.NotFoundError{Resource: s.Label}
	}
	if err != nil {
		return domain.Record{}, domain.InternalError{Msg: "gagal mengambil " + s.Label, Err: err}
	}
	return rec, nil
}

// Create validates required fields, issues the documentId and inserts.
func (r CollectionRepository) Create(s resources.Schema, payload map[string]any) (domain.Record, error) {
	fields, err := coercePayload(s, payload, true)
	if err != nil {
		return domain.Record{}, err
	}

	docID := uuid.NewString()
	cols := []string{"document_id"}
	marks := []string{"?"}
	args := []any{docID}
	for _, f := range s.Fields {
		v, ok := fields[f.Key]
		if !ok {
			continue
		}
		cols = append(cols, f.Column)
		marks = append(marks, "?")
		args = append(args, v)
	}

	query := `INSERT INTO ` + s.Table + ` (` + strings.Join(cols, ", ") + `, created_at, updated_at) VALUES (` + strings.Join(marks, ", ") + `, NOW(), NOW())`
	if _, err := r.DB.Exec(query, args...); err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return domain.Record{}, domain.ConflictError{Resource: s.Label, Msg: "data duplikat"}
		}
		return domain.Record{}, domain.InternalError{Msg: "gagal menambah " + s.Label, Err: err}
	}

	return r.GetByDocumentID(s, docID)
}

// Update applies a key-presence patch: only keys present in the payload are
// written, everything else keeps its stored value.
func (r CollectionRepository) Update(s resources.Schema, documentID string, payload map[string]any) (domain.Record, error) {
	if _, err := r.GetByDocumentID(s, documentID); err != nil {
		return domain.Record{}, err
	}

	fields, err := coercePayload(s, payload, false)
	if err != nil {
		return domain.Record{}, err
	}
	if len(fields) == 0 {
		return r.GetByDocumentID(s, documentID)
	}

	sets := []string{}
	args := []any{}
	for _, f := range s.Fields {
		v, ok := fields[f.Key]
		if !ok {
			continue
		}
		sets = append(sets, f.Column+" = ?")
		args = append(args, v)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, documentID)

	query := `UPDATE ` + s.Table + ` SET ` + strings.Join(sets, ", ") + ` WHERE document_id = ?`
	if _, err := r.DB.Exec(query, args...); err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return domain.Record{}, domain.ConflictError{Resource: s.Label, Msg: "data duplikat"}
		}
		return domain.Record{}, domain.InternalError{Msg: "gagal update " + s.Label, Err: err}
	}

	return r.GetByDocumentID(s, documentID)
}

func (r CollectionRepository) Delete(s resources.Schema, documentID string) error {
	res, err := r.DB.Exec(`DELETE FROM `+s.Table+` WHERE document_id = ?`, documentID)
	if err != nil {
		return domain.InternalError{Msg: "gagal hapus " + s.Label, Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: s.Label}
	}
	return nil
}

func selectClause(s resources.Schema) string {
	cols := []string{"id", "document_id"}
	for _, f := range s.Fields {
		switch f.Kind {
		case resources.KindInt:
			cols = append(cols, "COALESCE("+f.Column+", 0) AS "+f.Column)
		case resources.KindBool:
			cols = append(cols, "COALESCE("+f.Column+", 0) AS "+f.Column)
		default:
			cols = append(cols, "COALESCE("+f.Column+", '') AS "+f.Column)
		}
	}
	return `SELECT ` + strings.Join(cols, ", ") + ` FROM ` + s.Table
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s resources.Schema, row rowScanner) (domain.Record, error) {
	rec := domain.Record{Fields: map[string]any{}}

	holders := make([]any, 0, len(s.Fields)+2)
	holders = append(holders, &rec.ID, &rec.DocumentID)

	strVals := make([]string, len(s.Fields))
	intVals := make([]int64, len(s.Fields))
	boolVals := make([]bool, len(s.Fields))
	for i, f := range s.Fields {
		switch f.Kind {
		case resources.KindInt:
			holders = append(holders, &intVals[i])
		case resources.KindBool:
			holders = append(holders, &boolVals[i])
		default:
			holders = append(holders, &strVals[i])
		}
	}

	if err := row.Scan(holders...); err != nil {
		return domain.Record{}, err
	}

	for i, f := range s.Fields {
		switch f.Kind {
		case resources.KindInt:
			rec.Fields[f.Key] = intVals[i]
		case resources.KindBool:
			rec.Fields[f.Key] = boolVals[i]
		default:
			rec.Fields[f.Key] = strVals[i]
		}
	}
	return rec, nil
}

// coercePayload checks the payload against the schema. In create mode every
// required field must be present and non-empty; in patch mode a present
// required field may not be blanked.
func coercePayload(s resources.Schema, payload map[string]any, create bool) (map[string]any, error) {
	out := map[string]any{}

	for key, raw := range payload {
		f, ok := s.FieldByKey(key)
		if !ok {
			// unknown keys are dropped, not rejected, so clients can send
			// server-computed fields back unchanged
			continue
		}
		v, err := coerceValue(f, raw)
		if err != nil {
			return nil, err
		}
		out[f.Key] = v
	}

	for _, key := range s.RequiredKeys() {
		v, present := out[key]
		if !present {
			if create {
				return nil, domain.ValidationError{Field: key, Msg: "wajib diisi"}
			}
			continue
		}
		if sv, ok := v.(string); ok && strings.TrimSpace(sv) == "" {
			return nil, domain.ValidationError{Field: key, Msg: "wajib diisi"}
		}
	}

	return out, nil
}

func coerceValue(f resources.Field, raw any) (any, error) {
	switch f.Kind {
	case resources.KindInt:
		switch v := raw.(type) {
		case float64:
			return int64(v), nil
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case string:
			if strings.TrimSpace(v) == "" {
				return int64(0), nil
			}
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, domain.ValidationError{Field: f.Key, Msg: "harus berupa angka"}
			}
			return n, nil
		case nil:
			return int64(0), nil
		}
		return nil, domain.ValidationError{Field: f.Key, Msg: "harus berupa angka"}
	case resources.KindBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case nil:
			return false, nil
		}
		return nil, domain.ValidationError{Field: f.Key, Msg: "harus berupa boolean"}
	default:
		switch v := raw.(type) {
		case string:
			return strings.TrimSpace(v), nil
		case nil:
			return "", nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
		return nil, domain.ValidationError{Field: f.Key, Msg: fmt.Sprintf("tipe tidak valid untuk %s", f.Key)}
	}
}
