package repositories

import (
	"database/sql"
	"strings"
	"time"

	"dealership/internal/domain"
	"dealership/internal/domain/models"
)

// SalesLocationRepository stores GPS pings and serves the monitoring view's
// newest-ping-per-sales query.
type SalesLocationRepository struct {
	DB *sql.DB
}

// Insert records one ping. recordedAt may be empty; the DB clock is used then.
func (r SalesLocationRepository) Insert(loc models.SalesLocation) (models.SalesLocation, error) {
	if strings.TrimSpace(loc.SalesDocumentID) == "" {
		return models.SalesLocation{}, domain.ValidationError{Field: "salesDocumentId", Msg: "wajib diisi"}
	}

	var salesID int64
	err := r.DB.QueryRow(`SELECT id FROM sales_profiles WHERE document_id = ?`, loc.SalesDocumentID).Scan(&salesID)
	if err == sql.ErrNoRows {
		return models.SalesLocation{}, domain.NotFoundError{Resource: "sales"}
	}
	if err != nil {
		return models.SalesLocation{}, domain.InternalError{Msg: "gagal cek sales", Err: err}
	}

	recordedAt := strings.TrimSpace(loc.RecordedAt)
	if recordedAt == "" {
		recordedAt = time.Now().Format("2006-01-02 15:04:05")
	}

	res, err := r.DB.Exec(`
		INSERT INTO sales_locations (sales_id, latitude, longitude, recorded_at)
		VALUES (?, ?, ?, ?)
	`, salesID, loc.Latitude, loc.Longitude, recordedAt)
	if err != nil {
		return models.SalesLocation{}, domain.InternalError{Msg: "gagal menyimpan lokasi", Err: err}
	}

	id, _ := res.LastInsertId()
	loc.ID = id
	loc.RecordedAt = recordedAt
	return loc, nil
}

// LatestPerSales returns the newest ping for every active sales profile.
// This is the 30-second polling target of the monitoring screen.
func (r SalesLocationRepository) LatestPerSales() ([]models.SalesLocation, error) {
	rows, err := r.DB.Query(`
		SELECT
			l.id,
			s.document_id,
			COALESCE(s.name, ''),
			COALESCE(s.branch, ''),
			l.latitude,
			l.longitude,
			COALESCE(DATE_FORMAT(l.recorded_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM sales_locations l
		JOIN (
			SELECT sales_id, MAX(id) AS max_id
			FROM sales_locations
			GROUP BY sales_id
		) last ON last.max_id = l.id
		JOIN sales_profiles s ON s.id = l.sales_id
		ORDER BY s.name ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil lokasi sales", Err: err}
	}
	defer rows.Close()

	list := []models.SalesLocation{}
	for rows.Next() {
		var loc models.SalesLocation
		if err := rows.Scan(
			&loc.ID,
			&loc.SalesDocumentID,
			&loc.SalesName,
			&loc.Branch,
			&loc.Latitude,
			&loc.Longitude,
			&loc.RecordedAt,
		); err != nil {
			return nil, domain.InternalError{Msg: "gagal scan lokasi sales", Err: err}
		}
		list = append(list, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}

	return list, nil
}
