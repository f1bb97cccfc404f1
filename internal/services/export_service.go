package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"dealership/internal/domain"
	"dealership/internal/domain/models"
	"dealership/internal/repositories"
	"dealership/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExportService turns the active order filter window into a downloadable
// XLSX or CSV file.
type ExportService struct {
	OrderRepo repositories.OrderRepository
	RequestID string
}

var orderExportHeaders = []string{
	"No SPK", "Tanggal", "Pemesan", "No HP", "Sales", "Cabang",
	"Tipe", "Warna", "Harga Unit", "Uang Muka", "Sisa", "Selesai",
}

// Orders exports every page of the given query (the filter applies, the
// page window does not: an export always covers the whole filtered set).
func (s ExportService) Orders(q domain.ListQuery, format string) ([]byte, string, string, error) {
	q = q.Normalize()
	q.Page = 1
	q.PageSize = 100

	var all []models.Order
	for {
		page, meta, err := s.OrderRepo.List(q)
		if err != nil {
			return nil, "", "", err
		}
		all = append(all, page...)
		if q.Page >= meta.PageCount {
			break
		}
		q.Page++
	}

	rows := make([][]string, 0, len(all))
	for _, o := range all {
		doc := BuildSPKDocument(o)
		finished := "Belum"
		if o.Finish {
			finished = "Selesai"
		}
		rows = append(rows, []string{
			o.OrderNumber,
			o.OrderDate,
			o.CustomerName,
			o.CustomerPhone,
			o.Sales.Name,
			o.Sales.Branch,
			o.Unit.TypeName,
			o.Unit.ColorName,
			utils.FormatRupiah(doc.UnitPrice),
			utils.FormatRupiah(doc.DownPayment),
			utils.FormatRupiah(doc.Remainder),
			finished,
		})
	}

	utils.LogEvent(s.RequestID, "export", "orders", fmt.Sprintf("format=%s rows=%d", format, len(rows)))

	if format == "xlsx" {
		data, err := buildXLSX("SPK", orderExportHeaders, rows)
		if err != nil {
			return nil, "", "", domain.InternalError{Msg: "gagal membuat file excel", Err: err}
		}
		return data, "spk_export.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	}

	data, err := buildCSV(orderExportHeaders, rows)
	if err != nil {
		return nil, "", "", domain.InternalError{Msg: "gagal membuat file csv", Err: err}
	}
	return data, "spk_export.csv", "text/csv", nil
}

func buildXLSX(sheet string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
