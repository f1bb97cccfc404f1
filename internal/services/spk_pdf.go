package services

import (
	"bytes"
	"fmt"
	"strings"

	"dealership/internal/domain/models"
	"dealership/internal/repositories"
	"dealership/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// SPKPDFService renders the printed SPK for one order. The field mapping is
// a pure function (BuildSPKDocument); only rendering touches gofpdf.
type SPKPDFService struct {
	OrderRepo repositories.OrderRepository
	RequestID string
	Loader    func(documentID string) (models.Order, error)
}

// SPKDocument is the structured document model the PDF is drawn from.
type SPKDocument struct {
	OrderNumber string
	OrderDate   string

	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CustomerIDCard  string

	VehicleType  string
	Category     string
	Year         string
	Color        string
	SalesName    string
	Branch       string
	PaymentLabel string

	UnitPrice   int64
	DownPayment int64
	Remainder   int64

	Notes      []string
	Signatures [3]string
}

// spkNotes is the fixed boilerplate printed under the pricing table.
var spkNotes = []string{
	"SPK ini bukan bukti pembayaran yang sah.",
	"Uang muka yang telah dibayarkan tidak dapat dikembalikan apabila pesanan dibatalkan oleh pihak pemesan.",
	"Harga dapat berubah sewaktu-waktu mengikuti ketentuan dari pihak pabrikan sebelum pelunasan.",
	"Kendaraan diserahkan setelah seluruh kewajiban pembayaran diselesaikan.",
}

// BuildSPKDocument maps an order to its printed document. The down payment
// is floor(30% x unit price); the remainder is the exact complement so the
// two lines always add up to the unit price.
func BuildSPKDocument(o models.Order) SPKDocument {
	dp := o.Unit.Price * 30 / 100
	doc := SPKDocument{
		OrderNumber:     o.OrderNumber,
		OrderDate:       utils.FormatDateIndonesian(o.OrderDate),
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerPhone:   o.CustomerPhone,
		CustomerIDCard:  o.CustomerIDCard,
		VehicleType:     o.Unit.TypeName,
		Category:        o.Unit.Category,
		Color:           o.Unit.ColorName,
		SalesName:       o.Sales.Name,
		Branch:          o.Sales.Branch,
		PaymentLabel:    o.PaymentMethod,
		UnitPrice:       o.Unit.Price,
		DownPayment:     dp,
		Remainder:       o.Unit.Price - dp,
		Notes:           spkNotes,
		Signatures:      [3]string{"Pemesan", "Sales", "Supervisor"},
	}
	if o.Unit.Year > 0 {
		doc.Year = fmt.Sprintf("%d", o.Unit.Year)
	}
	return doc
}

// Generate renders the SPK PDF and returns its bytes plus download filename.
func (s SPKPDFService) Generate(documentID string) ([]byte, string, error) {
	order, err := s.loadOrder(documentID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "spk", "generate_pdf", fmt.Sprintf("document_id=%s", documentID))
	return renderSPKPDF(BuildSPKDocument(order))
}

func (s SPKPDFService) loadOrder(documentID string) (models.Order, error) {
	if s.Loader != nil {
		return s.Loader(documentID)
	}
	return s.OrderRepo.GetByDocumentID(documentID)
}

func renderSPKPDF(d SPKDocument) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Surat Pesanan Kendaraan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "SURAT PESANAN KENDARAAN (SPK)", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("No. %s", safe(d.OrderNumber, "-")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tanggal: %s", safe(d.OrderDate, "-")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sectionTitle(pdf, "Data Pemesan")
	labelLine(pdf, "Nama", d.CustomerName)
	labelLine(pdf, "Alamat", d.CustomerAddress)
	labelLine(pdf, "No HP", d.CustomerPhone)
	labelLine(pdf, "No KTP", d.CustomerIDCard)
	pdf.Ln(3)

	sectionTitle(pdf, "Data Kendaraan")
	labelLine(pdf, "Tipe", d.VehicleType)
	labelLine(pdf, "Kategori", d.Category)
	labelLine(pdf, "Tahun", d.Year)
	labelLine(pdf, "Warna", d.Color)
	labelLine(pdf, "Sales", d.SalesName)
	labelLine(pdf, "Cabang", d.Branch)
	labelLine(pdf, "Pembayaran", d.PaymentLabel)
	pdf.Ln(3)

	sectionTitle(pdf, "Rincian Harga")
	priceRow(pdf, "Harga Unit", d.UnitPrice)
	priceRow(pdf, "Uang Muka (30%)", d.DownPayment)
	priceRow(pdf, "Sisa Pembayaran (70%)", d.Remainder)
	pdf.Ln(4)

	sectionTitle(pdf, "Catatan")
	pdf.SetFont("Helvetica", "", 9)
	for i, note := range d.Notes {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, note), "", "", false)
	}
	pdf.Ln(8)

	// three signature blocks side by side
	pdf.SetFont("Helvetica", "", 10)
	colW := 60.0
	for _, role := range d.Signatures {
		pdf.CellFormat(colW, 6, role, "", 0, "C", false, 0, "")
	}
	pdf.Ln(22)
	for range d.Signatures {
		pdf.CellFormat(colW, 6, "( ............................ )", "", 0, "C", false, 0, "")
	}
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SPK_%s.pdf", utils.SafeFilenamePart(d.OrderNumber))
	return buf.Bytes(), filename, nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
}

func labelLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(35, 6, label)
	pdf.Cell(5, 6, ":")
	pdf.Cell(0, 6, safe(value, "-"))
	pdf.Ln(6)
}

func priceRow(pdf *gofpdf.Fpdf, label string, amount int64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, utils.FormatRupiah(amount), "1", 1, "R", false, 0, "")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
