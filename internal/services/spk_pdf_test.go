package services

import (
	"strings"
	"testing"

	"dealership/internal/domain/models"
	"dealership/internal/utils"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:              1,
		DocumentID:      "ord-1",
		OrderNumber:     "SPK-2025-001",
		OrderDate:       "2025-08-17",
		CustomerName:    "Budi Santoso",
		CustomerAddress: "Jl. Melati No. 1, Jakarta",
		CustomerPhone:   "081234567890",
		CustomerIDCard:  "3171xxxxxxxxxxxx",
		PaymentMethod:   "cash",
		Editable:        true,
		Sales: models.SalesRef{
			DocumentID: "sls-1", Name: "Andi", Phone: "0813", Branch: "Jakarta Selatan",
		},
		Unit: models.UnitRef{
			TypeName: "Avanza G", Category: "MPV", Year: 2025,
			ColorName: "Hitam Metalik", Price: 17500000,
		},
	}
}

func TestBuildSPKDocumentSplit(t *testing.T) {
	doc := BuildSPKDocument(sampleOrder())

	if doc.DownPayment != 5250000 {
		t.Fatalf("down payment should be 5250000, got %d", doc.DownPayment)
	}
	if doc.Remainder != 12250000 {
		t.Fatalf("remainder should be 12250000, got %d", doc.Remainder)
	}
	if doc.DownPayment+doc.Remainder != doc.UnitPrice {
		t.Fatalf("split does not add up: %d + %d != %d",
			doc.DownPayment, doc.Remainder, doc.UnitPrice)
	}
	if got := utils.FormatRupiah(doc.DownPayment); got != "Rp 5.250.000" {
		t.Fatalf("formatted down payment wrong: %q", got)
	}
	if got := utils.FormatRupiah(doc.Remainder); got != "Rp 12.250.000" {
		t.Fatalf("formatted remainder wrong: %q", got)
	}
	if doc.OrderDate != "17 Agustus 2025" {
		t.Fatalf("order date not localized: %q", doc.OrderDate)
	}
}

func TestBuildSPKDocumentOddPriceStillSums(t *testing.T) {
	o := sampleOrder()
	o.Unit.Price = 17500001

	doc := BuildSPKDocument(o)
	if doc.DownPayment+doc.Remainder != o.Unit.Price {
		t.Fatalf("split must always sum to the unit price: %d + %d != %d",
			doc.DownPayment, doc.Remainder, o.Unit.Price)
	}
}

func TestSPKPDFGenerate(t *testing.T) {
	svc := SPKPDFService{
		Loader: func(documentID string) (models.Order, error) {
			return sampleOrder(), nil
		},
	}

	pdf, filename, err := svc.Generate("ord-1")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("Generate returned empty PDF")
	}
	if !strings.HasPrefix(filename, "SPK_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %q", filename)
	}
}
