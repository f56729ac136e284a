package services

import (
	"bytes"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/jung-kurt/gofpdf"

	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/utils/format"
)

// PDFService renders an order as a printable confirmation document.
type PDFService struct {
	companyName string
}

func NewPDFService(companyName string) *PDFService {
	return &PDFService{companyName: companyName}
}

// FileName builds the download name for an order document.
func (s *PDFService) FileName(order *models.Order) string {
	return fmt.Sprintf("%s_%s.pdf", order.OrderNo, slug.Make(order.CustomerName))
}

// Render produces the PDF bytes for an order confirmation.
func (s *PDFService) Render(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(order.OrderNo, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, s.companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Order Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	writeField := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	writeField("Order No", order.OrderNo)
	writeField("Date", order.Date.Format("02-01-2006"))
	writeField("Customer", order.CustomerName)
	writeField("Address", order.Address)
	writeField("Phone", order.PhoneNo)
	writeField("Agent", order.Agent)
	writeField("Transport", order.Transport)
	writeField("Payment Terms", order.PaymentTerms)
	writeField("Remark", order.Remark)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(12, 8, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 8, "Design No", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(55, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, detail := range order.OrderDetails {
		pdf.CellFormat(12, 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(48, 8, detail.DesignNo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", detail.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, format.INR(detail.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(55, 8, format.INR(detail.TotalPrice), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(135, 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, format.INR(order.TotalAmount), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render order pdf: %w", err)
	}
	return buf.Bytes(), nil
}
