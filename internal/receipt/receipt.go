// Package receipt renders a one-page PDF receipt for an appointment.
package receipt

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

type Receipt struct {
	Shop        string
	StaffName   string
	Appointment models.Appointment
	Services    []models.Service
	Vehicle     string
	Location    *time.Location
}

func (r Receipt) when() string {
	start, end := r.Appointment.StartTime, r.Appointment.EndTime
	if r.Location != nil {
		start, end = start.In(r.Location), end.In(r.Location)
	}
	return fmt.Sprintf("%s %s - %s", start.Format("02 Jan 2006"), start.Format("15:04"), end.Format("15:04"))
}

// fontFamily is embedded from the Go fonts, which carry the Turkish
// letters (ş, ı, ğ) the core PDF fonts lack.
const fontFamily = "Go"

func newDocument() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)
	return pdf
}

// Render writes the PDF to w.
func Render(w io.Writer, r Receipt) error {
	pdf := newDocument()
	pdf.AddPage()

	shop := r.Shop
	if shop == "" {
		shop = "Garage"
	}

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, shop+" - Service Receipt")
	pdf.Ln(12)

	pdf.SetFont(fontFamily, "", 12)
	line := func(label, value string) {
		pdf.Cell(45, 8, label)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}

	line("Receipt no.", fmt.Sprintf("%d", r.Appointment.ID))
	line("Client", r.Appointment.ClientName)
	if r.Vehicle != "" {
		line("Vehicle", r.Vehicle)
	}
	line("Date", r.when())
	if r.StaffName != "" {
		line("Mechanic", r.StaffName)
	}
	pdf.Ln(4)

	// services table
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(110, 8, "Service", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Minutes", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "List price", "B", 1, "R", false, 0, "")

	pdf.SetFont(fontFamily, "", 12)
	for _, svc := range r.Services {
		pdf.CellFormat(110, 8, svc.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", svc.Duration), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, money(svc.Price), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 12)
	line("Price", money(r.Appointment.Price))
	pdf.SetFont(fontFamily, "", 12)
	if r.Appointment.MaterialCost > 0 {
		line("Parts", money(r.Appointment.MaterialCost))
		line("Labour", money(r.Appointment.Profit()))
	}

	if r.Appointment.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, "Notes: "+r.Appointment.Notes, "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("receipt: %w", err)
	}
	return pdf.Output(w)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
