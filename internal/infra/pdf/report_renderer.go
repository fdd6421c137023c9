// Package pdf renders service reports as A4 PDF documents.
package pdf

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"vacuum/config"
	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/service"

	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"
)

const (
	contentType = "application/pdf"
	fontFamily  = "Helvetica"
	lineHeight  = 6.0
	labelWidth  = 45.0
	dateLayout  = "02 Jan 2006"
	emptyValue  = "-"
	qrSize      = 28.0
	qrImageName = "report-link"
)

// reportRenderer implements service.DocumentRenderer with gofpdf.
type reportRenderer struct {
	organization string
	addressLines []string
	linkBaseURL  string
	qr           service.QRCodeEncoder
	logger       *slog.Logger
}

// NewReportRenderer prints the configured organization as the letterhead.
func NewReportRenderer(cfg *config.Config, qr service.QRCodeEncoder, logger *slog.Logger) service.DocumentRenderer {
	return &reportRenderer{
		organization: cfg.Report.OrganizationName,
		addressLines: cfg.Report.AddressLines,
		linkBaseURL:  strings.TrimRight(cfg.Report.LinkBaseURL, "/"),
		qr:           qr,
		logger:       logger,
	}
}

func (r *reportRenderer) ContentType() string {
	return contentType
}

func (r *reportRenderer) RenderServiceReport(ctx context.Context, view *entity.ServiceReportView) ([]byte, error) {
	if view == nil {
		return nil, errors.New("report view is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 15)
	doc.SetTitle("Service Report "+view.ID.String(), true)
	doc.SetCreator(r.organization, true)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont(fontFamily, "I", 8)
		doc.CellFormat(0, 5, "Page "+strconv.Itoa(doc.PageNo())+" of {nb}", "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	w := &writer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	headWidth := r.reportLink(doc, view)
	r.letterhead(w, headWidth)
	summary(w, view)
	machine(w, view.Machine)
	customer(w, view.Customer)
	parts(w, view.Parts)
	attachments(w, view.Files)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render service report")
	}

	return buf.Bytes(), nil
}

// reportLink draws the QR code in the top right corner and returns the width
// left for the letterhead. A failed encode only drops the code.
func (r *reportRenderer) reportLink(doc *gofpdf.Fpdf, view *entity.ServiceReportView) float64 {
	if r.linkBaseURL == "" || r.qr == nil {
		return 0
	}

	link := r.linkBaseURL + "/service-reports/" + view.ID.String()
	png, err := r.qr.EncodePNG(link)
	if err != nil {
		r.logger.Warn("Failed to encode report link", slog.String("reportID", view.ID.String()), slog.Any("error", err))

		return 0
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	if doc.Err() {
		r.logger.Warn("Failed to embed report link", slog.String("reportID", view.ID.String()), slog.Any("error", doc.Error()))
		doc.ClearError()

		return 0
	}

	pageWidth, _ := doc.GetPageSize()
	left, top, right, _ := doc.GetMargins()
	doc.ImageOptions(qrImageName, pageWidth-right-qrSize, top, qrSize, qrSize, false, opts, 0, link)

	return pageWidth - left - right - qrSize - 2
}

func (r *reportRenderer) letterhead(w *writer, width float64) {
	w.doc.SetFont(fontFamily, "B", 16)
	w.doc.CellFormat(width, 9, w.tr(r.organization), "", 1, "L", false, 0, "")

	w.doc.SetFont(fontFamily, "", 9)
	for _, line := range r.addressLines {
		w.doc.CellFormat(width, 4.5, w.tr(line), "", 1, "L", false, 0, "")
	}
	if width > 0 {
		// keep the banner clear of the code
		_, top, _, _ := w.doc.GetMargins()
		if y := top + qrSize; w.doc.GetY() < y {
			w.doc.SetY(y)
		}
	}
	w.doc.Ln(3)

	w.doc.SetFont(fontFamily, "B", 13)
	w.doc.SetFillColor(230, 236, 245)
	w.doc.CellFormat(0, 9, "SERVICE REPORT", "TB", 1, "C", true, 0, "")
	w.doc.Ln(3)
}

func summary(w *writer, view *entity.ServiceReportView) {
	w.row("Report ID", view.ID.String())
	w.row("Date", view.CreatedAt.Format(dateLayout))
	w.row("Service type", view.ServiceTypeName)
	w.row("Filed by", view.AuthorName)
	w.row("Email", view.AuthorEmail)
	w.row("Service person", deref(view.ServicePersonName))

	w.heading("Problem")
	w.paragraph(deref(view.Problem))
	w.heading("Solution")
	w.paragraph(deref(view.Solution))
}

func machine(w *writer, info *entity.MachineInfo) {
	if info == nil {
		return
	}

	w.heading("Machine")
	w.row("Serial no", info.SerialNo)
	w.row("Model no", info.ModelNo)
	w.row("Part no", deref(info.PartNo))
	w.row("Type", info.TypeName)
	w.row("Manufactured", formatDate(info.DateOfManufacturing))
}

func customer(w *writer, info *entity.CustomerInfo) {
	if info == nil {
		return
	}

	w.heading("Customer")
	w.row("Company", deref(info.Company))
	w.row("Name", deref(info.Name))
	w.row("Contact", deref(info.Contact))
	w.row("Email", deref(info.Email))
	w.row("Address", deref(info.Address))
	w.row("Sold on", info.SoldDate.Format(dateLayout))
}

func parts(w *writer, items []*entity.ReportPartView) {
	w.heading("Parts used")
	if len(items) == 0 {
		w.paragraph("No parts recorded.")

		return
	}

	widths := []float64{12, 70, 70, 28}
	w.doc.SetFont(fontFamily, "B", 10)
	w.doc.SetFillColor(240, 240, 240)
	for i, title := range []string{"#", "Model no", "Part no", "Qty"} {
		w.doc.CellFormat(widths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	w.doc.Ln(-1)

	w.doc.SetFont(fontFamily, "", 10)
	for i, item := range items {
		w.doc.CellFormat(widths[0], 7, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		w.doc.CellFormat(widths[1], 7, w.tr(item.ModelNo), "1", 0, "L", false, 0, "")
		w.doc.CellFormat(widths[2], 7, w.tr(deref(item.PartNo)), "1", 0, "L", false, 0, "")
		w.doc.CellFormat(widths[3], 7, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		w.doc.Ln(-1)
	}
}

func attachments(w *writer, files []*entity.ReportFileView) {
	if len(files) == 0 {
		return
	}

	w.heading("Attachments")
	w.doc.SetFont(fontFamily, "", 9)
	for _, file := range files {
		if file.URL != "" {
			w.doc.SetTextColor(20, 60, 160)
			w.doc.CellFormat(0, 5, w.tr(file.FileKey), "", 1, "L", false, 0, file.URL)
			w.doc.SetTextColor(0, 0, 0)

			continue
		}
		w.doc.CellFormat(0, 5, w.tr(file.FileKey), "", 1, "L", false, 0, "")
	}
}

// writer pairs the document with its cp1252 translator.
type writer struct {
	doc *gofpdf.Fpdf
	tr  func(string) string
}

func (w *writer) heading(title string) {
	w.doc.Ln(2)
	w.doc.SetFont(fontFamily, "B", 11)
	w.doc.CellFormat(0, 7, w.tr(title), "B", 1, "L", false, 0, "")
	w.doc.Ln(1)
}

func (w *writer) row(label, value string) {
	w.doc.SetFont(fontFamily, "B", 10)
	w.doc.CellFormat(labelWidth, lineHeight, w.tr(label), "", 0, "L", false, 0, "")
	w.doc.SetFont(fontFamily, "", 10)
	w.doc.MultiCell(0, lineHeight, w.tr(orEmpty(value)), "", "L", false)
}

func (w *writer) paragraph(text string) {
	w.doc.SetFont(fontFamily, "", 10)
	w.doc.MultiCell(0, lineHeight, w.tr(orEmpty(text)), "", "L", false)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func orEmpty(value string) string {
	if value == "" {
		return emptyValue
	}

	return value
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.Format(dateLayout)
}
