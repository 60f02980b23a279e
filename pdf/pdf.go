// Package pdf renders delivery documents: the range summary report and the
// per-delivery receipt. Layouts are fixed A4 portrait with a vertical text
// cursor; a new page starts when the cursor passes the page threshold.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/moshav/deliveries"
	"github.com/moshav/deliveries/date"
)

// pageBreak is the cursor height (mm) past which a new page starts.
const pageBreak = 280

// Exporter writes delivery documents. The clock stamps the generation
// footer on receipts.
type Exporter struct {
	Currency deliveries.Currency
	Now      deliveries.Clock
}

// NewExporter returns an exporter formatting money in the given currency.
func NewExporter(cur deliveries.Currency, now deliveries.Clock) *Exporter {
	if now == nil {
		now = deliveries.SystemClock
	}
	return &Exporter{Currency: cur, Now: now}
}

// Summary writes the range summary report: the active range and aggregate
// totals, then one line per delivery in the order the list was provided.
func (e *Exporter) Summary(w io.Writer, list []deliveries.Delivery, r date.Range) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	y := 12.0
	doc.SetFont("Helvetica", "", 14)
	doc.Text(10, y, "Deliveries Summary Report")
	y += 8

	doc.SetFontSize(10)
	doc.Text(10, y, tr(fmt.Sprintf("Range: %s", r)))
	y += 6

	totals := deliveries.Sum(list)
	doc.Text(10, y, fmt.Sprintf("Deliveries: %d", len(list)))
	y += 5
	doc.Text(10, y, fmt.Sprintf("Total Qty: %d", totals.TotalQty))
	y += 5
	doc.Text(10, y, tr(fmt.Sprintf("Total Amount: %s", e.Currency.Format(totals.TotalAmount))))
	y += 8

	doc.SetFontSize(9)
	for _, d := range list {
		if y > pageBreak {
			doc.AddPage()
			y = 12
		}
		doc.Text(10, y, tr(fmt.Sprintf("#%d  %s %s  Driver:%s  Car:%s  Qty:%d  %s",
			d.DeliveryNumber, d.Date, d.TimeSaved, d.Driver(), d.Car(), d.TotalQty,
			e.Currency.Format(d.TotalAmount))))
		y += 5
	}

	return e.output(doc, w)
}

// Receipt writes one delivery's receipt: a header block, a table of every
// line with a nonzero quantity or price, and a generation timestamp footer.
func (e *Exporter) Receipt(w io.Writer, d deliveries.Delivery) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	y := 14.0
	doc.SetFont("Helvetica", "", 16)
	doc.Text(10, y, fmt.Sprintf("Delivery Receipt #%d", d.DeliveryNumber))
	y += 8

	doc.SetFontSize(10)
	doc.Text(10, y, fmt.Sprintf("Date: %s", d.Date))
	doc.Text(70, y, fmt.Sprintf("Time Saved: %s", d.TimeSaved))
	y += 6

	doc.Text(10, y, tr(fmt.Sprintf("Driver: %s", d.Driver())))
	doc.Text(70, y, tr(fmt.Sprintf("Car: %s", d.Car())))
	y += 6

	doc.Text(10, y, fmt.Sprintf("Total Qty: %d", d.TotalQty))
	doc.Text(70, y, tr(fmt.Sprintf("Total Amount: %s", e.Currency.Format(d.TotalAmount))))
	y += 10

	doc.Text(10, y, "Item")
	doc.Text(55, y, "Market")
	doc.Text(95, y, "Qty")
	doc.Text(115, y, "Price")
	doc.Text(155, y, "Total")
	y += 4

	doc.SetLineWidth(0.2)
	doc.Line(10, y, 200, y)
	y += 6

	lines := nonEmptyLines(d.Lines)
	if len(lines) == 0 {
		doc.Text(10, y, "No line items.")
	}
	for _, l := range lines {
		if y > pageBreak {
			doc.AddPage()
			y = 14
		}
		doc.Text(10, y, tr(l.ItemLabel))
		doc.Text(55, y, tr(l.MarketLabel))
		doc.Text(95, y, fmt.Sprintf("%d", l.Qty))
		doc.Text(115, y, tr(e.Currency.Format(l.Price)))
		doc.Text(155, y, tr(e.Currency.Format(l.LineTotal)))
		y += 6
	}

	y += 6
	if y > pageBreak {
		doc.AddPage()
		y = 14
	}
	doc.SetFontSize(9)
	doc.Text(10, y, fmt.Sprintf("Generated: %s", e.Now().Format("2006-01-02 15:04:05")))

	return e.output(doc, w)
}

// nonEmptyLines keeps the lines worth printing on a receipt: zero-quantity,
// zero-price lines are suppressed.
func nonEmptyLines(lines []deliveries.Line) []deliveries.Line {
	var out []deliveries.Line
	for _, l := range lines {
		if l.Qty != 0 || l.Price != 0 {
			out = append(out, l)
		}
	}
	return out
}

// output flushes the document, surfacing the renderer's error state before
// anything is written so a failed document never produces a partial file.
func (e *Exporter) output(doc *fpdf.Fpdf, w io.Writer) error {
	if doc.Err() {
		return fmt.Errorf("pdf renderer failed: %w", doc.Error())
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("could not write pdf: %w", err)
	}
	return nil
}
