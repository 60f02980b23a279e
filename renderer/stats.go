// Package renderer builds markdown views of the delivery store: the stats
// dashboard, single delivery details, and the catalog listing. It has no
// terminal or storage dependency, callers decide where the markdown goes.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/moshav/deliveries"
	"github.com/moshav/deliveries/date"
)

// Stats is the fully computed view the stats dashboard renders. The latest
// delivery is shown regardless of the filter; everything else is over the
// filtered subset.
type Stats struct {
	Range    date.Range
	Filtered []deliveries.Delivery
	Latest   *deliveries.Delivery
	Totals   deliveries.Totals
	CrossTab deliveries.CrossTab
	Currency deliveries.Currency
}

// StatsMarkdown renders the stats dashboard to a markdown string.
func StatsMarkdown(s *Stats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Deliveries")
	doc.PlainText(fmt.Sprintf("Range: %s", s.Range))

	doc.H2("Latest Delivery")
	if s.Latest == nil {
		doc.PlainText("No deliveries yet.")
	} else {
		deliveryDetail(doc, s.Latest, s.Currency)
	}

	doc.H2("Deliveries in Range")
	rows := make([][]string, 0, len(s.Filtered))
	for _, d := range s.Filtered {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.DeliveryNumber),
			d.Date.String(),
			d.TimeSaved,
			fmt.Sprintf("%d", d.TotalQty),
			s.Currency.Format(d.TotalAmount),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Time", "Qty", "Amount"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Deliveries", "Total Qty", "Total " + s.Currency.Symbol(), "Avg " + s.Currency.Symbol() + " / Delivery"},
		Rows: [][]string{{
			fmt.Sprintf("%d", len(s.Filtered)),
			fmt.Sprintf("%d", s.Totals.TotalQty),
			s.Currency.Format(s.Totals.TotalAmount),
			s.Currency.Format(deliveries.Average(s.Totals, len(s.Filtered))),
		}},
	})

	doc.H2("Per Item and Market")
	doc.Table(crossTabTable(s.CrossTab, s.Currency))

	return doc.String()
}

// DeliveryMarkdown renders one delivery's full detail to a markdown string.
func DeliveryMarkdown(d *deliveries.Delivery, cur deliveries.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Delivery #%d", d.DeliveryNumber))
	deliveryDetail(doc, d, cur)
	return doc.String()
}

// CatalogMarkdown renders the active catalogs to a markdown string.
func CatalogMarkdown(c deliveries.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Catalog")
	for _, section := range []struct {
		title   string
		options []deliveries.Option
	}{
		{"Items", c.Items},
		{"Markets", c.Markets},
		{"Drivers", c.Drivers},
		{"Cars", c.Cars},
	} {
		doc.H2(section.title)
		rows := make([][]string, 0, len(section.options))
		for _, o := range section.options {
			key := o.Key
			if key == "" {
				key = "(unassigned)"
			}
			rows = append(rows, []string{key, o.Label})
		}
		doc.Table(md.TableSet{Header: []string{"Key", "Label"}, Rows: rows})
	}
	return doc.String()
}

func deliveryDetail(doc *md.Markdown, d *deliveries.Delivery, cur deliveries.Currency) {
	doc.PlainText(fmt.Sprintf("**#%d** — %s %s  ", d.DeliveryNumber, d.Date, d.TimeSaved))
	doc.PlainText(fmt.Sprintf("Driver: **%s** | Car: **%s**  ", d.Driver(), d.Car()))
	doc.PlainText(fmt.Sprintf("Total Qty: **%d** | Total: **%s**", d.TotalQty, cur.Format(d.TotalAmount)))

	rows := make([][]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		rows = append(rows, []string{
			l.ItemLabel,
			l.MarketLabel,
			fmt.Sprintf("%d", l.Qty),
			cur.Format(l.Price),
			cur.Format(l.LineTotal),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Market", "Qty", "Price", "Total"},
		Rows:   rows,
	})
}

func crossTabTable(ct deliveries.CrossTab, cur deliveries.Currency) md.TableSet {
	header := []string{"Item"}
	for _, m := range ct.Markets {
		header = append(header, m.Label+" Qty", m.Label+" "+cur.Symbol())
	}
	header = append(header, "All Qty", "All "+cur.Symbol())

	rows := make([][]string, 0, len(ct.Rows))
	for _, row := range ct.Rows {
		cells := []string{row.Item.Label}
		for _, b := range row.Buckets {
			cells = append(cells, fmt.Sprintf("%d", b.Qty), cur.Format(b.Amount))
		}
		cells = append(cells, fmt.Sprintf("%d", row.TotalQty()), cur.Format(row.TotalAmount()))
		rows = append(rows, cells)
	}
	return md.TableSet{Header: header, Rows: rows}
}
