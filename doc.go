// Package deliveries manages a local ledger of delivery records: one
// record per trip covering every catalog item across every market, with
// quantities, prices and derived totals.
//
// The package is presentation-free. Records live in a single JSON array
// file (see Load and Save); aggregation over the list is done by pure
// functions so that the command-line surface, the markdown renderer and
// the PDF exporter all share the same arithmetic.
package deliveries
