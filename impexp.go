package deliveries

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
)

// this file handles the import/export format: the same JSON array of
// deliveries the store persists, so an exported file can be re-imported
// anywhere as-is.

// ImportDeliveries reads an import file from r. The file must be a JSON
// array; anything else aborts the import with no partial result. Array
// entries without a numeric "deliveryNumber" are skipped, entries with one
// must fully parse as a delivery.
func ImportDeliveries(r io.Reader) ([]Delivery, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import data: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("import data is not a JSON array of deliveries: %w", err)
	}

	var list []Delivery
	for i, raw := range raws {
		// Probe for the merge key first: records without one are not
		// deliveries and are silently left out.
		var probe struct {
			DeliveryNumber *float64 `json:"deliveryNumber"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil || probe.DeliveryNumber == nil {
			log.Printf("skipping import record %d: no delivery number", i)
			continue
		}
		var d Delivery
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("cannot parse delivery at index %d: %w", i, err)
		}
		list = append(list, d)
	}
	return list, nil
}

// Merge folds incoming deliveries into current, keyed by delivery number
// with the incoming record winning on conflict, and returns the result
// sorted ascending by number. Merging the same input twice is a no-op.
func Merge(current, incoming []Delivery) []Delivery {
	index := make(map[int]int, len(current))
	merged := make([]Delivery, len(current))
	copy(merged, current)
	for i, d := range merged {
		index[d.DeliveryNumber] = i
	}

	for _, d := range incoming {
		if i, ok := index[d.DeliveryNumber]; ok {
			merged[i] = d
			continue
		}
		index[d.DeliveryNumber] = len(merged)
		merged = append(merged, d)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DeliveryNumber < merged[j].DeliveryNumber
	})
	return merged
}

// ExportDeliveries writes the full list to w in the import/export format.
// Exporting never changes stored state.
func ExportDeliveries(w io.Writer, list []Delivery) error {
	if list == nil {
		list = []Delivery{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal deliveries: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}
