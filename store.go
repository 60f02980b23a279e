package deliveries

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultStoreFile is the store file name used when nothing is configured.
const DefaultStoreFile = "deliveries.json"

// Load reads the delivery list from the store file. An absent file, a file
// that is not valid JSON, or a JSON value that is not an array all load as
// an empty list: the store is advisory, a corrupt one behaves like a fresh
// one. Only real I/O failures are returned.
func Load(path string) ([]Delivery, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store file %q: %w", path, err)
	}
	var list []Delivery
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, nil
	}
	return list, nil
}

// Save serializes the full list back to the store file, overwriting the
// previous content.
func Save(path string, list []Delivery) error {
	if list == nil {
		list = []Delivery{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write store file %q: %w", path, err)
	}
	return nil
}

// Wipe irreversibly clears the store by removing its file. A store that was
// already absent is not an error.
func Wipe(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not remove store file %q: %w", path, err)
	}
	return nil
}
