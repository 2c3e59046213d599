package fileio

import (
	"encoding/gob"
	"fmt"
	"os"
)

// ReadGob reads a gob-encoded file into v, which must be a pointer.
func ReadGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	return nil
}

// WriteGob writes v to a file using gob encoding.
func WriteGob(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	return f.Close()
}
