package fileio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSON reads a JSON file into v, which must be a pointer.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	return nil
}

// WriteJSON writes v to a JSON file, pretty-printed with four-space
// indentation. Map keys come out sorted, which keeps output stable.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding for %q: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// ReadJSONL reads a JSON Lines file: one document per non-empty line, each
// decoded into a T.
func ReadJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var records []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("decoding %q line %d: %w", path, line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return records, nil
}

// WriteJSONL writes records to a JSON Lines file, one compact document per
// line.
func WriteJSONL[T any](path string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	writer := bufio.NewWriter(f)
	encoder := json.NewEncoder(writer)
	for i, record := range records {
		// Encode emits exactly one line per document.
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("encoding record %d for %q: %w", i, path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return f.Close()
}
