package fileio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Read reads a file, picking the format from its extension:
//
//	.csv        [][]string
//	.json       map[string]any, []any, or scalar
//	.jsonl      []any
//	.yml/.yaml  map[string]any, []any, or scalar
//	.xlsx       [][]string (first sheet)
//
// Formats that need a concrete target type (gob) have no dispatcher entry;
// use their typed functions directly. Unknown extensions fail with an
// *UnsupportedFormatError.
func Read(path string) (any, error) {
	switch ext(path) {
	case ".csv":
		return ReadCSV(path, nil)
	case ".json":
		var v any
		if err := ReadJSON(path, &v); err != nil {
			return nil, err
		}
		return v, nil
	case ".jsonl":
		return ReadJSONL[any](path)
	case ".yml", ".yaml":
		var v any
		if err := ReadYAML(path, &v); err != nil {
			return nil, err
		}
		return v, nil
	case ".xlsx":
		return ReadXLSX(path, "")
	default:
		return nil, &UnsupportedFormatError{Path: path, Ext: ext(path)}
	}
}

// Write writes data to a file, picking the format from the extension. CSV
// and XLSX require [][]string data; JSON, JSONL and YAML accept anything
// their encoders accept (JSONL requires a slice, written as []any).
func Write(path string, data any) error {
	switch ext(path) {
	case ".csv":
		records, ok := data.([][]string)
		if !ok {
			return fmt.Errorf("%w: csv needs [][]string, got %T", ErrUnexpectedData, data)
		}
		return WriteCSV(path, records, nil)
	case ".json":
		return WriteJSON(path, data)
	case ".jsonl":
		records, ok := data.([]any)
		if !ok {
			return fmt.Errorf("%w: jsonl needs []any, got %T", ErrUnexpectedData, data)
		}
		return WriteJSONL(path, records)
	case ".yml", ".yaml":
		return WriteYAML(path, data)
	case ".xlsx":
		rows, ok := data.([][]string)
		if !ok {
			return fmt.Errorf("%w: xlsx needs [][]string, got %T", ErrUnexpectedData, data)
		}
		return WriteXLSX(path, "", rows)
	default:
		return &UnsupportedFormatError{Path: path, Ext: ext(path)}
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
