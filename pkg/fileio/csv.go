package fileio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/malywonsz/mpu/pkg/datastructures"
)

// CSVOptions control CSV reading and writing. The zero value means comma
// separated, no comment lines, nothing skipped.
type CSVOptions struct {
	// Comma is the field delimiter; ',' when zero
	Comma rune

	// Comment, when non-zero, makes lines starting with it be ignored
	Comment rune

	// SkipRows lists 0-based record positions to drop after parsing
	SkipRows []int
}

// ReadCSV reads a CSV file into records. Rows listed in opts.SkipRows are
// removed from the result. Records may have varying field counts.
func ReadCSV(path string, opts *CSVOptions) ([][]string, error) {
	if opts == nil {
		opts = &CSVOptions{}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.Comment = opts.Comment

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return datastructures.NewEList(records).RemoveIndices(opts.SkipRows).Values(), nil
}

// ReadCSVDicts reads a CSV file whose first record is a header and returns
// one map per remaining record, keyed by the header fields.
func ReadCSVDicts(path string, opts *CSVOptions) ([]map[string]string, error) {
	records, err := ReadCSV(path, opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	dicts := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		dict := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				dict[key] = record[i]
			}
		}
		dicts = append(dicts, dict)
	}
	return dicts, nil
}

// WriteCSV writes records to a CSV file, creating or truncating it.
func WriteCSV(path string, records [][]string, opts *CSVOptions) error {
	if opts == nil {
		opts = &CSVOptions{}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if opts.Comma != 0 {
		writer.Comma = opts.Comma
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return f.Close()
}
