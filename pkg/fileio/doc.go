// Package fileio reads and writes common file formats, dispatching on the
// file extension the way a data-wrangling script would expect:
//
//   - .csv           — records as [][]string or []map[string]string
//   - .json          — pretty-printed, keys sorted
//   - .jsonl         — one compact JSON document per line
//   - .yml / .yaml   — YAML documents
//   - .xlsx          — spreadsheet sheets as [][]string
//   - .gob           — Go binary serialization
//
// It also provides small file utilities: HTTP download to a local path,
// streaming content hashes, and file metadata including MIME detection.
//
// The typed functions (ReadCSV, WriteJSON, ...) are the primary API; Read
// and Write are convenience dispatchers that pick the format from the path.
package fileio
