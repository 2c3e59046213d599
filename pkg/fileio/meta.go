package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
	"github.com/gabriel-vasile/mimetype"
)

// FileMeta describes a local file.
type FileMeta struct {
	// Path is the absolute path of the file
	Path string

	// Size in bytes
	Size int64

	// AccessTime is when the content was last read
	AccessTime time.Time

	// ModTime is when the content was last changed
	ModTime time.Time

	// BirthTime is when the file was created; nil where the platform
	// does not record a birth time (most Linux filesystems)
	BirthTime *time.Time

	// MIMEType is the detected media type, e.g. "text/csv"
	MIMEType string
}

// Meta collects metadata about a local file, including its detected MIME
// type.
func Meta(path string) (*FileMeta, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", abs, err)
	}
	ts, err := times.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading times of %q: %w", abs, err)
	}

	meta := &FileMeta{
		Path:       abs,
		Size:       info.Size(),
		AccessTime: ts.AccessTime(),
		ModTime:    ts.ModTime(),
	}
	if ts.HasBirthTime() {
		birth := ts.BirthTime()
		meta.BirthTime = &birth
	}

	mime, err := mimetype.DetectFile(abs)
	if err != nil {
		return nil, fmt.Errorf("detecting mime type of %q: %w", abs, err)
	}
	meta.MIMEType = mime.String()
	return meta, nil
}
