package fileio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "fileio")

// Download fetches a URL and stores the body in a local file. An empty
// sink stores the file under the URL's base name in the current directory.
// It returns the path the file was written to.
func Download(ctx context.Context, source, sink string) (string, error) {
	if sink == "" {
		parsed, err := url.Parse(source)
		if err != nil {
			return "", fmt.Errorf("parsing source url %q: %w", source, err)
		}
		base := path.Base(parsed.Path)
		if base == "." || base == "/" {
			return "", fmt.Errorf("cannot derive a file name from %q", source)
		}
		sink, err = filepath.Abs(base)
		if err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %q: %w", source, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %q: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %q: unexpected status %s", source, resp.Status)
	}

	f, err := os.Create(sink)
	if err != nil {
		return "", fmt.Errorf("creating %q: %w", sink, err)
	}
	defer f.Close()

	written, err := io.Copy(f, resp.Body)
	if err != nil {
		return "", fmt.Errorf("writing %q: %w", sink, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"source": source,
		"sink":   sink,
		"bytes":  written,
	}).Debug("downloaded file")
	return sink, nil
}
