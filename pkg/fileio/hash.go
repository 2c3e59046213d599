package fileio

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// HashMethod names a supported hash function.
type HashMethod string

const (
	// SHA1 is the default hash method
	SHA1 HashMethod = "sha1"

	// MD5 is provided for legacy checksums only
	MD5 HashMethod = "md5"

	// SHA256 for integrity checks that must resist collisions
	SHA256 HashMethod = "sha256"
)

// defaultHashBuffer is the streaming read size (64 KiB) used when the
// caller passes bufferSize <= 0.
const defaultHashBuffer = 65536

// Hash computes the hex digest of a local file, streaming its content in
// chunks of bufferSize bytes. A bufferSize <= 0 selects the 64 KiB
// default.
func Hash(path string, method HashMethod, bufferSize int) (string, error) {
	var h hash.Hash
	switch method {
	case SHA1, "":
		h = sha1.New()
	case MD5:
		h = md5.New()
	case SHA256:
		h = sha256.New()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownHashMethod, method)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	if bufferSize <= 0 {
		bufferSize = defaultHashBuffer
	}
	if _, err := io.CopyBuffer(h, f, make([]byte, bufferSize)); err != nil {
		return "", fmt.Errorf("hashing %q: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
