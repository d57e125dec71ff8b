package size

import (
	"bytes"
	"compress/gzip"
	"fmt"

	"github.com/andybalholm/brotli"
)

// Size holds the measured byte sizes of one build artifact. When used as a
// delta, the fields carry signed differences and New marks artifacts that
// had no prior measurement.
type Size struct {
	Name     string `json:"name"`
	Original int    `json:"original"`
	Gzip     int    `json:"gzip"`
	Brotli   int    `json:"brotli"`
	New      bool   `json:"new,omitempty"`
}

// Measure computes the raw, gzip and brotli byte lengths of an artifact.
// Original counts encoded bytes, not characters, so multi-byte runes count
// per byte. Pure function of (name, code); New is left unset.
func Measure(name string, code []byte) (Size, error) {
	gz, err := gzipLen(code)
	if err != nil {
		return Size{}, fmt.Errorf("gzip %s: %w", name, err)
	}
	br, err := brotliLen(code)
	if err != nil {
		return Size{}, fmt.Errorf("brotli %s: %w", name, err)
	}

	return Size{
		Name:     name,
		Original: len(code),
		Gzip:     gz,
		Brotli:   br,
	}, nil
}

func gzipLen(code []byte) (int, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	if _, err := w.Write(code); err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	return buf.Len(), nil
}

func brotliLen(code []byte) (int, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)

	if _, err := w.Write(code); err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	return buf.Len(), nil
}
