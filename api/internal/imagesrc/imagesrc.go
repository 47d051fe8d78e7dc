// Package imagesrc loads image artifacts from disk and validates that
// bytes handed to the pipeline really are an image format we can process.
package imagesrc

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"snapsolve/api/internal/util"
)

// magic prefixes for the formats the pipeline decodes
var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	gifMagic  = []byte("GIF8")
)

// Sniff returns the MIME type of a supported image payload, or "" when the
// bytes are not a recognizable image.
func Sniff(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "image/jpeg"
	case bytes.HasPrefix(data, pngMagic):
		return "image/png"
	case bytes.HasPrefix(data, gifMagic):
		return "image/gif"
	}
	// fall back to content sniffing for formats without a hard-coded magic
	if mime := util.PickMIME("", "", data); strings.HasPrefix(mime, "image/") {
		return mime
	}
	return ""
}

// IsImage reports whether data looks like a decodable image.
func IsImage(data []byte) bool { return Sniff(data) != "" }

// LoadFile reads an image from path and rejects non-image content before
// it reaches OCR.
func LoadFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	mime := Sniff(data)
	if mime == "" {
		return nil, "", fmt.Errorf("%s: not a supported image format", path)
	}
	return data, mime, nil
}
