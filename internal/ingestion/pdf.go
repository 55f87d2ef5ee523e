// Package ingestion handles the resume payload: PDF validation, the
// text-safe encoding stored in the record tree, and basic diagnostics.
package ingestion

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// MaxResumeSize is the upper bound on an uploaded resume.
const MaxResumeSize = 10 * 1024 * 1024 // 10 MB

var pdfMagic = []byte("%PDF")

// ValidationError reports a resume rejected before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid resume: " + e.Reason
}

// ValidatePDF checks that data looks like an acceptable PDF upload:
// non-empty, within the size limit, and carrying the %PDF magic bytes.
// The magic-byte check is the only format validation performed.
func ValidatePDF(data []byte) error {
	if len(data) == 0 {
		return &ValidationError{Reason: "file is empty"}
	}
	if len(data) > MaxResumeSize {
		return &ValidationError{Reason: fmt.Sprintf("file too large (%.2f MB), maximum is 10 MB", float64(len(data))/(1024*1024))}
	}
	if len(data) < len(pdfMagic) || !bytes.Equal(data[:len(pdfMagic)], pdfMagic) {
		return &ValidationError{Reason: "file is not a valid PDF"}
	}
	return nil
}

// ReadResume loads a resume from disk and validates it.
func ReadResume(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot read file %s", path)}
	}
	if err := ValidatePDF(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Encode converts the raw PDF into the text-safe form stored in the record.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reverses Encode.
func Decode(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode resume payload: %w", err)
	}
	return data, nil
}

// PageCount parses the PDF and reports its page count. It is diagnostic
// only: an unreadable document returns an error, and callers treat that
// as a warning rather than a rejection.
func PageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %w", err)
	}
	return reader.NumPage(), nil
}
