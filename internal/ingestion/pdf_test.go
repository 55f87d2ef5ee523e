package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{"valid", []byte("%PDF-1.7 content"), ""},
		{"exactly magic", []byte("%PDF"), ""},
		{"empty", []byte{}, "file is empty"},
		{"nil", nil, "file is empty"},
		{"wrong magic", []byte("PK\x03\x04zip"), "not a valid PDF"},
		{"truncated magic", []byte("%P"), "not a valid PDF"},
		{"magic mid-file", []byte("xx%PDF-1.4"), "not a valid PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDF(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePDFTooLarge(t *testing.T) {
	data := make([]byte, MaxResumeSize+1)
	copy(data, "%PDF")

	err := ValidatePDF(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file too large")
}

func TestValidatePDFAtSizeLimit(t *testing.T) {
	data := make([]byte, MaxResumeSize)
	copy(data, "%PDF")

	assert.NoError(t, ValidatePDF(data))
}

func TestReadResume(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.5 resume"), 0o644))

	data, err := ReadResume(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReadResumeMissingFile(t *testing.T) {
	_, err := ReadResume(filepath.Join(t.TempDir(), "absent.pdf"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "cannot read file")
}

func TestReadResumeInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := ReadResume(path)
	assert.ErrorContains(t, err, "not a valid PDF")
}

func TestEncodeDecode(t *testing.T) {
	original := []byte("%PDF-1.4 binary\x00\x01payload")

	decoded, err := Decode(Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("not base64!!!")
	assert.ErrorContains(t, err, "failed to decode resume payload")
}

func TestPageCountUnreadable(t *testing.T) {
	// Magic bytes alone do not make a parseable document.
	_, err := PageCount([]byte("%PDF-1.7 truncated"))
	assert.Error(t, err)
}
