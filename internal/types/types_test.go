package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())

	assert.False(t, Status("Archived").Valid())
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("").Valid())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "Pending", want: StatusPending},
		{input: "approved", want: StatusApproved},
		{input: "REJECTED", want: StatusRejected},
		{input: "Archived", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatingUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantValid bool
	}{
		{name: "Number", input: `{"rating": 73}`, wantValue: 73, wantValid: true},
		{name: "Zero number is still present", input: `{"rating": 0}`, wantValue: 0, wantValid: true},
		{name: "Numeric string", input: `{"rating": "82"}`, wantValue: 82, wantValid: true},
		{name: "Non-numeric string", input: `{"rating": "excellent"}`, wantValid: false},
		{name: "Null", input: `{"rating": null}`, wantValid: false},
		{name: "Absent field", input: `{}`, wantValid: false},
		{name: "Wrong type entirely", input: `{"rating": {"nested": true}}`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record ApplicationRecord
			require.NoError(t, json.Unmarshal([]byte(tt.input), &record))
			assert.Equal(t, tt.wantValid, record.Rating.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, record.Rating.Value)
			}
		})
	}
}

func TestRatingMarshal(t *testing.T) {
	data, err := json.Marshal(NewRating(73))
	require.NoError(t, err)
	assert.Equal(t, "73", string(data))

	// An unset rating serializes as the documented default.
	data, err = json.Marshal(Rating{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestRecordDecodeTolerance(t *testing.T) {
	// A record written by another client with a malformed status and a
	// string rating still decodes; nothing is coerced or rejected.
	raw := `{"full_name":"Amina","company":"Acme","status":"In Review","rating":"61"}`

	var record ApplicationRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	assert.Equal(t, Status("In Review"), record.Status)
	assert.False(t, record.Status.Valid())
	assert.True(t, record.Rating.Valid)
	assert.Equal(t, 61.0, record.Rating.Value)
}

func TestRequestValidation(t *testing.T) {
	valid := SubmitApplicationRequest{
		FullName: "Amina Hassan",
		Email:    "amina@example.com",
		Company:  "Acme",
		Job:      "Backend Engineer",
		Resume:   []byte("%PDF-1.4"),
	}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	missingResume := valid
	missingResume.Resume = nil
	assert.Error(t, missingResume.Validate())

	shortPassword := SignupRequest{CompanyName: "Acme", Email: "hr@acme.com", Password: "12345"}
	assert.Error(t, shortPassword.Validate())

	okSignup := SignupRequest{CompanyName: "Acme", Email: "hr@acme.com", Password: "123456"}
	assert.NoError(t, okSignup.Validate())
}
