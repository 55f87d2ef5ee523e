// Package types provides type definitions for the records stored in the
// remote record tree and derived data shared across the system.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Status is the review state of an application record.
type Status string

// The three legal application states. Pending is the initial state;
// staff may move a record from any state to any other in one step.
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is one of the three legal states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ParseStatus converts user input into a Status, accepting any casing.
func ParseStatus(raw string) (Status, error) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Rating is a quality score that survives whatever shape the store hands
// back: a number, a numeric string, or garbage. Malformed values decode
// to the zero value with Valid unset instead of failing the record.
type Rating struct {
	Value float64
	Valid bool
}

// NewRating returns a valid rating with the given score.
func NewRating(value float64) Rating {
	return Rating{Value: value, Valid: true}
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else,
// including null, leaves the rating invalid without raising an error.
func (r *Rating) UnmarshalJSON(data []byte) error {
	r.Value, r.Valid = 0, false

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		r.Value, r.Valid = num, true
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if num, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			r.Value, r.Valid = num, true
		}
	}
	return nil
}

// MarshalJSON writes the score as a number, defaulting to 0 when unset.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("0"), nil
	}
	return json.Marshal(r.Value)
}

// ApplicationRecord is one applicant submission. The store key is carried
// separately; it is assigned by the store and never serialized back.
type ApplicationRecord struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Job        string `json:"job"`
	Status     Status `json:"status"`
	Rating     Rating `json:"rating"`
	Summary    string `json:"summary"`
	ResumeData string `json:"resume_data,omitempty"` // base64-encoded PDF
}

// Company is a registered reviewing organization. CompanyName is the
// foreign-key value inside ApplicationRecord.Company, not the store key.
type Company struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Password    string `json:"password"` // bcrypt hash at rest
}

// JobPosting is a job a company is recruiting for. Value is the
// comma-separated keyword list used as AI scoring criteria.
type JobPosting struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	CompanyName string `json:"company_name"`
}

// CompanyStats is the per-company snapshot derived from the applicant set.
// Total counts only the three known states, so a record with a malformed
// status contributes to none of the counts.
type CompanyStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Approved  int     `json:"approved"`
	Rejected  int     `json:"rejected"`
	AvgRating float64 `json:"avg_rating"`
}
