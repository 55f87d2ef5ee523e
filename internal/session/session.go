// Package session persists the signed-in company between runs. The
// session is one small JSON file at a fixed name; it only scopes queries
// to the current company and is not part of the workflow core.
package session

import (
	"encoding/json"
	"os"
)

// DefaultFile is the session filename used when none is configured.
const DefaultFile = "session.json"

// Session identifies the signed-in company.
type Session struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Active reports whether a company is signed in.
func (s Session) Active() bool {
	return s.CompanyName != ""
}

// Save writes the session to path.
func Save(path string, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Load reads the session at path. A missing or corrupt file yields an
// empty session, not an error; the caller just isn't signed in.
func Load(path string) Session {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}
	}
	return s
}

// Clear removes the session file. Clearing an absent session is a no-op.
func Clear(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
