package domain

import "time"

// AdminSession is the persisted admin login record. Sessions never
// expire; they end only on logout or when the stored record turns out
// to be structurally invalid.
type AdminSession struct {
	Authenticated bool      `json:"authenticated"`
	LoginTime     time.Time `json:"loginTime"`
	SessionID     string    `json:"sessionId"`
}

// IsValid reports whether the record is structurally usable: the
// authenticated flag set and a login timestamp present. No expiry check.
func (s AdminSession) IsValid() bool {
	return s.Authenticated && !s.LoginTime.IsZero() && s.SessionID != ""
}

type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)
