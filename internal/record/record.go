// Package record defines the credential record stored by passman and the
// naming rules for the service identifier.
package record

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// Fields is the fixed column set of the persisted CSV file, in file order.
// The header row of every store file must match it exactly.
var Fields = []string{"service", "username", "password", "created_at"}

// TimeLayout is the creation-timestamp format, second precision, local time.
const TimeLayout = "2006-01-02 15:04:05"

// Record is one stored credential entry.
//
// Records are immutable once created: Add writes them, Delete removes them,
// nothing updates them in place.
type Record struct {
	Service   string
	Username  string
	Password  string
	CreatedAt time.Time
}

// Key identifies a record for duplicate detection and deletion.
//
// The service is compared byte-exactly (it is restricted to ASCII anyway).
// The username is NFC-normalized so that composed and decomposed input of
// the same text resolve to the same identity; the stored bytes are kept
// verbatim.
type Key struct {
	Service  string
	Username string
}

// NewKey builds the canonical identity key for a (service, username) pair.
func NewKey(service, username string) Key {
	return Key{
		Service:  service,
		Username: norm.NFC.String(username),
	}
}

// Key returns the record's canonical identity key.
func (r Record) Key() Key {
	return NewKey(r.Service, r.Username)
}

// FormatCreatedAt renders the creation timestamp in the persisted layout.
func (r Record) FormatCreatedAt() string {
	return r.CreatedAt.Format(TimeLayout)
}
