package model

import (
	"time"

	cn "github.com/tektronix/lib-trial-license-go/constant"
)

// Config holds the caller supplied configuration of the trial gate.
type Config struct {
	Vendor   string `json:"vendor"`
	Product  string `json:"product"`
	DataDir  string `json:"dataDir,omitempty"`
	CacheDir string `json:"cacheDir,omitempty"`
}

// TrialStatus is the in-memory verdict of the trial lifecycle.
type TrialStatus int

const (
	Unknown TrialStatus = iota
	Available
	Expired
	Tampered
)

// String returns the lowercase name of the status.
func (s TrialStatus) String() string {
	switch s {
	case Available:
		return "available"
	case Expired:
		return "expired"
	case Tampered:
		return "tampered"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s TrialStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TrialRecord is the persisted, signed trial state.
type TrialRecord struct {
	Signature  string
	TrialStart time.Time
	LastSeen   time.Time
}

// FormatTimestamp renders t in the record's literal date layout (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(cn.DateFormat)
}

// ParseTimestamp parses a timestamp written by FormatTimestamp.
func ParseTimestamp(literal string) (time.Time, error) {
	return time.Parse(cn.DateFormat, literal)
}

// Message returns the signed portion of the record: "{trial_start},{last_seen}".
func (r TrialRecord) Message() string {
	return FormatTimestamp(r.TrialStart) + cn.RecordSeparator + FormatTimestamp(r.LastSeen)
}

// String serializes the record as a single line.
func (r TrialRecord) String() string {
	return r.Signature + cn.RecordSeparator + r.Message()
}
