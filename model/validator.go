package model

import "time"

// ValidationResult is a snapshot of the trial verdict.
type ValidationResult struct {
	Active     bool        `json:"active"`
	Status     TrialStatus `json:"status"`
	DaysLeft   int         `json:"daysLeft,omitempty"`
	TrialStart time.Time   `json:"trialStart,omitempty"`
}
