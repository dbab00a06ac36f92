package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tektronix/lib-trial-license-go/model"
)

// AssertValidationResult is a helper function to check a trial verdict
func AssertValidationResult(t *testing.T, result model.ValidationResult, expectedStatus model.TrialStatus, expectedDays int) {
	t.Helper()
	assert.Equal(t, expectedStatus, result.Status, "trial status mismatch")
	assert.Equal(t, expectedStatus == model.Available, result.Active, "active flag mismatch")

	if expectedStatus == model.Available {
		assert.Equal(t, expectedDays, result.DaysLeft, "days left mismatch")
	}
}
