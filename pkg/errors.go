package pkg

import (
	"fmt"
	"strings"

	"github.com/tektronix/lib-trial-license-go/constant"
)

// ValidationError records an error indicating the gate configuration is invalid.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// ForbiddenError indicates an operation that couldn't be performed because the trial license is not active.
type ForbiddenError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e ForbiddenError) Error() string {
	return e.Message
}

// InternalServerError indicates an unexpected failure while evaluating the trial.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
//
// Parameters:
// - err: The error to be validated.
// - entityType: The type of the entity associated with the error.
//
// Returns:
// - An InternalServerError with the appropriate code, title, message.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
// The trial refusal is deliberately generic: it never says which integrity check failed.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrTrialNotActive: ForbiddenError{
			EntityType: entityType,
			Code:       constant.ErrTrialNotActive.Error(),
			Title:      "Trial license is not active",
			Message:    "The evaluation license on this machine is not active. Please contact your account manager to purchase a license.",
		},
		constant.ErrInvalidVendor: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidVendor.Error(),
			Title:      "Vendor is missing",
			Message:    fmt.Sprintf("The %s environment variable is missing. Please set the vendor name used to namespace the trial record.", args...),
		},
		constant.ErrInvalidProduct: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidProduct.Error(),
			Title:      "Product is missing",
			Message:    fmt.Sprintf("The %s environment variable is missing. Please set the product name used to namespace the trial record.", args...),
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
