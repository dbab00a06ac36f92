package constant

import "errors"

// Structured error codes for trial license operations
var (
	ErrTrialNotActive     = errors.New("TRL-0001")
	ErrInternalServer     = errors.New("TRL-0002")
	ErrMalformedRecord    = errors.New("TRL-0003")
	ErrMalformedTimestamp = errors.New("TRL-0004")
	ErrPayloadTooLarge    = errors.New("TRL-0005")
	ErrNoIdentifier       = errors.New("TRL-0006")
	ErrDirectoryNotFound  = errors.New("TRL-0007")
	ErrInvalidVendor      = errors.New("TRL-0008")
	ErrInvalidProduct     = errors.New("TRL-0009")
)
