package constant

import "time"

// Trial lifecycle constants
const (
	// TrialDays is the length of the evaluation window
	TrialDays = 90
	// DateFormat is the literal timestamp layout of the trial record (DD/MM/YYYY HH:MM:SS)
	DateFormat = "02/01/2006 15:04:05"
	// KeyFileName is the name of the trial record file
	KeyFileName = "key.txt"
	// RecordSeparator separates the fields of the trial record
	RecordSeparator = ","
	// RecordFieldCount is the number of fields of a well formed trial record
	RecordFieldCount = 3
)

// Trial expiry warning thresholds
const (
	// DaysLeftToNormalWarn is the threshold for a normal expiry notice
	DaysLeftToNormalWarn = 30
	// DaysLeftToUrgentWarn is the threshold for an urgent expiry warning
	DaysLeftToUrgentWarn = 7
)

// Cross verification constants
const (
	// CrossKeyMessage is signed to select the witness image file name
	CrossKeyMessage = "crossKey"
	// TrialTokenMessage is signed to produce the token hidden in the witness image
	TrialTokenMessage = "trial"
	// WitnessSelectorLength is the number of signature hex characters naming the witness image
	WitnessSelectorLength = 8
	// WitnessExtension is the file extension of the witness image
	WitnessExtension = ".png"
)

// Machine identity constants
const (
	// IdentityNamespace is mixed into the machine identifier hash
	IdentityNamespace = "ktt"
	// KeyDerivationInfo labels the HKDF expansion of the machine key
	KeyDerivationInfo = "tsp-toolkit-trial-license"
	// MachineKeySize is the length in bytes of the derived machine key
	MachineKeySize = 32
)

// Product defaults used to namespace the trial record directory
const (
	// DefaultVendor is the vendor directory under the public data directory
	DefaultVendor = "Keithley"
	// DefaultProduct is the product directory under the vendor directory
	DefaultProduct = "TSPToolkit"
)

// Status lines reported by the license manager
const (
	StatusLineExpired      = "Trial has expired!"
	StatusLineTampered     = "Trial is tampered with!"
	StatusLineAvailable    = "Trial is available!"
	StatusLineUnregistered = "Trial is not registered!"
)

// DefaultRefreshInterval is how often long running hosts re-evaluate the trial
const DefaultRefreshInterval = 24 * time.Hour

// RejectionReason is the generic reason given when the gated functionality is refused
const RejectionReason = "trial license is not active"
