package license

import (
	"bytes"
	"os"

	cn "github.com/tektronix/lib-trial-license-go/constant"
	libErr "github.com/tektronix/lib-trial-license-go/error"
	"github.com/tektronix/lib-trial-license-go/internal/keygen"
	"github.com/tektronix/lib-trial-license-go/internal/stego"
)

// crossVerify checks the witness image against the trial record.
//
// With neither artifact present this is a first run and the witness is
// created. With exactly one present, or a witness whose token does not match,
// verification fails. Only a failure to create the witness is returned as an
// error.
func (m *Manager) crossVerify(recordExists bool) (bool, error) {
	expected := []byte(keygen.Sign(m.key, cn.TrialTokenMessage))

	_, err := os.Stat(m.witnessPath)
	witnessExists := err == nil

	if !witnessExists && !recordExists {
		if err := stego.WriteToken(m.witnessPath, expected); err != nil {
			if !libErr.IsEnvironmentError(err) {
				err = libErr.NewEnvironmentError("write witness image", err)
			}

			return false, err
		}

		return true, nil
	}

	if !witnessExists || !recordExists {
		return false, nil
	}

	token, err := stego.ReadToken(m.witnessPath)
	if err != nil {
		return false, nil
	}

	return bytes.Equal(token, expected), nil
}
