package signup

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const activationTokenBytes = 16

// NewActivationToken returns a hex-encoded token from a CSPRNG. The token is
// stored with the user and must appear verbatim in the activation email.
func NewActivationToken() (string, error) {
	buf := make([]byte, activationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("signup: activation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
