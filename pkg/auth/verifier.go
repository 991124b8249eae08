package auth

import "crypto/subtle"

// Verifier checks a presented secret against the stored one. The seam exists so a
// salted-hash scheme can replace plaintext comparison without touching callers.
type Verifier interface {
	Verify(stored, presented string) bool
}

type Plaintext struct{}

func NewPlaintext() Plaintext {
	return Plaintext{}
}

func (Plaintext) Verify(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
