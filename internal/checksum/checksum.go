package checksum

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
)

// Result carries everything the pipeline records about one validation:
// the verdict, the digest we computed (persisted for audit either way) and
// an explanatory error when validation could not even run.
type Result struct {
	IsValid    bool
	Calculated string
	Err        string
}

// Validator checks that a posting was produced by the trusted gateway.
// The gateway signs transactionID || merchantId || transactionRRN || secret
// (fixed order, no delimiters) with SHA-512 and sends the hex digest; the
// compare is case-insensitive per its documented convention.
type Validator struct {
	secret string
}

// New builds a Validator around the shared secret. The secret is injected
// here once at startup rather than read from process-wide state.
func New(secret string) (*Validator, error) {
	if secret == "" {
		return nil, errors.New("checksum: shared secret must not be empty")
	}
	return &Validator{secret: secret}, nil
}

// Validate is a pure function: same inputs, same result, no side effects.
// A failure is never an error to the caller; it is data the pipeline records.
func (v *Validator) Validate(transactionID, merchantID, rrn, received string) Result {
	sum := sha512.Sum512([]byte(transactionID + merchantID + rrn + v.secret))
	calculated := hex.EncodeToString(sum[:])

	if received == "" {
		return Result{IsValid: false, Calculated: calculated, Err: "no checksum received"}
	}
	if !strings.EqualFold(calculated, received) {
		return Result{IsValid: false, Calculated: calculated, Err: "checksum mismatch"}
	}
	return Result{IsValid: true, Calculated: calculated}
}
