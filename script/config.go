// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strings"
)

// SigEncoding selects how strictly signature encodings are checked.
type SigEncoding int

// Signature encoding policies. The zero value is invalid; a configuration
// must choose one.
const (
	SigEncodingUnset SigEncoding = iota
	SigEncodingStrict
	SigEncodingLenient
)

// String returns the configuration name of the policy.
func (e SigEncoding) String() string {
	switch e {
	case SigEncodingStrict:
		return "strict"
	case SigEncodingLenient:
		return "lenient"
	}
	return "unset"
}

// ParseSigEncoding maps a configuration string to a policy.
func ParseSigEncoding(s string) (SigEncoding, error) {
	switch strings.ToLower(s) {
	case "strict":
		return SigEncodingStrict, nil
	case "lenient":
		return SigEncodingLenient, nil
	}
	return SigEncodingUnset, scriptError(ErrInvalidConfig,
		fmt.Sprintf("unknown signature encoding %q, want strict or lenient", s))
}

// VerificationConfig holds the policy switches of one evaluation. It is
// passed by value and never modified by the engine.
type VerificationConfig struct {
	// VerifyP2SH evaluates the redeem script of pay-to-script-hash outputs.
	VerifyP2SH bool
	// EnableUnsafeOpcodes allows the splice, bitwise and arithmetic op codes
	// disabled by default.
	EnableUnsafeOpcodes bool
	// SigEncoding must be strict or lenient.
	SigEncoding SigEncoding
	// VerifyEvenS additionally requires an even S value under the strict policy.
	VerifyEvenS bool
	// SigCache, when set, short-circuits repeated signature verifications.
	SigCache *SigCache
}

// DefaultVerificationConfig returns the standard policy: P2SH evaluation,
// disabled op codes rejected and strict signature encoding.
func DefaultVerificationConfig() VerificationConfig {
	return VerificationConfig{
		VerifyP2SH:  true,
		SigEncoding: SigEncodingStrict,
	}
}

// Validate rejects configurations with unset required fields.
func (c *VerificationConfig) Validate() error {
	switch c.SigEncoding {
	case SigEncodingStrict, SigEncodingLenient:
		return nil
	}
	return scriptError(ErrInvalidConfig, "signature encoding policy must be set to strict or lenient")
}

func (c *VerificationConfig) strictEncoding() bool {
	return c.SigEncoding == SigEncodingStrict
}

// Config is the serializable form of VerificationConfig.
type Config struct {
	VerifyP2SH          bool   `mapstructure:"verify_p2sh"`
	EnableUnsafeOpcodes bool   `mapstructure:"enable_unsafe_opcodes"`
	SigEncoding         string `mapstructure:"sig_encoding"`
	VerifyEvenS         bool   `mapstructure:"verify_even_s"`
}

// DefaultConfig mirrors DefaultVerificationConfig.
func DefaultConfig() Config {
	return Config{
		VerifyP2SH:  true,
		SigEncoding: SigEncodingStrict.String(),
	}
}

// VerificationConfig converts the serializable configuration and validates it.
func (c *Config) VerificationConfig() (VerificationConfig, error) {
	enc, err := ParseSigEncoding(c.SigEncoding)
	if err != nil {
		return VerificationConfig{}, err
	}
	vc := VerificationConfig{
		VerifyP2SH:          c.VerifyP2SH,
		EnableUnsafeOpcodes: c.EnableUnsafeOpcodes,
		SigEncoding:         enc,
		VerifyEvenS:         c.VerifyEvenS,
	}
	return vc, vc.Validate()
}
