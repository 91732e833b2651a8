// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestParseSigEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want SigEncoding
		ok   bool
	}{
		{"strict", SigEncodingStrict, true},
		{"LENIENT", SigEncodingLenient, true},
		{"", SigEncodingUnset, false},
		{"loose", SigEncodingUnset, false},
	}
	for _, test := range tests {
		enc, err := ParseSigEncoding(test.in)
		ensure.DeepEqual(t, enc, test.want, test.in)
		if test.ok {
			ensure.Nil(t, err, test.in)
			ensure.DeepEqual(t, enc.String(), test.want.String())
		} else {
			ensure.True(t, IsErrorCode(err, ErrInvalidConfig), test.in)
		}
	}
	ensure.DeepEqual(t, SigEncodingUnset.String(), "unset")
}

func TestVerificationConfigValidate(t *testing.T) {
	cfg := DefaultVerificationConfig()
	ensure.Nil(t, cfg.Validate())
	ensure.True(t, cfg.VerifyP2SH)
	ensure.False(t, cfg.EnableUnsafeOpcodes)
	ensure.True(t, cfg.strictEncoding())

	var zero VerificationConfig
	ensure.True(t, IsErrorCode(zero.Validate(), ErrInvalidConfig))
	zero.SigEncoding = SigEncodingLenient
	ensure.Nil(t, zero.Validate())
	ensure.False(t, zero.strictEncoding())
}

func TestConfigToVerificationConfig(t *testing.T) {
	def := DefaultConfig()
	cfg, err := def.VerificationConfig()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, cfg, DefaultVerificationConfig())

	c := Config{EnableUnsafeOpcodes: true, SigEncoding: "lenient", VerifyEvenS: true}
	cfg, err = c.VerificationConfig()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, cfg, VerificationConfig{
		EnableUnsafeOpcodes: true,
		SigEncoding:         SigEncodingLenient,
		VerifyEvenS:         true,
	})

	c = Config{VerifyP2SH: true}
	_, err = c.VerificationConfig()
	ensure.True(t, IsErrorCode(err, ErrInvalidConfig))
}
