// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of script failure.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrOversized is returned when a script exceeds MaxScriptSize.
	ErrOversized ErrorCode = iota

	// ErrPushTooLarge is returned when a push exceeds MaxScriptElementSize.
	ErrPushTooLarge

	// ErrOpCountExceeded is returned when more than MaxOpsPerScript non push
	// op codes are encountered.
	ErrOpCountExceeded

	// ErrStackOverflow is returned when stack and alt stack together hold more
	// than MaxStackSize elements.
	ErrStackOverflow

	// ErrStackUnderrun is returned when an op code needs more stack elements
	// than available.
	ErrStackUnderrun

	// ErrDisabledOpcode is returned when a disabled op code is encountered.
	ErrDisabledOpcode

	// ErrUnbalancedControlFlow is returned for OP_ELSE/OP_ENDIF without an
	// OP_IF, or a script ending inside a conditional.
	ErrUnbalancedControlFlow

	// ErrUnknownOpcode is returned for reserved and undefined op codes.
	ErrUnknownOpcode

	// ErrEarlyReturn is returned when OP_RETURN is executed.
	ErrEarlyReturn

	// ErrNonCanonicalSignature is returned when a signature fails the strict
	// DER encoding policy.
	ErrNonCanonicalSignature

	// ErrVerifyFailed is returned by the VERIFY family of op codes.
	ErrVerifyFailed

	// ErrSighashIndexOutOfRange is returned when the input index does not
	// refer to an input of the transaction.
	ErrSighashIndexOutOfRange

	// ErrMalformedPush is returned when a push runs past the end of the script.
	ErrMalformedPush

	// ErrInvalidOperand is returned for numeric operands outside the range an
	// op code accepts.
	ErrInvalidOperand

	// ErrInvalidKeyCount is returned when CHECKMULTISIG key count is not in [0, 20].
	ErrInvalidKeyCount

	// ErrInvalidSigCount is returned when CHECKMULTISIG signature count is
	// negative or exceeds the key count.
	ErrInvalidSigCount

	// ErrEvalFalse is returned when evaluation ends with an empty stack or a
	// false top element.
	ErrEvalFalse

	// ErrP2SHNotPushOnly is returned when a pay-to-script-hash spend carries
	// non push op codes in its signature script.
	ErrP2SHNotPushOnly

	// ErrP2SHMissingRedeemScript is returned when a pay-to-script-hash spend
	// leaves no redeem script on the stack.
	ErrP2SHMissingRedeemScript

	// ErrInvalidConfig is returned for an incomplete VerificationConfig.
	ErrInvalidConfig

	// numErrorCodes is the number of error codes above.
	numErrorCodes
)

var errorCodeStrings = map[ErrorCode]string{
	ErrOversized:               "ErrOversized",
	ErrPushTooLarge:            "ErrPushTooLarge",
	ErrOpCountExceeded:         "ErrOpCountExceeded",
	ErrStackOverflow:           "ErrStackOverflow",
	ErrStackUnderrun:           "ErrStackUnderrun",
	ErrDisabledOpcode:          "ErrDisabledOpcode",
	ErrUnbalancedControlFlow:   "ErrUnbalancedControlFlow",
	ErrUnknownOpcode:           "ErrUnknownOpcode",
	ErrEarlyReturn:             "ErrEarlyReturn",
	ErrNonCanonicalSignature:   "ErrNonCanonicalSignature",
	ErrVerifyFailed:            "ErrVerifyFailed",
	ErrSighashIndexOutOfRange:  "ErrSighashIndexOutOfRange",
	ErrMalformedPush:           "ErrMalformedPush",
	ErrInvalidOperand:          "ErrInvalidOperand",
	ErrInvalidKeyCount:         "ErrInvalidKeyCount",
	ErrInvalidSigCount:         "ErrInvalidSigCount",
	ErrEvalFalse:               "ErrEvalFalse",
	ErrP2SHNotPushOnly:         "ErrP2SHNotPushOnly",
	ErrP2SHMissingRedeemScript: "ErrP2SHMissingRedeemScript",
	ErrInvalidConfig:           "ErrInvalidConfig",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script failure. OpCode and Depth describe where the
// interpreter stood when it failed; they are zero for failures outside of
// op code execution.
type Error struct {
	Code   ErrorCode
	OpCode OpCode
	Depth  int
	Desc   string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *Error) Error() string {
	if e.Desc == "" {
		return e.Code.String()
	}
	return e.Desc
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) *Error {
	return &Error{Code: c, Desc: desc}
}

// opError creates an Error raised while executing op.
func opError(c ErrorCode, op OpCode, depth int, format string, args ...interface{}) *Error {
	return &Error{Code: c, OpCode: op, Depth: depth, Desc: fmt.Sprintf(format, args...)}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(*Error)
	return ok && serr.Code == c
}

// errors outside of evaluation
var (
	ErrNotMultisigScript        = errors.New("not a multisig script")
	ErrMultisigKeyCountMismatch = errors.New("multisig key count does not match the listed keys")
	ErrAddressNotApplicable     = errors.New("address only applies to pubkey, p2pkh and p2sh scripts")
	ErrInvalidScriptString      = errors.New("invalid script string")
	ErrInvalidMultisigParams    = errors.New("invalid multisig parameters")
)
