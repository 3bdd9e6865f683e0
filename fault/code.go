// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// Code - numeric failure code reported by the host for a failed call
//
// values are part of the external interface: never renumber
type Code uint32

// failure codes grouped by error class
const (
	CodeSuccess Code = 0
	CodeUnknown Code = 1

	// invalid: 1000..
	CodeUnauthorized               Code = 1000
	CodeAccountNotMutable          Code = 1001
	CodeAccountOwnedByWrongProgram Code = 1002
	CodeAddressMismatch            Code = 1003
	CodeSeedsMismatch              Code = 1004
	CodeMissingAccounts            Code = 1005
	CodeInvalidSignature           Code = 1006
	CodeInvalidInstructionData     Code = 1007
	CodeAddressOnCurve             Code = 1008
	CodeInvalidTransferSource      Code = 1009
	CodeEmptyTransaction           Code = 1010
	CodeSignatureCount             Code = 1011

	// length: 2000..
	CodeLengthOverflow Code = 2000
	CodeInvalidSeeds   Code = 2001

	// record: 3000..
	CodeDiscriminatorMismatch Code = 3000
	CodeSchemaMismatch        Code = 3001
	CodeRecordTruncated       Code = 3002
	CodeAccountTooSmall       Code = 3003
	CodeUnknownRecord         Code = 3004
	CodeInvalidText           Code = 3005

	// process: 4000..
	CodeDerivationFailure        Code = 4000
	CodeInsufficientPayerBalance Code = 4001
	CodeInsufficientFunds        Code = 4002
	CodeArithmeticOverflow       Code = 4003
	CodeReadOnlyModified         Code = 4004
	CodeExternalDataModified     Code = 4005
	CodeUnbalancedInstruction    Code = 4006
	CodeExternalLamportSpend     Code = 4007

	// exists / not found: 5000..
	CodeAccountAlreadyInUse  Code = 5000
	CodeNotInitialised       Code = 5001
	CodeUnknownProgram       Code = 5002
	CodeInstructionNotFound  Code = 5003
	CodeDuplicateTransaction Code = 5004
	CodeTransactionNotFound  Code = 5005
	CodeDuplicateProgram     Code = 5006
)

var codes = map[error]Code{
	ErrUnauthorized:               CodeUnauthorized,
	ErrAccountNotMutable:          CodeAccountNotMutable,
	ErrAccountOwnedByWrongProgram: CodeAccountOwnedByWrongProgram,
	ErrAddressMismatch:            CodeAddressMismatch,
	ErrSeedsMismatch:              CodeSeedsMismatch,
	ErrMissingAccounts:            CodeMissingAccounts,
	ErrInvalidSignature:           CodeInvalidSignature,
	ErrInvalidInstructionData:     CodeInvalidInstructionData,
	ErrAddressOnCurve:             CodeAddressOnCurve,
	ErrInvalidTransferSource:      CodeInvalidTransferSource,
	ErrEmptyTransaction:           CodeEmptyTransaction,
	ErrSignatureCount:             CodeSignatureCount,

	ErrLengthOverflow: CodeLengthOverflow,
	ErrInvalidSeeds:   CodeInvalidSeeds,

	ErrDiscriminatorMismatch: CodeDiscriminatorMismatch,
	ErrSchemaMismatch:        CodeSchemaMismatch,
	ErrRecordTruncated:       CodeRecordTruncated,
	ErrAccountTooSmall:       CodeAccountTooSmall,
	ErrUnknownRecord:         CodeUnknownRecord,
	ErrInvalidText:           CodeInvalidText,

	ErrDerivationFailure:        CodeDerivationFailure,
	ErrInsufficientPayerBalance: CodeInsufficientPayerBalance,
	ErrInsufficientFunds:        CodeInsufficientFunds,
	ErrArithmeticOverflow:       CodeArithmeticOverflow,
	ErrReadOnlyModified:         CodeReadOnlyModified,
	ErrExternalDataModified:     CodeExternalDataModified,
	ErrUnbalancedInstruction:    CodeUnbalancedInstruction,
	ErrExternalLamportSpend:     CodeExternalLamportSpend,

	ErrAccountAlreadyInUse:  CodeAccountAlreadyInUse,
	ErrNotInitialised:       CodeNotInitialised,
	ErrUnknownProgram:       CodeUnknownProgram,
	ErrInstructionNotFound:  CodeInstructionNotFound,
	ErrDuplicateTransaction: CodeDuplicateTransaction,
	ErrTransactionNotFound:  CodeTransactionNotFound,
	ErrDuplicateProgram:     CodeDuplicateProgram,
}

// ErrorCode - map an error to its failure code
//
// nil maps to CodeSuccess, anything unlisted to CodeUnknown
func ErrorCode(err error) Code {
	for e := err; nil != e; e = errors.Unwrap(e) {
		if code, ok := codes[e]; ok {
			return code
		}
	}
	if nil == err {
		return CodeSuccess
	}
	return CodeUnknown
}

// FromCode - recover the error for a failure code, nil if unknown
func FromCode(code Code) error {
	for e, c := range codes {
		if c == code {
			return e
		}
	}
	return nil
}
