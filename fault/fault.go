// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse        = ExistsError("account already in use")
	ErrAccountNotMutable          = InvalidError("account is not mutable")
	ErrAccountOwnedByWrongProgram = InvalidError("account owned by wrong program")
	ErrAccountTooSmall            = RecordError("account allocation is smaller than record")
	ErrAddressMismatch            = InvalidError("account address does not match constraint")
	ErrAddressOnCurve             = InvalidError("derived address lies on the ed25519 curve")
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrArithmeticOverflow         = ProcessError("arithmetic overflow")
	ErrConfigurationNotTable      = InvalidError("configuration did not return a table")
	ErrDerivationFailure          = ProcessError("unable to find a viable derivation nonce")
	ErrDiscriminatorMismatch      = RecordError("record discriminator mismatch")
	ErrDuplicateProgram           = ExistsError("program already registered")
	ErrDuplicateTransaction       = ExistsError("transaction already processed")
	ErrEmptyTransaction           = InvalidError("transaction has no instructions")
	ErrExternalDataModified       = ProcessError("instruction modified data of an account it does not own")
	ErrExternalLamportSpend       = ProcessError("instruction debited an account it does not own")
	ErrInstructionNotFound        = NotFoundError("instruction not recognised")
	ErrInsufficientFunds          = ProcessError("insufficient funds")
	ErrInsufficientPayerBalance   = ProcessError("payer cannot cover allocation cost")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidIdentity            = InvalidError("identity is invalid")
	ErrInvalidInstructionData     = InvalidError("invalid instruction data")
	ErrInvalidKeyLength           = InvalidError("key length is invalid")
	ErrInvalidProgramIdentity     = InvalidError("program identity is invalid")
	ErrInvalidSeeds               = LengthError("seeds exceed maximum count or length")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidText                = RecordError("text is not valid utf-8")
	ErrInvalidTransferSource      = InvalidError("transfer source carries data")
	ErrLengthOverflow             = LengthError("variable length field exceeds declared maximum")
	ErrMissingAccounts            = InvalidError("not enough account keys")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrPasswordLength             = InvalidError("password is too short")
	ErrReadOnlyModified           = ProcessError("instruction modified a read-only account")
	ErrRecordTruncated            = RecordError("record is truncated")
	ErrSchemaMismatch             = RecordError("account holds a different record schema")
	ErrSeedsMismatch              = InvalidError("account address does not match seeds")
	ErrSignatureCount             = InvalidError("signature count does not match signers")
	ErrTransactionInUse           = ExistsError("database transaction already in use")
	ErrTransactionNotFound        = NotFoundError("transaction not found")
	ErrUnauthorized               = InvalidError("missing required signature")
	ErrUnbalancedInstruction      = ProcessError("sum of account balances changed")
	ErrUnknownProgram             = NotFoundError("program is not registered")
	ErrUnknownRecord              = RecordError("unknown record discriminator")
	ErrWrongPassword              = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
