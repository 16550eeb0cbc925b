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
type NotFoundError GenericError
type ProcessError GenericError

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	BidPriceTooLow          = InvalidError("bid price too low")
	BuyerIsCritterOwner     = InvalidError("buyer is critter owner")
	CannotDecodeAccount     = InvalidError("cannot decode account")
	CorruptedOwnershipIndex = ProcessError("corrupted ownership index")
	CritterCountOverflow    = ProcessError("critter count overflow")
	CritterNotForSale       = InvalidError("critter not for sale")
	CritterNotFound         = NotFoundError("critter not found")
	ExceedMaxCritterOwned   = InvalidError("exceed max critter owned")
	InvalidChain            = InvalidError("invalid chain")
	InvalidCount            = InvalidError("invalid count")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidGender           = InvalidError("invalid gender")
	InvalidRecordLength     = InvalidError("invalid record length")
	InvalidStructPointer    = InvalidError("invalid struct pointer")
	NotCritterOwner         = InvalidError("not critter owner")
	NotEnoughBalance        = InvalidError("not enough balance")
	NotInitialised          = ProcessError("not initialised")
	TransactionInUse        = ProcessError("transaction in use")
	TransferToSelf          = InvalidError("transfer to self")
	WouldKillAccount        = InvalidError("would kill account")
)
