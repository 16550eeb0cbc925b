// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package critterrecord

import (
	"strings"

	"github.com/critterlab/critterd/fault"
)

// Gender - gender enumeration
type Gender uint8

// possible gender values
const (
	Male   Gender = 0x00
	Female Gender = 0x01
)

// GenderFromByte - derive a gender from a single random byte
//
// even is male, odd is female
func GenderFromByte(b byte) Gender {
	if 0 == b%2 {
		return Male
	}
	return Female
}

// internal conversion
func toString(gender Gender) ([]byte, error) {
	switch gender {
	case Male:
		return []byte("male"), nil
	case Female:
		return []byte("female"), nil
	default:
		return []byte{}, fault.InvalidGender
	}
}

// convert a string to a gender
func fromString(in string) (Gender, error) {
	switch strings.ToLower(in) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	default:
		return Male, fault.InvalidGender
	}
}

// String - convert a gender to its string name
//
// panics on invalid values as those can only arise from corrupted
// storage
func (gender Gender) String() string {
	s, err := toString(gender)
	if nil != err {
		panic("invalid gender")
	}
	return string(s)
}

// Valid - check the gender value is one of the enumeration
func (gender Gender) Valid() bool {
	_, err := toString(gender)
	return nil == err
}

// MarshalText - convert gender to text
func (gender Gender) MarshalText() ([]byte, error) {
	return toString(gender)
}

// UnmarshalText - convert text to gender
func (gender *Gender) UnmarshalText(s []byte) error {
	g, err := fromString(string(s))
	if nil != err {
		return err
	}
	*gender = g
	return nil
}
