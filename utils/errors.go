// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "errors"

var (
	ErrEmptyAddress = errors.New("address is empty")
	ErrWrongHRP     = errors.New("wrong address prefix")
)
