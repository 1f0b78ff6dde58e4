// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrTokenNotFound = errors.New("token does not exist")
	ErrCorruptState  = errors.New("corrupt registry state")
)
