// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"
	"fmt"

	"github.com/AlphyonAlephium/memeprotocol/consts"
)

var (
	ErrInvalidCaller      = errors.New("invalid caller address")
	ErrWrongDenom         = errors.New("wrong denom, expected " + consts.FeeDenom)
	ErrSymbolExists       = errors.New("token symbol already exists")
	ErrInvalidTokenParams = errors.New("invalid token parameters")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidNewOwner    = errors.New("invalid new owner address")
	ErrUnknownActionType  = errors.New("unknown action type")
)

// InvalidPaymentError reports the exact fee mismatch so the caller can
// correct the attached funds without a second failed attempt.
type InvalidPaymentError struct {
	Expected string
	Received string
}

func (e *InvalidPaymentError) Error() string {
	return fmt.Sprintf(
		"invalid payment amount, expected %s %s, received %s %s",
		e.Expected, consts.FeeDenom, e.Received, consts.FeeDenom,
	)
}

func (e *InvalidPaymentError) Is(target error) bool {
	other, ok := target.(*InvalidPaymentError)
	if !ok {
		return false
	}
	return other.Expected == e.Expected && other.Received == e.Received
}
