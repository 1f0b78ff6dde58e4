// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownContinuation  = errors.New("unknown continuation tag")
	ErrMissingDeployAddress = errors.New("no contract address in reply events")
)

// DeploymentFailedError aborts the continuation when the delegated
// deployment itself failed; the host then reverts the whole call,
// including the pending record.
type DeploymentFailedError struct {
	Reason string
}

func (e *DeploymentFailedError) Error() string {
	return fmt.Sprintf("token deployment failed: %s", e.Reason)
}
