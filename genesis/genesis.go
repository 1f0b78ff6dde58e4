// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"encoding/json"
	"os"
)

// Genesis carries the parameters the registry is initialized with. The
// account that submits Init becomes the owner.
type Genesis struct {
	TemplateCodeID uint64 `json:"templateCodeId"`
	CreationFee    uint64 `json:"creationFee"`
}

func Default() *Genesis {
	return &Genesis{
		TemplateCodeID: 1,
		CreationFee:    1_000_000,
	}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func Load(path string) (*Genesis, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(b)
}
