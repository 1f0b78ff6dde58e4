// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import "encoding/json"

// The host execution environment dispatches calls into the registry,
// executes the instructions the registry emits, and re-enters the
// registry with the result of any delegated instantiate. This package
// holds only the types exchanged across that boundary.

// Coin is a single fund entry attached to a call.
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// Instruction is an outbound message for the host to execute after the
// originating call returns.
type Instruction interface {
	isInstruction()
}

// SendMsg transfers funds from the module to [To].
type SendMsg struct {
	To     string `json:"to"`
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// InstantiateMsg asks the host to deploy a new instance of a templated
// module. The host echoes [ReplyTag] back on the reply so the
// registry can correlate the result with the request that caused it.
type InstantiateMsg struct {
	CodeID   uint64 `json:"codeId"`
	Admin    string `json:"admin"`
	Label    string `json:"label"`
	Payload  []byte `json:"payload"`
	ReplyTag uint64 `json:"replyTag"`
}

func (*SendMsg) isInstruction()        {}
func (*InstantiateMsg) isInstruction() {}

// Event is emitted by the host while executing an instruction.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// Reply re-enters the registry with the outcome of a previously emitted
// InstantiateMsg. Err is empty on success.
type Reply struct {
	Tag    uint64  `json:"tag"`
	Err    string  `json:"err,omitempty"`
	Events []Event `json:"events,omitempty"`
}

const (
	// InstantiateEventType is the event the host emits when a module is
	// deployed.
	InstantiateEventType = "instantiate"

	// InstantiateAddressKey is the attribute on the instantiate event
	// carrying the deployed module's address.
	InstantiateAddressKey = "_contract_address"
)

// DeployedAddress extracts the deployed module address from reply
// events, or "" if no instantiate event is present.
func DeployedAddress(events []Event) string {
	for _, e := range events {
		if e.Type != InstantiateEventType {
			continue
		}
		if addr, ok := e.Attributes[InstantiateAddressKey]; ok {
			return addr
		}
	}
	return ""
}

// InitialBalance credits an account at token instantiation.
type InitialBalance struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// Minter grants ongoing mint authority on the deployed token.
type Minter struct {
	Minter string `json:"minter"`
}

// TokenInstantiate is the payload of the delegated token deployment.
// The template module owns transfer/mint/burn semantics; the registry
// only parameterizes it.
type TokenInstantiate struct {
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	Decimals        uint8            `json:"decimals"`
	InitialBalances []InitialBalance `json:"initialBalances"`
	Mint            *Minter          `json:"mint,omitempty"`
}

func (t *TokenInstantiate) Bytes() ([]byte, error) {
	return json.Marshal(t)
}

func ParseTokenInstantiate(b []byte) (*TokenInstantiate, error) {
	var t TokenInstantiate
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
