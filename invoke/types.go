// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package invoke

import (
	"encoding/json"
	"time"
)

// ZeroBase64 is the base64 encoding of "0", the default result
// for numeric queries when the contract returns nothing.
const ZeroBase64 = "MA=="

// Request describes one invocation of a contract method
// through the external cmc client.
type Request struct {
	Method  string
	Params  map[string]string
	Sync    bool
	Timeout time.Duration
}

// Response is the parsed output of a successful invocation.
// When the client output is not valid JSON the whole text is
// kept in Raw and Opaque is set.
type Response struct {
	ContractResult *ContractResult `json:"contract_result"`
	TxID           string          `json:"tx_id"`
	TxBlockHeight  uint64          `json:"tx_block_height"`

	Raw    string `json:"-"`
	Opaque bool   `json:"-"`
}

// ContractResult is the inner result reported by the contract.
// Result is usually base64. Events are kept as raw JSON so they
// pass through unmodified and in order.
type ContractResult struct {
	Result        *string           `json:"result"`
	Message       string            `json:"message"`
	ContractEvent []json.RawMessage `json:"contract_event"`
}

// WriteResult is the normalized payload returned for
// state-changing calls.
type WriteResult struct {
	Message     string            `json:"message"`
	Events      []json.RawMessage `json:"events"`
	TxID        string            `json:"tx_id"`
	BlockHeight uint64            `json:"block_height"`
}
