// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package invoke

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const base64Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=\n\r"

// Parse interprets raw stdout from the client. Output that is not
// valid JSON is not an error; the whole text is carried through as
// an opaque result.
func Parse(stdout string) *Response {
	resp := new(Response)
	if err := json.Unmarshal([]byte(stdout), resp); err != nil {
		return &Response{Raw: stdout, Opaque: true}
	}
	return resp
}

// QueryResult extracts contract_result.result, substituting def
// when the field is absent.
func (r *Response) QueryResult(def string) string {
	if r.Opaque {
		return r.Raw
	}
	if r.ContractResult == nil || r.ContractResult.Result == nil {
		return def
	}
	return *r.ContractResult.Result
}

// WriteResult normalizes the payload of a state-changing call:
// message, events in emitted order, tx id and block height, none
// of them base64 decoded.
func (r *Response) WriteResult() *WriteResult {
	w := &WriteResult{Events: []json.RawMessage{}}
	if r.Opaque {
		w.Message = r.Raw
		return w
	}
	w.TxID = r.TxID
	w.BlockHeight = r.TxBlockHeight
	if r.ContractResult != nil {
		w.Message = r.ContractResult.Message
		if r.ContractResult.ContractEvent != nil {
			w.Events = r.ContractResult.ContractEvent
		}
	}
	return w
}

// DecodeMaybe returns the decoded UTF-8 text of s when s looks like
// base64, otherwise s unchanged. The check is a heuristic: short
// alphanumeric values that happen to be valid base64 get decoded
// too. Callers accept this.
func DecodeMaybe(s string) string {
	if !looksBase64(s) {
		return s
	}
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil || !utf8.Valid(b) {
		return s
	}
	return string(b)
}

func looksBase64(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(base64Charset, c) {
			return false
		}
	}
	return true
}
