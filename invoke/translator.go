// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package invoke

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Methods of the CMNFA contract
const (
	MethodTotalSupply         = "TotalSupply"
	MethodOwnerOf             = "OwnerOf"
	MethodTokenURI            = "TokenURI"
	MethodBalanceOf           = "BalanceOf"
	MethodMint                = "Mint"
	MethodTransferFrom        = "TransferFrom"
	MethodBurn                = "Burn"
	MethodCreateOrSetCategory = "CreateOrSetCategory"
)

// NewTotalSupply builds a TotalSupply query.
func NewTotalSupply() Request {
	return Request{Method: MethodTotalSupply, Sync: true}
}

// NewOwnerOf builds an OwnerOf query for the given token.
func NewOwnerOf(tokenID string) (Request, error) {
	tokenID, err := required("tokenId", tokenID)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Method: MethodOwnerOf,
		Params: map[string]string{"tokenId": tokenID},
		Sync:   true,
	}, nil
}

// NewTokenURI builds a TokenURI query for the given token.
func NewTokenURI(tokenID string) (Request, error) {
	tokenID, err := required("tokenId", tokenID)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Method: MethodTokenURI,
		Params: map[string]string{"tokenId": tokenID},
		Sync:   true,
	}, nil
}

// NewBalanceOf builds a BalanceOf query for the given account.
func NewBalanceOf(account string) (Request, error) {
	account, err := required("account", account)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Method: MethodBalanceOf,
		Params: map[string]string{"account": account},
		Sync:   true,
	}, nil
}

// NewMint builds a Mint invocation. Metadata can be given either
// pre-encoded (metadataB64, passed through unchanged) or as free
// text, which is base64 encoded here. Empty text maps to an empty
// metadata param, not omission.
func NewMint(to, tokenID, categoryName, metadataText, metadataB64 string) (Request, error) {
	to = strings.TrimSpace(to)
	tokenID = strings.TrimSpace(tokenID)
	categoryName = strings.TrimSpace(categoryName)
	if err := allRequired(fields{
		{"to", to},
		{"tokenId", tokenID},
		{"categoryName", categoryName},
	}); err != nil {
		return Request{}, err
	}

	meta := metadataB64
	if meta == "" && metadataText != "" {
		meta = base64.StdEncoding.EncodeToString([]byte(metadataText))
	}
	return Request{
		Method: MethodMint,
		Params: map[string]string{
			"to":           to,
			"tokenId":      tokenID,
			"categoryName": categoryName,
			"metadata":     meta,
		},
		Sync: true,
	}, nil
}

// NewTransferFrom builds a TransferFrom invocation.
func NewTransferFrom(from, to, tokenID string) (Request, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	tokenID = strings.TrimSpace(tokenID)
	if err := allRequired(fields{
		{"from", from},
		{"to", to},
		{"tokenId", tokenID},
	}); err != nil {
		return Request{}, err
	}
	return Request{
		Method: MethodTransferFrom,
		Params: map[string]string{"from": from, "to": to, "tokenId": tokenID},
		Sync:   true,
	}, nil
}

// NewBurn builds a Burn invocation for the given token.
func NewBurn(tokenID string) (Request, error) {
	tokenID, err := required("tokenId", tokenID)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Method: MethodBurn,
		Params: map[string]string{"tokenId": tokenID},
		Sync:   true,
	}, nil
}

// NewCreateOrSetCategory builds a CreateOrSetCategory invocation.
// The contract expects the category as a nested JSON string under
// a single param.
func NewCreateOrSetCategory(categoryName, categoryURI string) (Request, error) {
	categoryName = strings.TrimSpace(categoryName)
	categoryURI = strings.TrimSpace(categoryURI)
	if err := allRequired(fields{
		{"categoryName", categoryName},
		{"categoryURI", categoryURI},
	}); err != nil {
		return Request{}, err
	}
	category, _ := json.Marshal(struct {
		CategoryName string `json:"categoryName"`
		CategoryURI  string `json:"categoryURI"`
	}{categoryName, categoryURI})
	return Request{
		Method: MethodCreateOrSetCategory,
		Params: map[string]string{"category": string(category)},
		Sync:   true,
	}, nil
}

type fields []struct {
	name  string
	value string
}

func required(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Fields: []string{name}}
	}
	return value, nil
}

func allRequired(fs fields) error {
	var missing []string
	for _, f := range fs {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
