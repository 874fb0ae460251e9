// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package invoke

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTotalSupply(t *testing.T) {
	assert := assert.New(t)

	req := NewTotalSupply()
	assert.Equal(MethodTotalSupply, req.Method)
	assert.True(req.Sync)
	assert.Empty(req.Params)
}

func TestNewOwnerOf(t *testing.T) {
	assert := assert.New(t)

	req, err := NewOwnerOf("  t001  ")
	assert.NoError(err)
	assert.Equal(MethodOwnerOf, req.Method)
	assert.Equal("t001", req.Params["tokenId"], "value should be trimmed")

	_, err = NewOwnerOf("   ")
	assert.Error(err)

	vErr := new(ValidationError)
	assert.ErrorAs(err, &vErr)
	assert.Equal([]string{"tokenId"}, vErr.Fields)
}

func TestNewBalanceOf(t *testing.T) {
	assert := assert.New(t)

	req, err := NewBalanceOf("addr1")
	assert.NoError(err)
	assert.Equal(MethodBalanceOf, req.Method)
	assert.Equal("addr1", req.Params["account"])

	_, err = NewBalanceOf("")
	assert.Error(err)
}

func TestNewMint(t *testing.T) {
	assert := assert.New(t)

	req, err := NewMint("addr1", "t001", "art", "hello", "")
	assert.NoError(err)
	assert.Equal(MethodMint, req.Method)
	assert.Equal("addr1", req.Params["to"])
	assert.Equal("t001", req.Params["tokenId"])
	assert.Equal("art", req.Params["categoryName"])
	assert.Equal("aGVsbG8=", req.Params["metadata"], "free text should be base64 encoded")
}

func TestNewMint_MetadataB64Passthrough(t *testing.T) {
	assert := assert.New(t)

	req, err := NewMint("addr1", "t001", "art", "ignored", "cHJlZW5jb2RlZA==")
	assert.NoError(err)
	assert.Equal("cHJlZW5jb2RlZA==", req.Params["metadata"])
}

func TestNewMint_EmptyMetadata(t *testing.T) {
	assert := assert.New(t)

	req, err := NewMint("addr1", "t001", "art", "", "")
	assert.NoError(err)
	meta, found := req.Params["metadata"]
	assert.True(found, "empty metadata should still be passed")
	assert.Equal("", meta)
}

func TestNewMint_MissingFields(t *testing.T) {
	assert := assert.New(t)

	_, err := NewMint("", "t001", "", "", "")
	assert.Error(err)

	vErr := new(ValidationError)
	assert.ErrorAs(err, &vErr)
	assert.Equal([]string{"to", "categoryName"}, vErr.Fields)
	assert.Contains(err.Error(), "to")
	assert.Contains(err.Error(), "categoryName")
}

func TestNewTransferFrom(t *testing.T) {
	assert := assert.New(t)

	req, err := NewTransferFrom("addr1", "addr2", "t001")
	assert.NoError(err)
	assert.Equal(MethodTransferFrom, req.Method)
	assert.Equal("addr1", req.Params["from"])
	assert.Equal("addr2", req.Params["to"])
	assert.Equal("t001", req.Params["tokenId"])

	_, err = NewTransferFrom("addr1", "", "")
	vErr := new(ValidationError)
	assert.ErrorAs(err, &vErr)
	assert.Equal([]string{"to", "tokenId"}, vErr.Fields)
}

func TestNewBurn(t *testing.T) {
	assert := assert.New(t)

	req, err := NewBurn("t001")
	assert.NoError(err)
	assert.Equal(MethodBurn, req.Method)
	assert.Equal("t001", req.Params["tokenId"])

	_, err = NewBurn("")
	assert.Error(err)
}

func TestNewCreateOrSetCategory(t *testing.T) {
	assert := assert.New(t)

	req, err := NewCreateOrSetCategory("demo", "https://example.org/nfa")
	assert.NoError(err)
	assert.Equal(MethodCreateOrSetCategory, req.Method)
	assert.JSONEq(
		`{"categoryName":"demo","categoryURI":"https://example.org/nfa"}`,
		req.Params["category"],
	)

	_, err = NewCreateOrSetCategory("demo", "")
	vErr := new(ValidationError)
	assert.ErrorAs(err, &vErr)
	assert.Equal([]string{"categoryURI"}, vErr.Fields)
}
