// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/young3/cmnfa-bridge/invoke"
)

type stubInvoker struct {
	stdout string
	err    error
	calls  []invoke.Request
}

var _ Invoker = (*stubInvoker)(nil)

func (s *stubInvoker) Invoke(ctx context.Context, req invoke.Request) (string, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return "", s.err
	}
	return s.stdout, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(stub *stubInvoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := &Server{
		config:  DefaultConfig,
		invoker: stub,
	}
	r := gin.New()
	(&bridgeAPI{srv}).register(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, url, body string) *envelope {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "errors stay inside the envelope")
	env := new(envelope)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), env))
	return env
}

func TestTotalSupply(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: `{"contract_result":{"result":"MA=="}}`}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodGet, "/api/nfa/total-supply", "")
	assert.True(env.Success)
	assert.Equal(`"0"`, string(env.Data))

	assert.Len(stub.calls, 1)
	assert.Equal(invoke.MethodTotalSupply, stub.calls[0].Method)
}

func TestTotalSupply_DefaultResult(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: `{"tx_id":"abc"}`}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodGet, "/api/nfa/total-supply", "")
	assert.True(env.Success)
	assert.Equal(`"0"`, string(env.Data), "absent result should default to zero")
}

func TestOwnerOf(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: `{"contract_result":{"result":"YWRkcjE="}}`}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/owner", `{"tokenId":"t001"}`)
	assert.True(env.Success)
	assert.Equal(`"addr1"`, string(env.Data))
	assert.Equal("t001", stub.calls[0].Params["tokenId"])
}

func TestOwnerOf_MissingTokenID(t *testing.T) {
	assert := assert.New(t)
	stub := new(stubInvoker)
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/owner", `{}`)
	assert.False(env.Success)
	assert.Contains(env.Error, "tokenId")
	assert.Empty(stub.calls, "no process should be spawned")
}

func TestOwnerOf_BadBody(t *testing.T) {
	assert := assert.New(t)
	stub := new(stubInvoker)
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/owner", `{not json`)
	assert.False(env.Success)
	assert.Equal("cannot parse request body", env.Error)
	assert.Empty(stub.calls)
}

func TestTokenURI_OpaquePassthrough(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: "not-base64-!!"}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/token-uri", `{"tokenId":"t001"}`)
	assert.True(env.Success)
	assert.Equal(`"not-base64-!!"`, string(env.Data))
}

func TestBalanceOf(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: `{"contract_result":{"result":"Mw=="}}`}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/balance-of", `{"account":"addr1"}`)
	assert.True(env.Success)
	assert.Equal(`"3"`, string(env.Data))

	env = doRequest(t, r, http.MethodPost, "/api/nfa/balance-of", `{"account":" "}`)
	assert.False(env.Success)
	assert.Contains(env.Error, "account")
}

func TestMint(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: `{
		"contract_result":{"message":"OK","contract_event":[{"topic":"mint"}]},
		"tx_id":"tx1","tx_block_height":7}`}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/mint",
		`{"to":"addr1","tokenId":"t001","categoryName":"art","metadata_text":"hello"}`)
	assert.True(env.Success)

	assert.Equal("aGVsbG8=", stub.calls[0].Params["metadata"])

	var data invoke.WriteResult
	assert.NoError(json.Unmarshal(env.Data, &data))
	assert.Equal("OK", data.Message)
	assert.Equal("tx1", data.TxID)
	assert.EqualValues(7, data.BlockHeight)
	assert.Len(data.Events, 1)
}

func TestMint_MissingFields(t *testing.T) {
	assert := assert.New(t)
	stub := new(stubInvoker)
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/mint", `{"tokenId":"t001"}`)
	assert.False(env.Success)
	assert.Contains(env.Error, "to")
	assert.Contains(env.Error, "categoryName")
	assert.Empty(stub.calls)
}

func TestTransferFrom_ProcessError(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{err: &invoke.ProcessError{ExitCode: 1, Output: "insufficient permission"}}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/transfer-from",
		`{"from":"addr1","to":"addr2","tokenId":"t001"}`)
	assert.False(env.Success)
	assert.Equal("insufficient permission", env.Error)
}

func TestBurn_ConfigError(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{err: &invoke.ConfigError{Artifact: "cmc binary", Path: "/tmp/none/cmc"}}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/burn", `{"tokenId":"t001"}`)
	assert.False(env.Success)
	assert.Contains(env.Error, "cmc binary")
}

func TestCreateOrSetCategory(t *testing.T) {
	assert := assert.New(t)
	stub := &stubInvoker{stdout: `{"contract_result":{"message":"OK"}}`}
	r := newTestRouter(stub)

	env := doRequest(t, r, http.MethodPost, "/api/nfa/create-or-set-category",
		`{"categoryName":"demo","categoryURI":"https://example.org/nfa"}`)
	assert.True(env.Success)
	assert.JSONEq(
		`{"categoryName":"demo","categoryURI":"https://example.org/nfa"}`,
		stub.calls[0].Params["category"],
	)
}

func TestSystemStatus(t *testing.T) {
	assert := assert.New(t)
	stub := new(stubInvoker)

	gin.SetMode(gin.TestMode)
	config := DefaultConfig
	config.InvokeConfig.WorkDir = t.TempDir()
	srv := &Server{config: config, invoker: stub}
	r := gin.New()
	(&bridgeAPI{srv}).register(r)

	env := doRequest(t, r, http.MethodGet, "/api/system/status", "")
	assert.True(env.Success)

	var status map[string]string
	assert.NoError(json.Unmarshal(env.Data, &status))
	assert.Equal("MISSING", status["cmc"])
	assert.Equal("MISSING", status["sdk_config"])
	assert.Equal("CMNFA", status["contract"])
	assert.Equal(config.InvokeConfig.WorkDir, status["workdir"])
	assert.NotEmpty(status["time"])
}

func TestHomePage(t *testing.T) {
	assert := assert.New(t)
	r := newTestRouter(new(stubInvoker))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), "CMNFA bridge")
}
