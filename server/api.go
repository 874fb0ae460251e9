// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/young3/cmnfa-bridge/invoke"
	"github.com/young3/cmnfa-bridge/logger"
)

type bridgeAPI struct {
	srv *Server
}

var errBadBody = errors.New("cannot parse request body")

func serveAPI(srv *Server) {
	api := &bridgeAPI{srv}

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard
	r := gin.New()
	r.Use(gin.Recovery())
	api.register(r)

	go func() {
		err := r.Run(fmt.Sprintf(":%d", srv.config.APIPort))
		if err != nil {
			logger.I().Fatalw("failed to start api", "error", err)
		}
	}()
}

func (api *bridgeAPI) register(r *gin.Engine) {
	r.GET("/", api.home)
	r.GET("/api/system/status", api.systemStatus)

	r.GET("/api/nfa/total-supply", api.totalSupply)
	r.POST("/api/nfa/owner", api.ownerOf)
	r.POST("/api/nfa/token-uri", api.tokenURI)
	r.POST("/api/nfa/balance-of", api.balanceOf)

	r.POST("/api/nfa/mint", api.mint)
	r.POST("/api/nfa/transfer-from", api.transferFrom)
	r.POST("/api/nfa/burn", api.burn)
	r.POST("/api/nfa/create-or-set-category", api.createOrSetCategory)
}

// All responses keep HTTP 200; failures are reported inside the
// envelope only.

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
}

// call performs exactly one invocation for the current request.
func (api *bridgeAPI) call(c *gin.Context, req invoke.Request) (*invoke.Response, error) {
	reqID := newRequestID()
	logger.I().Infow("invoke", "id", reqID, "method", req.Method)
	stdout, err := api.srv.invoker.Invoke(c.Request.Context(), req)
	if err != nil {
		logger.I().Warnw("invoke failed", "id", reqID, "method", req.Method, "error", err)
		return nil, err
	}
	return invoke.Parse(stdout), nil
}

func (api *bridgeAPI) systemStatus(c *gin.Context) {
	config := api.srv.config.InvokeConfig
	ok(c, gin.H{
		"cmc":        statusWord(config.BinaryOK()),
		"sdk_config": statusWord(config.SDKConfOK()),
		"contract":   config.ContractName,
		"workdir":    config.WorkDir,
		"time":       time.Now().Format(time.RFC3339),
	})
}

func statusWord(present bool) string {
	if present {
		return "OK"
	}
	return "MISSING"
}

func (api *bridgeAPI) totalSupply(c *gin.Context) {
	resp, err := api.call(c, invoke.NewTotalSupply())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, invoke.DecodeMaybe(resp.QueryResult(invoke.ZeroBase64)))
}

type tokenIDBody struct {
	TokenID string `json:"tokenId"`
}

func (api *bridgeAPI) ownerOf(c *gin.Context) {
	var body tokenIDBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewOwnerOf(body.TokenID)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := api.call(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, invoke.DecodeMaybe(resp.QueryResult("")))
}

func (api *bridgeAPI) tokenURI(c *gin.Context) {
	var body tokenIDBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewTokenURI(body.TokenID)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := api.call(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, invoke.DecodeMaybe(resp.QueryResult("")))
}

func (api *bridgeAPI) balanceOf(c *gin.Context) {
	var body struct {
		Account string `json:"account"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewBalanceOf(body.Account)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := api.call(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, invoke.DecodeMaybe(resp.QueryResult(invoke.ZeroBase64)))
}

func (api *bridgeAPI) mint(c *gin.Context) {
	var body struct {
		To           string `json:"to"`
		TokenID      string `json:"tokenId"`
		CategoryName string `json:"categoryName"`
		MetadataText string `json:"metadata_text"`
		MetadataB64  string `json:"metadata_b64"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewMint(body.To, body.TokenID, body.CategoryName,
		body.MetadataText, body.MetadataB64)
	if err != nil {
		fail(c, err)
		return
	}
	api.callWrite(c, req)
}

func (api *bridgeAPI) transferFrom(c *gin.Context) {
	var body struct {
		From    string `json:"from"`
		To      string `json:"to"`
		TokenID string `json:"tokenId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewTransferFrom(body.From, body.To, body.TokenID)
	if err != nil {
		fail(c, err)
		return
	}
	api.callWrite(c, req)
}

func (api *bridgeAPI) burn(c *gin.Context) {
	var body tokenIDBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewBurn(body.TokenID)
	if err != nil {
		fail(c, err)
		return
	}
	api.callWrite(c, req)
}

func (api *bridgeAPI) createOrSetCategory(c *gin.Context) {
	var body struct {
		CategoryName string `json:"categoryName"`
		CategoryURI  string `json:"categoryURI"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, errBadBody)
		return
	}
	req, err := invoke.NewCreateOrSetCategory(body.CategoryName, body.CategoryURI)
	if err != nil {
		fail(c, err)
		return
	}
	api.callWrite(c, req)
}

func (api *bridgeAPI) callWrite(c *gin.Context, req invoke.Request) {
	resp, err := api.call(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, resp.WriteResult())
}
