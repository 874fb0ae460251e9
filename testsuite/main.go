// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

// Smoke checks against a running bridge. Start the bridge (with a
// real or stub cmc in its workdir), then run this tool against its
// address.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

var addr = flag.String("addr", "http://127.0.0.1:5000", "bridge address")

type Check interface {
	Name() string
	Run(c *Client) error
}

type Client struct {
	base string
	http *http.Client
}

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) Get(path string) (*Envelope, error) {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeEnvelope(resp)
}

func (c *Client) Post(path string, body interface{}) (*Envelope, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeEnvelope(resp)
}

func decodeEnvelope(resp *http.Response) (*Envelope, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}
	env := new(Envelope)
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("cannot parse envelope, %w", err)
	}
	return env, nil
}

type StatusCheck struct{}

func (ck *StatusCheck) Name() string { return "system status" }

func (ck *StatusCheck) Run(c *Client) error {
	env, err := c.Get("/api/system/status")
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("status not successful: %s", env.Error)
	}
	var status map[string]string
	if err := json.Unmarshal(env.Data, &status); err != nil {
		return err
	}
	if status["cmc"] != "OK" {
		return fmt.Errorf("cmc binary %s", status["cmc"])
	}
	if status["sdk_config"] != "OK" {
		return fmt.Errorf("sdk config %s", status["sdk_config"])
	}
	return nil
}

type TotalSupplyCheck struct{}

func (ck *TotalSupplyCheck) Name() string { return "total supply query" }

func (ck *TotalSupplyCheck) Run(c *Client) error {
	env, err := c.Get("/api/nfa/total-supply")
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("query failed: %s", env.Error)
	}
	return nil
}

type ValidationCheck struct{}

func (ck *ValidationCheck) Name() string { return "missing field validation" }

func (ck *ValidationCheck) Run(c *Client) error {
	cases := []struct {
		path  string
		body  interface{}
		field string
	}{
		{"/api/nfa/owner", map[string]string{}, "tokenId"},
		{"/api/nfa/token-uri", map[string]string{"tokenId": "  "}, "tokenId"},
		{"/api/nfa/balance-of", map[string]string{}, "account"},
		{"/api/nfa/mint", map[string]string{"tokenId": "t001"}, "categoryName"},
		{"/api/nfa/transfer-from", map[string]string{"from": "a"}, "tokenId"},
		{"/api/nfa/burn", map[string]string{}, "tokenId"},
		{"/api/nfa/create-or-set-category", map[string]string{"categoryName": "x"}, "categoryURI"},
	}
	for _, tc := range cases {
		env, err := c.Post(tc.path, tc.body)
		if err != nil {
			return err
		}
		if env.Success {
			return fmt.Errorf("%s accepted an invalid body", tc.path)
		}
		if !strings.Contains(env.Error, tc.field) {
			return fmt.Errorf("%s error %q does not name %s", tc.path, env.Error, tc.field)
		}
	}
	return nil
}

type HomePageCheck struct{}

func (ck *HomePageCheck) Name() string { return "operator page" }

func (ck *HomePageCheck) Run(c *Client) error {
	resp, err := c.http.Get(c.base + "/")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}

func main() {
	flag.Parse()
	client := &Client{
		base: strings.TrimRight(*addr, "/"),
		http: &http.Client{Timeout: 90 * time.Second},
	}
	checks := []Check{
		new(StatusCheck),
		new(HomePageCheck),
		new(TotalSupplyCheck),
		new(ValidationCheck),
	}
	pass, fail := runChecks(client, checks)
	fmt.Printf("\npass: %d, fail: %d\n", pass, fail)
	if fail > 0 {
		os.Exit(1)
	}
}
