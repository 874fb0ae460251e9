// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/young3/cmnfa-bridge/invoke"
)

// Environment variables overriding the defaults. Read once at
// process start.
const (
	EnvContract = "CM_CONTRACT"
	EnvSDKConf  = "CM_SDK"
	EnvCMCBin   = "CM_CMC_BIN"
	EnvWorkDir  = "CM_WORKDIR"
	EnvAPIPort  = "CM_API_PORT"
	EnvTimeout  = "CM_TIMEOUT"
)

type Config struct {
	Debug   bool
	APIPort int

	InvokeConfig invoke.Config
}

var DefaultConfig = Config{
	APIPort:      5000,
	InvokeConfig: invoke.DefaultConfig,
}

type fileConfig struct {
	Debug      bool   `toml:"debug"`
	APIPort    int    `toml:"apiPort"`
	Contract   string `toml:"contract"`
	SDKConf    string `toml:"sdkConf"`
	CMCBin     string `toml:"cmcBin"`
	WorkDir    string `toml:"workDir"`
	TimeoutSec int    `toml:"timeoutSec"`
}

// LoadFile overlays settings from a TOML file onto config.
func LoadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s, %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("cannot parse %s, %w", path, err)
	}
	if fc.Debug {
		config.Debug = true
	}
	if fc.APIPort != 0 {
		config.APIPort = fc.APIPort
	}
	if fc.Contract != "" {
		config.InvokeConfig.ContractName = fc.Contract
	}
	if fc.SDKConf != "" {
		config.InvokeConfig.SDKConfPath = fc.SDKConf
	}
	if fc.CMCBin != "" {
		config.InvokeConfig.CMCBin = fc.CMCBin
	}
	if fc.WorkDir != "" {
		config.InvokeConfig.WorkDir = fc.WorkDir
	}
	if fc.TimeoutSec > 0 {
		config.InvokeConfig.Timeout = time.Duration(fc.TimeoutSec) * time.Second
	}
	return nil
}

// FromEnv overlays environment variables onto config.
func FromEnv(config *Config) {
	if v := os.Getenv(EnvContract); v != "" {
		config.InvokeConfig.ContractName = v
	}
	if v := os.Getenv(EnvSDKConf); v != "" {
		config.InvokeConfig.SDKConfPath = v
	}
	if v := os.Getenv(EnvCMCBin); v != "" {
		config.InvokeConfig.CMCBin = v
	}
	if v := os.Getenv(EnvWorkDir); v != "" {
		config.InvokeConfig.WorkDir = v
	}
	if v := os.Getenv(EnvAPIPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.APIPort = port
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			config.InvokeConfig.Timeout = time.Duration(sec) * time.Second
		}
	}
}
