// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/young3/cmnfa-bridge/logger"
)

// Config locates the external cmc client and the contract it talks to.
type Config struct {
	ContractName string
	SDKConfPath  string
	CMCBin       string
	WorkDir      string
	Timeout      time.Duration
}

var DefaultConfig = Config{
	ContractName: "CMNFA",
	SDKConfPath:  "./testdata/sdk_config.yml",
	CMCBin:       "./cmc",
	WorkDir:      ".",
	Timeout:      60 * time.Second,
}

// BinPath is the absolute location of the client binary inside
// the working directory.
func (config Config) BinPath() string {
	return filepath.Join(config.WorkDir, filepath.Base(config.CMCBin))
}

// SDKConfFile is the location of the sdk config inside the
// working directory.
func (config Config) SDKConfFile() string {
	return filepath.Join(config.WorkDir, config.SDKConfPath)
}

// BinaryOK reports whether the client binary is present.
func (config Config) BinaryOK() bool {
	_, err := os.Stat(config.BinPath())
	return err == nil
}

// SDKConfOK reports whether the sdk config file is present.
func (config Config) SDKConfOK() bool {
	_, err := os.Stat(config.SDKConfFile())
	return err == nil
}

// Runner executes invocations as cmc child processes, one
// process per call, bounded by a wall-clock timeout.
type Runner struct {
	config Config
}

func NewRunner(config Config) *Runner {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig.Timeout
	}
	return &Runner{config: config}
}

// Invoke runs one invocation and returns the trimmed stdout of
// the client. The child process is killed when the timeout
// elapses.
func (r *Runner) Invoke(ctx context.Context, req Request) (string, error) {
	if err := r.checkArtifacts(); err != nil {
		return "", err
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.config.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := r.makeArgs(req)
	logger.I().Debugw("exec cmc", "bin", r.config.BinPath(), "args", args)

	cmd := exec.CommandContext(ctx, r.config.BinPath(), args...)
	cmd.Dir = r.config.WorkDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", &TimeoutError{Timeout: timeout}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out := strings.TrimSpace(stderr.String())
			if out == "" {
				out = strings.TrimSpace(stdout.String())
			}
			return "", &ProcessError{ExitCode: exitErr.ExitCode(), Output: out}
		}
		return "", &ExecError{Err: err}
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *Runner) makeArgs(req Request) []string {
	args := []string{
		"client", "contract", "user", "invoke",
		"--contract-name=" + r.config.ContractName,
		"--method=" + req.Method,
		"--sdk-conf-path=" + r.config.SDKConfPath,
		"--sync-result=" + strconv.FormatBool(req.Sync),
	}
	if len(req.Params) > 0 {
		// compact JSON to avoid shell-quoting issues
		b, _ := json.Marshal(req.Params)
		args = append(args, "--params="+string(b))
	}
	return args
}

func (r *Runner) checkArtifacts() error {
	if !r.config.BinaryOK() {
		return &ConfigError{Artifact: "cmc binary", Path: r.config.BinPath()}
	}
	if !r.config.SDKConfOK() {
		return &ConfigError{Artifact: "sdk config", Path: r.config.SDKConfFile()}
	}
	return nil
}
