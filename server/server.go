// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"context"
	"log"

	"github.com/young3/cmnfa-bridge/invoke"
	"github.com/young3/cmnfa-bridge/logger"
	"go.uber.org/zap"
)

// Invoker runs one contract invocation per call.
type Invoker interface {
	Invoke(ctx context.Context, req invoke.Request) (string, error)
}

// Server bridges HTTP requests to cmc invocations. It holds no
// state across requests; concurrent requests each spawn their own
// child process.
type Server struct {
	config  Config
	invoker Invoker
}

func Run(config Config) {
	srv := new(Server)
	srv.config = config
	srv.setupLogger()
	srv.invoker = invoke.NewRunner(config.InvokeConfig)

	logger.I().Infow("starting cmnfa bridge",
		"contract", config.InvokeConfig.ContractName,
		"workdir", config.InvokeConfig.WorkDir,
		"port", config.APIPort)

	if !config.InvokeConfig.BinaryOK() {
		logger.I().Warnw("cmc binary missing", "path", config.InvokeConfig.BinPath())
	}
	if !config.InvokeConfig.SDKConfOK() {
		logger.I().Warnw("sdk config missing", "path", config.InvokeConfig.SDKConfFile())
	}

	serveAPI(srv)
	select {}
}

func (srv *Server) setupLogger() {
	var inst *zap.Logger
	var err error
	if srv.config.Debug {
		inst, err = zap.NewDevelopment()
	} else {
		inst, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	logger.Set(inst.Sugar())
}
