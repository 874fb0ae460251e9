// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/young3/cmnfa-bridge/server"
)

const (
	flagDebug    = "debug"
	flagConfig   = "config"
	flagPort     = "port"
	flagContract = "contract"
	flagSDKConf  = "sdk-conf"
	flagCMCBin   = "cmc-bin"
	flagWorkDir  = "workdir"
	flagTimeout  = "timeout"
)

var rootCmd = &cobra.Command{
	Use:   "nfabridge",
	Short: "HTTP bridge for the CMNFA contract via the cmc client",
	Run: func(cmd *cobra.Command, args []string) {
		config := server.DefaultConfig

		if path, err := cmd.Flags().GetString(flagConfig); err == nil && path != "" {
			check(server.LoadFile(path, &config))
		}
		server.FromEnv(&config)
		applyFlags(cmd, &config)

		printBanner(config)
		server.Run(config)
	},
}

// applyFlags overlays flags given on the command line. Flags win
// over environment, which wins over the config file.
func applyFlags(cmd *cobra.Command, config *server.Config) {
	debug, err := cmd.Flags().GetBool(flagDebug)
	check(err)
	config.Debug = config.Debug || debug

	if cmd.Flags().Changed(flagPort) {
		config.APIPort, err = cmd.Flags().GetInt(flagPort)
		check(err)
	}
	if cmd.Flags().Changed(flagContract) {
		config.InvokeConfig.ContractName, err = cmd.Flags().GetString(flagContract)
		check(err)
	}
	if cmd.Flags().Changed(flagSDKConf) {
		config.InvokeConfig.SDKConfPath, err = cmd.Flags().GetString(flagSDKConf)
		check(err)
	}
	if cmd.Flags().Changed(flagCMCBin) {
		config.InvokeConfig.CMCBin, err = cmd.Flags().GetString(flagCMCBin)
		check(err)
	}
	if cmd.Flags().Changed(flagWorkDir) {
		config.InvokeConfig.WorkDir, err = cmd.Flags().GetString(flagWorkDir)
		check(err)
	}
	if cmd.Flags().Changed(flagTimeout) {
		sec, err := cmd.Flags().GetInt(flagTimeout)
		check(err)
		if sec > 0 {
			config.InvokeConfig.Timeout = time.Duration(sec) * time.Second
		}
	}
}

func printBanner(config server.Config) {
	bold := color.New(color.Bold)
	bold.Printf("CMNFA bridge | contract=%s\n", config.InvokeConfig.ContractName)
	fmt.Printf("workdir: %s\n", config.InvokeConfig.WorkDir)
	fmt.Printf("sdk:     %s\n", config.InvokeConfig.SDKConfPath)
	fmt.Printf("api:     :%d\n", config.APIPort)
}

func main() {
	check(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().Bool(flagDebug, false, "debug mode")
	rootCmd.PersistentFlags().String(flagConfig, "", "path to TOML config file")

	rootCmd.Flags().IntP(flagPort, "p", server.DefaultConfig.APIPort, "api port")
	rootCmd.Flags().String(flagContract, server.DefaultConfig.InvokeConfig.ContractName, "contract name")
	rootCmd.Flags().String(flagSDKConf, server.DefaultConfig.InvokeConfig.SDKConfPath,
		"sdk config path, relative to workdir")
	rootCmd.Flags().String(flagCMCBin, server.DefaultConfig.InvokeConfig.CMCBin, "cmc binary path")
	rootCmd.Flags().StringP(flagWorkDir, "d", server.DefaultConfig.InvokeConfig.WorkDir, "cmc working directory")
	rootCmd.Flags().Int(flagTimeout, int(server.DefaultConfig.InvokeConfig.Timeout/time.Second),
		"invocation timeout in seconds")
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
