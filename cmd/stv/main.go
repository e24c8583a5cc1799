package main

import (
	"fmt"
	"os"

	"stv/internal/cli"
	"stv/internal/cli/commands"
	"stv/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "stv",
		Short:   "Singlish translation verifier",
		Long:    `A black-box verification harness for a Singlish-to-Sinhala web translator. Drives the page's input control, extracts the rendered Sinhala output and classifies each scenario as pass or fail.`,
		Version: version,
	}

	// Load config from defaults, .env and environment
	cfg := config.Load()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
