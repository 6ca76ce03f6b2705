// Package main provides the entry point for the SmartPay salary prediction CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errSilent marks a failure whose details were already printed by the
// command, so the top-level handler only sets the exit code.
var errSilent = errors.New("command failed")

var rootCmd = &cobra.Command{
	Use:           "smartpay_agent",
	Short:         "SmartPay salary prediction client",
	Long:          "SmartPay predicts candidate salaries through the remote prediction service, renders dataset insights, and produces downloadable PDF reports.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
