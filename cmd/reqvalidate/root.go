package main

import (
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// newRootCmd builds the command tree. With no subcommand it prints help.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reqvalidate",
		Short: "reqvalidate validates HTTP request input against declared schemas",
		Long: `reqvalidate runs an Echo API whose routes validate the request body,
path params or query string against a schema before the handler runs.

Configuration is read from REQVALIDATE_* environment variables and an
optional .env file, e.g. REQVALIDATE_SERVER__PORT=9090.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
	}

	rootCmd.AddCommand(newServeCmd(), newVersionCmd())

	return rootCmd
}
