package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Distributor backend: catalog, orders and shipping costs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := newServeCmd()
	cmd.RunE = serve.RunE
	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
