// Package cli implements importctl, the operator command line for running
// imports outside the HTTP API.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
)

// Runtime holds the services a command needs once the environment is wired.
type Runtime struct {
	Imports *service.ImportService
	Auth    *service.AuthService
	// Storage is nil when MinIO is not configured.
	Storage ports.ObjectStorage
	Bucket  string
	Close   func()
}

// Connector builds a Runtime. Commands call it lazily so that offline
// commands never touch the database.
type Connector func(ctx context.Context) (*Runtime, error)

func NewRootCmd() *cobra.Command {
	return newRootCmd(connect)
}

func newRootCmd(connector Connector) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "importctl",
		Short:        "BizSuite bulk import tool",
		Long:         `importctl runs tenant CSV imports from a local file or the MinIO imports bucket and manages operator accounts.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.AddCommand(newRunCmd(connector))
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newTemplateCmd())
	rootCmd.AddCommand(newUserCmd(connector))
	return rootCmd
}
