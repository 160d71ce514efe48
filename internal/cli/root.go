// Package cli implementa o comando drill: validação do dataset, visualização de
// um nível e navegação interativa pela hierarquia no terminal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func Run() ExitCode {
	if err := NewRootCmd().Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

// NewRootCmd monta a árvore de comandos
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "drill",
		Short:         "Agency hierarchy drill-down from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "set debug logging level")
	rootCmd.PersistentFlags().String("source", "", "dataset source (embedded, file, postgres); overrides DATASET_SOURCE")
	rootCmd.PersistentFlags().String("file", "", "dataset JSON file; implies --source=file")

	rootCmd.AddCommand(
		NewValidateCmd().Command(),
		NewShowCmd().Command(),
		NewBrowseCmd().Command(),
		NewSeedCmd().Command(),
	)

	return rootCmd
}
