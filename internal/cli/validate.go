package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
)

type ValidateCmd struct{}

func NewValidateCmd() *ValidateCmd {
	return &ValidateCmd{}
}

func (c *ValidateCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the dataset, check referential integrity and print record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(context.Background(), cmd)
			if err != nil {
				var integrity *dataset.IntegrityError
				if errors.As(err, &integrity) {
					renderViolations(cmd.OutOrStdout(), integrity.Violations)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dataset %q is valid (%s)\n", env.snapshot.Agency.Name, env.cfg.Dataset.Source)
			renderCounts(cmd.OutOrStdout(), env.snapshot)
			return nil
		},
	}
}
