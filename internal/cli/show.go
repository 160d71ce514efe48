package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/agency-dashboard/pkg/utils"
)

var ErrPathNotFound = errors.New("path not found")

type ShowCmd struct{}

func NewShowCmd() *ShowCmd {
	return &ShowCmd{}
}

func (c *ShowCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print breadcrumbs, KPIs and the drill table of a level",
		Example: "  drill show /manager/kayak/kayak-c1\n" +
			"  drill show kayak/kayak-c1 --json",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return fmt.Errorf("failed to get json flag: %w", err)
			}

			env, err := loadEnvironment(context.Background(), cmd)
			if err != nil {
				return err
			}

			path := pathArg(args)
			view, err := env.viewer.Level(path)
			if err != nil {
				return err
			}

			if asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(view))
			} else {
				renderLevel(cmd.OutOrStdout(), view)
			}

			if view.NotFound {
				return fmt.Errorf("%w: %s", ErrPathNotFound, path.URL())
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print the level view as JSON")
	return cmd
}
