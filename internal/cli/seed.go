package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/agency-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/infrastructure/migration"
	"github.com/vfg2006/agency-dashboard/internal/config"
)

type SeedCmd struct{}

func NewSeedCmd() *SeedCmd {
	return &SeedCmd{}
}

func (c *SeedCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the snapshot tables in Postgres and load the dataset into them",
		Long: "Creates the snapshot schema in DATABASE_DSN and replaces its content with the\n" +
			"embedded dataset, or with --file when given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var raw *dataset.Raw
			switch cfg.Dataset.Source {
			case config.DatasetSourceFile:
				raw, err = dataset.FromFile(cfg.Dataset.File)
			case config.DatasetSourcePostgres:
				return errors.New("seed: postgres cannot seed itself, use the embedded dataset or --file")
			default:
				raw, err = dataset.Embedded()
			}
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return errors.Wrap(err, "seed: connect")
			}
			defer conn.Close()

			if err := migration.Run(ctx, conn, raw); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d clients, %d campaigns and %d geos\n",
				len(raw.Clients), len(raw.Campaigns), len(raw.Geos))
			return nil
		},
	}
}
