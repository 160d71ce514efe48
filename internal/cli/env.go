package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard/internal/config"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/resolving"
	"github.com/vfg2006/agency-dashboard/internal/usecases/viewing"
	"github.com/vfg2006/agency-dashboard/pkg/log"
)

// environment reúne o que os subcomandos consomem depois da carga do dataset
type environment struct {
	cfg      *config.Config
	snapshot *dataset.Snapshot
	resolver resolving.Resolver
	viewer   *viewing.Service
}

// loadConfig lê a configuração e aplica as flags globais
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	source, err := cmd.Root().PersistentFlags().GetString("source")
	if err != nil {
		return nil, fmt.Errorf("failed to get source flag: %w", err)
	}
	file, err := cmd.Root().PersistentFlags().GetString("file")
	if err != nil {
		return nil, fmt.Errorf("failed to get file flag: %w", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if file != "" {
		cfg.Dataset.Source = config.DatasetSourceFile
		cfg.Dataset.File = file
	}
	if source != "" {
		cfg.Dataset.Source = source
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log.Setup(level, cfg.App.Environment)

	return cfg, nil
}

func loadEnvironment(ctx context.Context, cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	snapshot, err := dataset.Load(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo, err := repository.NewHierarchyRepository(snapshot)
	if err != nil {
		return nil, err
	}

	resolver := resolving.NewService(repo, cfg.Resolver.CacheSize)
	return &environment{
		cfg:      cfg,
		snapshot: snapshot,
		resolver: resolver,
		viewer:   viewing.NewService(repo, resolver, cfg.App.AgencyLabel),
	}, nil
}

// pathArg aceita tanto /manager/a/b quanto a/b
func pathArg(args []string) domain.Path {
	if len(args) == 0 {
		return domain.Path{}
	}
	return domain.ParsePath(args[0])
}
