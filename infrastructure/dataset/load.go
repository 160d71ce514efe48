package dataset

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard/internal/config"
	"github.com/vfg2006/agency-dashboard/pkg/metrics"
)

// Load obtém o snapshot bruto da origem configurada, valida e converte.
// É chamado uma única vez na inicialização; qualquer violação é fatal.
func Load(ctx context.Context, cfg *config.Config) (*Snapshot, error) {
	raw, err := loadRaw(ctx, cfg)
	if err != nil {
		return nil, err
	}

	snapshot, err := Build(raw)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{"source": cfg.Dataset.Source}
	for level, n := range snapshot.Count() {
		fields[level.String()] = n
		metrics.DatasetRecords.WithLabelValues(level.String()).Set(float64(n))
	}
	logrus.WithFields(fields).Info("dataset loaded")

	return snapshot, nil
}

func loadRaw(ctx context.Context, cfg *config.Config) (*Raw, error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceFile:
		return FromFile(cfg.Dataset.File)
	case config.DatasetSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "dataset: connect")
		}
		defer conn.Close()

		return NewPostgresSource(conn).Load(ctx)
	case config.DatasetSourceEmbedded, "":
		return Embedded()
	default:
		return nil, errors.Errorf("dataset: unknown source %q", cfg.Dataset.Source)
	}
}
