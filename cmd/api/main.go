package main

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard/internal/api"
	"github.com/vfg2006/agency-dashboard/internal/config"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating"
	"github.com/vfg2006/agency-dashboard/internal/usecases/resolving"
	"github.com/vfg2006/agency-dashboard/internal/usecases/viewing"
	"github.com/vfg2006/agency-dashboard/pkg/log"
	"github.com/vfg2006/agency-dashboard/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Environment)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())
	metrics.BuildInfo.WithLabelValues(version(), cfg.App.Environment).Set(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// o snapshot é carregado uma única vez; qualquer violação de integridade impede a subida
	snapshot, err := dataset.Load(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	}

	repo, err := repository.NewHierarchyRepository(snapshot)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao indexar o dataset")
	}

	resolver := resolving.NewService(repo, cfg.Resolver.CacheSize)
	viewer := viewing.NewService(repo, resolver, cfg.App.AgencyLabel)

	gate, err := gating.NewService(cfg.Gate)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o gate de acesso")
	}
	if !gate.Enabled() {
		logrus.Warn("Gate de acesso desabilitado")
	}

	server, err := api.New(cfg, viewer, gate, viewer.RootLabel(), snapshot.Records())
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}
