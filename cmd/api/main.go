package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard/infrastructure/export"
	"github.com/vfg2006/sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard/internal/api"
	"github.com/vfg2006/sales-dashboard/internal/charting"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure(logrus.InfoLevel.String())
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O arquivo é lido uma única vez; toda requisição trabalha sobre o mesmo conjunto
	salesDataset, err := dataset.Load(cfg.Dataset.Path, dataset.WithDelimiter(cfg.DelimiterRune()))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o arquivo de vendas")
	}

	recordRepo := repository.NewSalesRecordRepository(salesDataset)
	dashboardService := dashboarding.NewService(cfg, recordRepo)

	renderer := charting.NewRenderer(cfg)
	exporter := export.NewXLSXExporter()

	reportSnapshotService := scheduler.NewReportSnapshotService(dashboardService, exporter, cfg)
	if err := reportSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de relatórios")
	}

	server, err := api.New(cfg, dashboardService, renderer, exporter, reportSnapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger define o formato usado até a configuração ser carregada
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
