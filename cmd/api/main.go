package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard/internal/api"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/render"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard/internal/usecases/loading"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var source loading.Source
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		source = &repository.SalesSource{
			Repository: repository.NewSalesRepository(pgConn, cfg.Database.Table),
			Table:      cfg.Database.Table,
		}
	default:
		source = dataset.NewCSVSource(cfg.Dataset.Path)
	}

	// O dataset é carregado uma vez; sem ele o dashboard não tem o que mostrar
	loader := loading.NewService(source)
	ds, err := loader.Dataset(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dataset de vendas")
	}
	logrus.WithFields(logrus.Fields{
		"source":  source.Name(),
		"records": ds.Len(),
	}).Info("Dataset de vendas carregado")

	analyzer := analyzing.NewService(loader)
	forecaster := forecasting.NewService(analyzer, cfg.Forecast)
	authenticator := authenticating.NewService(cfg.Auth)

	forecastCacheSweepService := scheduler.NewForecastCacheSweepService(forecaster, cfg)
	if err := forecastCacheSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache de previsões")
	} else {
		logrus.Info("Agendador de limpeza do cache de previsões iniciado com sucesso")
	}

	page, err := render.NewPage(cfg.Dashboard.CurrencySymbol)
	if err != nil {
		logrus.Fatal(err)
	}

	server, err := api.New(
		cfg,
		loader,
		analyzer,
		forecaster,
		authenticator,
		page,
		render.NewCharts(0, 0),
		forecastCacheSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
