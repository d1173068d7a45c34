package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/database/postgres"
	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/api"
	"github.com/TeuSpnl/comisys/internal/config"
	"github.com/TeuSpnl/comisys/internal/scheduler"
	"github.com/TeuSpnl/comisys/internal/usecases/authenticating"
	"github.com/TeuSpnl/comisys/internal/usecases/dashboarding"
	"github.com/TeuSpnl/comisys/internal/usecases/goalsetting"
	"github.com/TeuSpnl/comisys/internal/usecases/ingesting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, goalRepo, cfg)

	extractor := ingesting.NewExtractor(cfg)
	ingestService := ingesting.NewService(extractor, userRepo, saleRepo)

	dashboardService := dashboarding.NewService(userRepo, saleRepo, goalRepo, cfg)
	goalService := goalsetting.NewService(userRepo, goalRepo)

	integritySweepService := scheduler.NewIntegritySweepService(saleRepo, goalRepo, cfg)

	if err := integritySweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de integridade")
	} else {
		logrus.Info("Agendador de varredura de integridade iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		ingestService,
		dashboardService,
		goalService,
		saleRepo,
		integritySweepService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
