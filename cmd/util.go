package cmd

import (
	"fmt"

	"quarterfetch/internal/app"
	"quarterfetch/internal/logger"
	"quarterfetch/internal/repository"
	"quarterfetch/internal/service"
	"quarterfetch/internal/util"
	"quarterfetch/pkg/datajockey"
)

type Options struct {
	EnvFile      string
	OutDir       string
	HistoryYears int
}

type Dependencies struct {
	Secrets              *util.Secrets
	TickerListRepository repository.TickerListRepository
	SnapshotRepository   repository.SnapshotRepository
	FetchHandler         app.FetchHandler
}

func InitializeDependencies(opts Options) (*Dependencies, error) {
	secrets, err := util.LoadSecrets(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	statementRepositories := []repository.StatementRepository{
		repository.NewYahooStatementRepository(secrets.YahooUrl, opts.HistoryYears),
	}
	if secrets.DataJockeyApiKey != "" {
		djClient := datajockey.NewClient(secrets.DataJockeyApiKey)
		if secrets.DataJockeyUrl != "" {
			djClient.BaseUrl = secrets.DataJockeyUrl
		}
		statementRepositories = append(statementRepositories, repository.NewLegacyStatementRepository(djClient))
	} else {
		logger.Debug("DATAJOCKEY_API_KEY not set, legacy statements disabled")
	}

	snapshotRepository := repository.NewSnapshotRepository(opts.OutDir)

	return &Dependencies{
		Secrets:              secrets,
		TickerListRepository: repository.NewTickerListRepository(),
		SnapshotRepository:   snapshotRepository,
		FetchHandler: app.FetchHandler{
			StatementRepositories:    statementRepositories,
			TrailingSharesRepository: repository.NewTrailingSharesRepository(),
			SnapshotRepository:       snapshotRepository,
			QuarterlyMetricService:   service.NewQuarterlyMetricService(),
		},
	}, nil
}
