package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lakefield-systems/sales-server/api"
	"github.com/lakefield-systems/sales-server/internal/config"
	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/operator"
	"github.com/lakefield-systems/sales-server/internal/seedsource"
	"github.com/lakefield-systems/sales-server/internal/service"
	"github.com/lakefield-systems/sales-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("sales-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	// One worker, so overlapping seed runs serialize.
	op := operator.NewOperatorDelegator(dbStorage, 1)
	op.Start()

	source := seedsource.NewClient(envConfig.SeedSourceURL)
	svc := service.NewService(dbStorage, source, op)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
