package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/lakefield-systems/sales-server/internal/handlers/v1/status"
	"github.com/lakefield-systems/sales-server/internal/handlers/v1/transaction"
	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Sales Server API", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetStatisticsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetBarChartHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetPieChartHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetCombinedDataHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewInitializeHandler(r.Service.Seed).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
