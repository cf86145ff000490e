package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a request-scoped LogData to the context and emits
// start and completion entries tagged with a generated request id.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)

		requestID, err := uuid.NewV4()
		if err == nil {
			logData.AddData("requestId", requestID.String())
		}
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		operationName := ctx.Operation().OperationID
		log.Infof("Request.%v.Start", operationName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Request.%v.Complete", operationName)
	}
}
