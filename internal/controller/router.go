package controller

import (
	"sportshub-recruit-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, log *zap.Logger) {
	handler.Use(requestID(), accessLog(log), recoverer(log))

	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newPostingRoutesHandler(api, services, validate, log)
	newApplicationRoutesHandler(api, services, validate, log)
	newMatchRoutesHandler(api, services, validate, log)
	newReportRoutesHandler(api, services, validate, log)
}
