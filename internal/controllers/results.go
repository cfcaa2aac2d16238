package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/router"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/dto"
)

type ResultsController struct {
	log      results.ResultLog
	exporter results.Exporter
	l        *zap.SugaredLogger
}

func NewResultsController(log results.ResultLog, exporter results.Exporter, l *zap.Logger) *ResultsController {
	return &ResultsController{
		log:      log,
		exporter: exporter,
		l:        l.Sugar(),
	}
}

func (r *ResultsController) List(c echo.Context) error {
	res := r.log.List()
	return c.JSON(http.StatusOK, dto.ResultsResponse{Results: res, Total: len(res)})
}

func (r *ResultsController) Export(c echo.Context) error {
	format := config.ExportFormat(c.Param(router.ExportFormatParam))

	filename, data, err := r.exporter.Export(format)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, r.exporter.ContentType(format), data)
}
