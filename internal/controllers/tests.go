package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/services/testsuite"
	"github.com/autoweb/autoweb/pkg/dto"
	"github.com/autoweb/autoweb/pkg/models"
)

type TestsController struct {
	runner testsuite.Runner
	l      *zap.SugaredLogger
}

func NewTestsController(runner testsuite.Runner, l *zap.Logger) *TestsController {
	return &TestsController{
		runner: runner,
		l:      l.Sugar(),
	}
}

func (t *TestsController) Run(c echo.Context) error {
	var req dto.RunTestsRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	suite := req.TestSuite
	if suite == "" {
		suite = testsuite.SuiteBasic
	}

	if err := t.runner.Run(suite); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.RunTestsResponse{
		Success:   true,
		TestSuite: suite,
		Message:   "started " + suite + " test suite",
	})
}

func (t *TestsController) Stop(c echo.Context) error {
	t.runner.Stop()
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "tests stopped"})
}
