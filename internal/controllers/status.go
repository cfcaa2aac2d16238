package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autoweb/autoweb/internal/common/clock"
	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/internal/services/testsuite"
	"github.com/autoweb/autoweb/pkg/dto"
)

type StatusController struct {
	reg    registry.SessionRegistry
	log    results.ResultLog
	runner testsuite.Runner
	now    clock.NowFunc
}

func NewStatusController(reg registry.SessionRegistry, log results.ResultLog, runner testsuite.Runner, now clock.NowFunc) *StatusController {
	return &StatusController{
		reg:    reg,
		log:    log,
		runner: runner,
		now:    now,
	}
}

func (s *StatusController) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{
		ActiveInstances: s.reg.Active(),
		TotalResults:    s.log.Stats().Total,
		IsRunning:       s.runner.Running(),
		Timestamp:       s.now(),
	})
}

func (s *StatusController) Stats(c echo.Context) error {
	st := s.log.Stats()
	return c.JSON(http.StatusOK, dto.StatsResponse{
		TotalResults:      st.Total,
		SuccessfulResults: st.Successful,
		SuccessRate:       st.SuccessRate,
		ActiveInstances:   s.reg.Active(),
		IsRunning:         s.runner.Running(),
	})
}
