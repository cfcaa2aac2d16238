package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/mocks"
)

func TestStatusController_Status(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	reg := new(mocks.SessionRegistry)
	reg.EXPECT().Active().Return(2).Once()

	log := new(mocks.ResultLog)
	log.EXPECT().Stats().Return(results.Stats{Total: 5, Successful: 4, SuccessRate: 80}).Once()

	runner := new(mocks.Runner)
	runner.EXPECT().Running().Return(true).Once()

	now := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	cntr := NewStatusController(reg, log, runner, func() time.Time { return now })

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	g.Expect(cntr.Status(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"active_instances": 2,
		"total_results": 5,
		"is_running": true,
		"timestamp": "2025-02-03T10:00:00Z"
	}`))
	reg.AssertExpectations(t)
	log.AssertExpectations(t)
	runner.AssertExpectations(t)
}

func TestStatusController_Stats(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	reg := new(mocks.SessionRegistry)
	reg.EXPECT().Active().Return(1).Once()

	log := new(mocks.ResultLog)
	log.EXPECT().Stats().Return(results.Stats{Total: 3, Successful: 2, SuccessRate: 66.7}).Once()

	runner := new(mocks.Runner)
	runner.EXPECT().Running().Return(false).Once()

	cntr := NewStatusController(reg, log, runner, time.Now)

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	g.Expect(cntr.Stats(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"total_results": 3,
		"successful_results": 2,
		"success_rate": 66.7,
		"active_instances": 1,
		"is_running": false
	}`))
	reg.AssertExpectations(t)
	log.AssertExpectations(t)
	runner.AssertExpectations(t)
}
