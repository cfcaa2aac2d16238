package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/internal/router"
	"github.com/autoweb/autoweb/mocks"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/models"
)

func TestResultsController_List(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	log := new(mocks.ResultLog)
	log.EXPECT().List().Return([]models.Result{
		{
			Name:       "navigate",
			Type:       models.ActionNavigation,
			Status:     models.StatusSuccess,
			Detail:     "navigated to https://example.com",
			InstanceID: "browser_1",
			Duration:   0.5,
			Timestamp:  time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
		},
	}).Once()

	cntr := NewResultsController(log, nil, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	g.Expect(cntr.List(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"results": [{
			"name": "navigate",
			"type": "navigation",
			"status": "success",
			"detail": "navigated to https://example.com",
			"instance_id": "browser_1",
			"duration_seconds": 0.5,
			"timestamp": "2025-02-03T10:00:00Z"
		}],
		"total": 1
	}`))
	log.AssertExpectations(t)
}

func TestResultsController_Export(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	exporter := new(mocks.Exporter)
	exporter.EXPECT().Export(config.ExportCSV).
		Return("results_20250203_100000.csv", []byte("name,type\n"), nil).Once()
	exporter.EXPECT().ContentType(config.ExportCSV).Return("text/csv").Once()

	cntr := NewResultsController(nil, exporter, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(router.ExportFormatParam)
	c.SetParamValues("csv")

	g.Expect(cntr.Export(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Header().Get(echo.HeaderContentType)).To(Equal("text/csv"))
	g.Expect(rec.Header().Get(echo.HeaderContentDisposition)).
		To(Equal(`attachment; filename="results_20250203_100000.csv"`))
	g.Expect(rec.Body.String()).To(Equal("name,type\n"))
	exporter.AssertExpectations(t)
}

func TestResultsController_Export_BadFormat(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	exporter := new(mocks.Exporter)
	exporter.EXPECT().Export(config.ExportFormat("pdf")).
		Return("", nil, models.NewBadRequestError(errors.New("test error"))).Once()

	cntr := NewResultsController(nil, exporter, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(router.ExportFormatParam)
	c.SetParamValues("pdf")

	err := cntr.Export(c)
	g.Expect(err).To(HaveOccurred())

	var coded models.ErrorWithCode
	g.Expect(errors.As(err, &coded)).To(BeTrue())
	g.Expect(coded.Code()).To(Equal(http.StatusBadRequest))
	exporter.AssertExpectations(t)
}
