package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/internal/services/testsuite"
	"github.com/autoweb/autoweb/mocks"
	"github.com/autoweb/autoweb/pkg/models"
)

func TestTestsController_Run(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	runner := new(mocks.Runner)
	runner.EXPECT().Run(testsuite.SuiteAdvanced).Return(nil).Once()

	cntr := NewTestsController(runner, zaptest.NewLogger(t))

	c, rec := actionContext(e, `{"test_suite": "advanced"}`)
	g.Expect(cntr.Run(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"success": true,
		"test_suite": "advanced",
		"message": "started advanced test suite"
	}`))
	runner.AssertExpectations(t)
}

func TestTestsController_Run_DefaultSuite(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	runner := new(mocks.Runner)
	runner.EXPECT().Run(testsuite.SuiteBasic).Return(nil).Once()

	cntr := NewTestsController(runner, zaptest.NewLogger(t))

	c, rec := actionContext(e, `{}`)
	g.Expect(cntr.Run(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"success": true,
		"test_suite": "basic",
		"message": "started basic test suite"
	}`))
	runner.AssertExpectations(t)
}

func TestTestsController_Run_Conflict(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	runner := new(mocks.Runner)
	runner.EXPECT().Run(testsuite.SuiteBasic).
		Return(models.NewConflictError(errors.New("test error"))).Once()

	cntr := NewTestsController(runner, zaptest.NewLogger(t))

	c, _ := actionContext(e, `{"test_suite": "basic"}`)
	err := cntr.Run(c)
	g.Expect(err).To(HaveOccurred())

	var coded models.ErrorWithCode
	g.Expect(errors.As(err, &coded)).To(BeTrue())
	g.Expect(coded.Code()).To(Equal(http.StatusConflict))
	runner.AssertExpectations(t)
}

func TestTestsController_Stop(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	runner := new(mocks.Runner)
	runner.EXPECT().Stop().Once()

	cntr := NewTestsController(runner, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	g.Expect(cntr.Stop(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"success": true, "message": "tests stopped"}`))
	runner.AssertExpectations(t)
}
