package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/autoweb/autoweb/pkg/models"
)

func TestErrorHandler_HTTPError(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := &echo.HTTPError{
		Code:     http.StatusNotImplemented,
		Message:  "test error",
		Internal: nil,
	}
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusNotImplemented))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"message": "test error"}`))
}

func TestErrorHandler_ErrorWithCode(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := models.NewErrorMessage(http.StatusTooManyRequests, errors.New("test error"))
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusTooManyRequests))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"success": false, "error": "test error"}`))
}

func TestErrorHandler_Default(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(errors.New("test error"), c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusInternalServerError))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"success": false, "error": "test error"}`))
}

func TestErrorHandler_Committed(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	g.Expect(c.NoContent(http.StatusOK)).To(Succeed())

	ErrorHandler(errors.New("test error"), c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(BeEmpty())
}
