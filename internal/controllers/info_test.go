package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
)

func TestInfoController_Info(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	cntr := NewInfoController("autoweb", "refs/tags/v1.2.3", "deadbee")

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	g.Expect(cntr.Info(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"name": "autoweb",
		"git_ref": "refs/tags/v1.2.3",
		"git_sha": "deadbee"
	}`))
}
