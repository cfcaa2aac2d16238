package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/internal/services/scrape"
	"github.com/autoweb/autoweb/mocks"
	"github.com/autoweb/autoweb/pkg/models"
)

func TestScrapeController_Table(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	scraper := new(mocks.Scraper)
	scraper.EXPECT().Table(mock.Anything, "browser_1", "", "table.data").
		Return(&scrape.Table{
			Headers: []string{"Name", "Age"},
			Rows:    [][]string{{"Alice", "30"}},
		}, nil).Once()

	cntr := NewScrapeController(scraper, zaptest.NewLogger(t))

	c, rec := actionContext(e, `{"instance_id": "browser_1", "selector": "table.data"}`)
	g.Expect(cntr.Table(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"success": true,
		"headers": ["Name", "Age"],
		"rows": [["Alice", "30"]]
	}`))
	scraper.AssertExpectations(t)
}

func TestScrapeController_Table_NotFound(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	scraper := new(mocks.Scraper)
	scraper.EXPECT().Table(mock.Anything, "browser_1", "", "").
		Return(nil, models.NewNotFoundError(errors.New("test error"))).Once()

	cntr := NewScrapeController(scraper, zaptest.NewLogger(t))

	c, _ := actionContext(e, `{"instance_id": "browser_1"}`)
	err := cntr.Table(c)
	g.Expect(err).To(HaveOccurred())

	var coded models.ErrorWithCode
	g.Expect(errors.As(err, &coded)).To(BeTrue())
	g.Expect(coded.Code()).To(Equal(http.StatusNotFound))
	scraper.AssertExpectations(t)
}

func TestScrapeController_Links(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	scraper := new(mocks.Scraper)
	scraper.EXPECT().Links(mock.Anything, "browser_1", "https://example.com").
		Return([]scrape.Link{
			{Text: "More information", Href: "https://iana.org"},
		}, nil).Once()

	cntr := NewScrapeController(scraper, zaptest.NewLogger(t))

	c, rec := actionContext(e, `{"instance_id": "browser_1", "url": "https://example.com"}`)
	g.Expect(cntr.Links(c)).To(Succeed())

	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
		"success": true,
		"links": [{"text": "More information", "href": "https://iana.org"}],
		"total": 1
	}`))
	scraper.AssertExpectations(t)
}
