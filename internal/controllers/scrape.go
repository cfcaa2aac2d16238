package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/services/scrape"
	"github.com/autoweb/autoweb/pkg/dto"
	"github.com/autoweb/autoweb/pkg/models"
)

type ScrapeController struct {
	scraper scrape.Scraper
	l       *zap.SugaredLogger
}

func NewScrapeController(scraper scrape.Scraper, l *zap.Logger) *ScrapeController {
	return &ScrapeController{
		scraper: scraper,
		l:       l.Sugar(),
	}
}

func (s *ScrapeController) Table(c echo.Context) error {
	var req dto.ScrapeTableRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	table, err := s.scraper.Table(c.Request().Context(), req.InstanceID, req.URL, req.Selector)
	if err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.TableResponse{
		Success: true,
		Headers: table.Headers,
		Rows:    table.Rows,
	})
}

func (s *ScrapeController) Links(c echo.Context) error {
	var req dto.ScrapeLinksRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	links, err := s.scraper.Links(c.Request().Context(), req.InstanceID, req.URL)
	if err != nil {
		return models.WrapCancelledErr(err)
	}

	resp := dto.LinksResponse{
		Success: true,
		Links:   make([]dto.Link, 0, len(links)),
		Total:   len(links),
	}
	for _, l := range links {
		resp.Links = append(resp.Links, dto.Link{Text: l.Text, Href: l.Href})
	}
	return c.JSON(http.StatusOK, resp)
}
