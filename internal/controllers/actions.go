package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/services/dispatch"
	"github.com/autoweb/autoweb/pkg/dto"
	"github.com/autoweb/autoweb/pkg/models"
)

// ActionsController exposes the per-action dispatch endpoints. Request
// bodies are bound into typed payloads, everything else is delegated.
type ActionsController struct {
	disp dispatch.Dispatcher
	l    *zap.SugaredLogger
}

func NewActionsController(disp dispatch.Dispatcher, l *zap.Logger) *ActionsController {
	return &ActionsController{
		disp: disp,
		l:    l.Sugar(),
	}
}

func (a *ActionsController) Navigate(c echo.Context) error {
	var req dto.NavigateRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	if err := a.disp.Navigate(c.Request().Context(), req.InstanceID, req.URL); err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "navigated to " + req.URL})
}

func (a *ActionsController) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	if err := a.disp.Search(c.Request().Context(), req.InstanceID, req.SearchEngine, req.Query); err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "search performed"})
}

func (a *ActionsController) FillForm(c echo.Context) error {
	var req dto.FormFillRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	if err := a.disp.FillForm(c.Request().Context(), req.InstanceID, req.FormURL, req.FormData); err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "form filled"})
}

func (a *ActionsController) Extract(c echo.Context) error {
	var req dto.ExtractRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	data, err := a.disp.Extract(c.Request().Context(), req.InstanceID, req.Selectors)
	if err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.ExtractResponse{Success: true, Data: data})
}

func (a *ActionsController) Screenshot(c echo.Context) error {
	var req dto.ScreenshotRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	filename, path, err := a.disp.Screenshot(c.Request().Context(), req.InstanceID, req.Filename)
	if err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.ScreenshotResponse{Success: true, Filename: filename, Path: path})
}

func (a *ActionsController) Click(c echo.Context) error {
	var req dto.ClickRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	if err := a.disp.Click(c.Request().Context(), req.InstanceID, req.Selector); err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "clicked " + req.Selector})
}

func (a *ActionsController) Scroll(c echo.Context) error {
	var req dto.ScrollRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	if err := a.disp.Scroll(c.Request().Context(), req.InstanceID, req.Direction); err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "scrolled"})
}

func (a *ActionsController) Source(c echo.Context) error {
	instanceID := c.QueryParam("instance_id")

	src, err := a.disp.PageSource(c.Request().Context(), instanceID)
	if err != nil {
		return models.WrapCancelledErr(err)
	}
	return c.HTML(http.StatusOK, src)
}
