package controllers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/internal/router"
	"github.com/autoweb/autoweb/pkg/dto"
	"github.com/autoweb/autoweb/pkg/models"
)

type AutomationController struct {
	reg registry.SessionRegistry
	l   *zap.SugaredLogger
}

func NewAutomationController(reg registry.SessionRegistry, l *zap.Logger) *AutomationController {
	return &AutomationController{
		reg: reg,
		l:   l.Sugar(),
	}
}

func (a *AutomationController) Create(c echo.Context) error {
	var req dto.CreateRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(err)
	}

	sess, err := a.reg.Create(c.Request().Context(), req.InstanceID, req.Headless)
	if err != nil {
		a.l.Errorw("failed to create browser instance", zap.Error(err))
		return models.WrapCancelledErr(err)
	}

	return c.JSON(http.StatusOK, dto.CreateResponse{Success: true, InstanceID: sess.ID()})
}

func (a *AutomationController) Close(c echo.Context) error {
	id := c.Param(router.InstanceParam)
	if err := a.reg.Close(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKResponse{Success: true, Message: "instance closed"})
}

func (a *AutomationController) Instances(c echo.Context) error {
	sessions := a.reg.List()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Created().Before(sessions[j].Created())
	})

	resp := dto.InstancesResponse{
		Total:     len(sessions),
		Instances: make([]dto.Instance, 0, len(sessions)),
	}
	for _, sess := range sessions {
		resp.Instances = append(resp.Instances, dto.Instance{
			InstanceID: sess.ID(),
			Headless:   sess.Headless(),
			Created:    sess.Created(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
