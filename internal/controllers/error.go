package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/autoweb/autoweb/pkg/dto"
	"github.com/autoweb/autoweb/pkg/models"
)

func ErrorHandler(err error, c echo.Context) {
	httpErr := &echo.HTTPError{}
	if errors.As(err, &httpErr) {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}

	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		code = e.Code()
	}
	_ = c.JSON(code, dto.ErrorResponse{Error: err.Error()})
}
