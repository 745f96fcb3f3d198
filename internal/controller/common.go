package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"sportshub-recruit-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

const (
	defaultLimit  = 20
	defaultOffset = 0
	dateLayout    = "2006-01-02"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

func getAllErrorMessages(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range validationErrors {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64:
		return getMessageForInt(fe)
	}

	return "incorrect value passed"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "gt":
		return "should be greater than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}

func badRequest(c echo.Context, reason string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{reason})
}

// bind fills input from the JSON body, or from the query string for bodyless
// GET requests, and validates it. It returns false once it has written a 400.
func bind(c echo.Context, v *validator.Validate, input interface{}) (bool, error) {
	if err := c.Bind(input); err != nil {
		return false, badRequest(c, "Input data is not formed correctly")
	}

	if err := v.Struct(input); err != nil {
		return false, badRequest(c, getAllErrorMessages(err))
	}

	return true, nil
}

func idParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a date in YYYY-MM-DD format", s)
	}

	return &d, nil
}

func respondError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrApplicationNotFound),
		errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrReportNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{err.Error()})
	case errors.Is(err, service.ErrAlreadyTeamMember),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrTeamAlreadyApplied),
		errors.Is(err, service.ErrPostCompleted):
		return c.JSON(http.StatusConflict, errorResponse{err.Error()})
	case errors.Is(err, service.ErrNotTeamCaptain):
		return c.JSON(http.StatusForbidden, errorResponse{err.Error()})
	case errors.Is(err, service.ErrApplicantTeamRequired),
		errors.Is(err, service.ErrNoNewChanges):
		return c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
	}

	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err))

	return c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"})
}
