package controller

import (
	"net/http"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type reportRoutesHandler struct {
	reportService service.Report
	validate      *validator.Validate
	log           *zap.Logger
}

func newReportRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, log *zap.Logger) *reportRoutesHandler {
	h := &reportRoutesHandler{reportService: services.Report, validate: v, log: log}

	outer.GET("/reports", h.GetReports)
	outer.POST("/reports", h.PostReport)
	outer.GET("/reports/:id", h.GetReport)
	outer.PATCH("/reports/:id", h.PatchReport)
	outer.DELETE("/reports/:id", h.DeleteReport)
	outer.POST("/reports/:id/resolve", h.ResolveReport)
	outer.POST("/reports/:id/reject", h.RejectReport)

	return h
}

type getReportsInput struct {
	Status     string `query:"status" validate:"omitempty,oneof=PENDING RESOLVED REJECTED"`
	Severity   string `query:"severity" validate:"omitempty,max=20"`
	ReporterId int64  `query:"reporterId" validate:"gte=0"`
	ReportedId int64  `query:"reportedId" validate:"gte=0"`
	Limit      int    `query:"limit" validate:"gte=0,lte=100"`
	Offset     int    `query:"offset" validate:"gte=0"`
}

// /reports
func (h *reportRoutesHandler) GetReports(c echo.Context) error {
	input := getReportsInput{Limit: defaultLimit, Offset: defaultOffset}
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	filter := &entity.ReportFilter{
		Status:     entity.ReportStatus(input.Status),
		Severity:   input.Severity,
		ReporterId: input.ReporterId,
		ReportedId: input.ReportedId,
	}

	reports, err := h.reportService.GetReports(c.Request().Context(), filter, entity.NewPaginationInput(input.Limit, input.Offset))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, reports)
}

type postReportInput struct {
	ReportType  string `json:"reportType" validate:"max=50"`
	TargetType  string `json:"targetType" validate:"max=50"`
	TargetId    int64  `json:"targetId" validate:"required,gt=0"`
	ReporterId  int64  `json:"reporterId" validate:"required,gt=0"`
	ReportedId  int64  `json:"reportedId" validate:"required,gt=0"`
	Reason      string `json:"reason" validate:"max=200"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description" validate:"max=2000"`
	Severity    string `json:"severity" validate:"omitempty,max=20"`
}

// /reports
func (h *reportRoutesHandler) PostReport(c echo.Context) error {
	var input postReportInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	r, err := h.reportService.CreateReport(c.Request().Context(), &entity.Report{
		ReportType:  input.ReportType,
		TargetType:  input.TargetType,
		TargetId:    input.TargetId,
		ReporterId:  input.ReporterId,
		ReportedId:  input.ReportedId,
		Reason:      input.Reason,
		Category:    input.Category,
		Description: input.Description,
		Severity:    input.Severity,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, r)
}

// /reports/:id
func (h *reportRoutesHandler) GetReport(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	r, err := h.reportService.GetReport(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, r)
}

type patchReportInput struct {
	Status          *string    `json:"status" validate:"omitempty,oneof=PENDING RESOLVED REJECTED"`
	Severity        *string    `json:"severity" validate:"omitempty,max=20"`
	AssignedAdminId *int64     `json:"assignedAdminId" validate:"omitempty,gt=0"`
	Resolution      *string    `json:"resolution" validate:"omitempty,max=2000"`
	ResolvedAt      *time.Time `json:"resolvedAt"`
}

// /reports/:id
func (h *reportRoutesHandler) PatchReport(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	var input patchReportInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	patch := &entity.ReportPatch{
		Severity:        input.Severity,
		AssignedAdminId: input.AssignedAdminId,
		Resolution:      input.Resolution,
		ResolvedAt:      input.ResolvedAt,
	}
	if input.Status != nil {
		status := entity.ReportStatus(*input.Status)
		patch.Status = &status
	}

	r, err := h.reportService.UpdateReport(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, r)
}

// /reports/:id
func (h *reportRoutesHandler) DeleteReport(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	if err := h.reportService.DeleteReport(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type resolveReportInput struct {
	Action string `json:"action" validate:"required,max=200"`
	Note   string `json:"note" validate:"max=2000"`
}

// /reports/:id/resolve
func (h *reportRoutesHandler) ResolveReport(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	var input resolveReportInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	r, err := h.reportService.ResolveReport(c.Request().Context(), id, input.Action, input.Note)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, r)
}

type rejectReportInput struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

// /reports/:id/reject
func (h *reportRoutesHandler) RejectReport(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	var input rejectReportInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	r, err := h.reportService.RejectReport(c.Request().Context(), id, input.Reason)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, r)
}
