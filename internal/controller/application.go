package controller

import (
	"net/http"
	"strings"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type applicationRoutesHandler struct {
	applicationService service.Application
	validate           *validator.Validate
	log                *zap.Logger
}

func newApplicationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, log *zap.Logger) *applicationRoutesHandler {
	h := &applicationRoutesHandler{applicationService: services.Application, validate: v, log: log}

	outer.POST("/recruits/:postId/applications", h.PostApplication)
	outer.GET("/recruits/:postId/applications", h.GetPostApplications)
	outer.PATCH("/recruits/:postId/applications/:applicationId", h.UpdateApplicationStatus)
	outer.DELETE("/recruits/:postId/applications/:applicationId", h.DeleteApplication)
	outer.GET("/applications", h.GetApplications)

	return h
}

type postApplicationInput struct {
	ApplicantProfileId int64  `json:"applicantProfileId" validate:"required,gt=0"`
	ApplicantTeamId    *int64 `json:"applicantTeamId" validate:"omitempty,gt=0"`
	Description        string `json:"description" validate:"max=1000"`
	Status             string `json:"status" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
}

// /recruits/:postId/applications
func (h *applicationRoutesHandler) PostApplication(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}

	var input postApplicationInput
	if err := c.Bind(&input); err != nil {
		return badRequest(c, "Input data is not formed correctly")
	}
	input.Status = strings.ToUpper(strings.TrimSpace(input.Status))
	if err := h.validate.Struct(input); err != nil {
		return badRequest(c, getAllErrorMessages(err))
	}

	app, err := h.applicationService.Submit(c.Request().Context(), &entity.SubmitApplicationInput{
		PostId:             postId,
		ApplicantProfileId: input.ApplicantProfileId,
		ApplicantTeamId:    input.ApplicantTeamId,
		Description:        input.Description,
		Status:             input.Status,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, app)
}

// /recruits/:postId/applications
func (h *applicationRoutesHandler) GetPostApplications(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}

	apps, err := h.applicationService.GetPostApplications(c.Request().Context(), postId)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, apps)
}

type updateApplicationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACCEPTED REJECTED"`
}

// /recruits/:postId/applications/:applicationId
func (h *applicationRoutesHandler) UpdateApplicationStatus(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}
	applicationId, ok := idParam(c, "applicationId")
	if !ok {
		return badRequest(c, "applicationId should be a positive integer")
	}

	var input updateApplicationStatusInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	app, err := h.applicationService.UpdateStatus(c.Request().Context(), postId, applicationId, entity.ApplicationStatus(input.Status))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, app)
}

// /recruits/:postId/applications/:applicationId
func (h *applicationRoutesHandler) DeleteApplication(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}
	applicationId, ok := idParam(c, "applicationId")
	if !ok {
		return badRequest(c, "applicationId should be a positive integer")
	}

	if err := h.applicationService.Delete(c.Request().Context(), postId, applicationId); err != nil {
		return respondError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type getApplicationsInput struct {
	ApplicantProfileId int64 `query:"applicantProfileId" validate:"gte=0"`
	ApplicantTeamId    int64 `query:"applicantTeamId" validate:"gte=0"`
}

// /applications
func (h *applicationRoutesHandler) GetApplications(c echo.Context) error {
	var input getApplicationsInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	var apps []entity.Application
	var err error
	switch {
	case input.ApplicantProfileId != 0:
		apps, err = h.applicationService.GetProfileApplications(c.Request().Context(), input.ApplicantProfileId)
	case input.ApplicantTeamId != 0:
		apps, err = h.applicationService.GetTeamApplications(c.Request().Context(), input.ApplicantTeamId)
	default:
		return badRequest(c, "either 'applicantProfileId' or 'applicantTeamId' is required")
	}
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, apps)
}
