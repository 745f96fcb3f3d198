package controller

import (
	"net/http"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type postingRoutesHandler struct {
	postingService service.Posting
	validate       *validator.Validate
	log            *zap.Logger
}

func newPostingRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, log *zap.Logger) *postingRoutesHandler {
	h := &postingRoutesHandler{postingService: services.Posting, validate: v, log: log}

	outer.GET("/recruits", h.GetPostings)
	outer.POST("/recruits", h.PostPosting)
	outer.GET("/recruits/:postId", h.GetPosting)
	outer.PATCH("/recruits/:postId", h.PatchPosting)
	outer.DELETE("/recruits/:postId", h.DeletePosting)

	return h
}

type getPostingsInput struct {
	TeamId          int64  `query:"teamId" validate:"gte=0"`
	WriterProfileId int64  `query:"writerProfileId" validate:"gte=0"`
	Status          string `query:"status" validate:"omitempty,oneof=OPEN COMPLETED CLOSED CANCELLED"`
	Category        string `query:"category" validate:"omitempty,oneof=TEAM MERCENARY MATCH"`
	Limit           int    `query:"limit" validate:"gte=0,lte=100"`
	Offset          int    `query:"offset" validate:"gte=0"`
}

// /recruits
func (h *postingRoutesHandler) GetPostings(c echo.Context) error {
	input := getPostingsInput{Limit: defaultLimit, Offset: defaultOffset}
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	filter := &entity.PostingFilter{
		TeamId:          input.TeamId,
		WriterProfileId: input.WriterProfileId,
		Status:          entity.PostStatus(input.Status),
		Category:        entity.Category(input.Category),
	}

	postings, err := h.postingService.GetPostings(c.Request().Context(), filter, entity.NewPaginationInput(input.Limit, input.Offset))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, postings)
}

type postingInput struct {
	TeamId            *int64  `json:"teamId" validate:"omitempty,gt=0"`
	WriterProfileId   *int64  `json:"writerProfileId" validate:"omitempty,gt=0"`
	Title             *string `json:"title" validate:"omitempty,max=200"`
	Content           *string `json:"content"`
	Region            *string `json:"region" validate:"omitempty,max=100"`
	SubRegion         *string `json:"subRegion" validate:"omitempty,max=100"`
	ImageUrl          *string `json:"imageUrl"`
	MatchDate         *string `json:"matchDate"`
	GameTime          *string `json:"gameTime" validate:"omitempty,max=20"`
	Category          *string `json:"category" validate:"omitempty,oneof=TEAM MERCENARY MATCH"`
	TargetType        *string `json:"targetType" validate:"omitempty,max=50"`
	Status            *string `json:"status" validate:"omitempty,oneof=OPEN COMPLETED CLOSED CANCELLED"`
	RequiredPersonnel *int    `json:"requiredPersonnel" validate:"omitempty,gte=0"`
	FieldLocation     *string `json:"fieldLocation" validate:"omitempty,max=200"`
	MatchType         *string `json:"matchType" validate:"omitempty,max=50"`
	TeamSize          *string `json:"teamSize" validate:"omitempty,max=50"`
	Cost              *int    `json:"cost" validate:"omitempty,gte=0"`
}

func (in *postingInput) toPatch() (*entity.PostingPatch, error) {
	patch := &entity.PostingPatch{
		TeamId:            in.TeamId,
		WriterProfileId:   in.WriterProfileId,
		Title:             in.Title,
		Content:           in.Content,
		Region:            in.Region,
		SubRegion:         in.SubRegion,
		ImageUrl:          in.ImageUrl,
		GameTime:          in.GameTime,
		TargetType:        in.TargetType,
		RequiredPersonnel: in.RequiredPersonnel,
		FieldLocation:     in.FieldLocation,
		MatchType:         in.MatchType,
		TeamSize:          in.TeamSize,
		Cost:              in.Cost,
	}
	if in.Category != nil {
		category := entity.Category(*in.Category)
		patch.Category = &category
	}
	if in.Status != nil {
		status := entity.PostStatus(*in.Status)
		patch.Status = &status
	}
	if in.MatchDate != nil {
		date, err := parseDate(*in.MatchDate)
		if err != nil {
			return nil, err
		}
		patch.MatchDate = date
	}

	return patch, nil
}

// /recruits
func (h *postingRoutesHandler) PostPosting(c echo.Context) error {
	var input postingInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}
	if input.TeamId == nil || input.WriterProfileId == nil || input.Title == nil || *input.Title == "" || input.Category == nil {
		return badRequest(c, "'teamId', 'writerProfileId', 'title' and 'category' are required")
	}

	patch, err := input.toPatch()
	if err != nil {
		return badRequest(c, err.Error())
	}

	var posting entity.Posting
	patch.Apply(&posting)

	created, err := h.postingService.CreatePosting(c.Request().Context(), &posting)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// /recruits/:postId
func (h *postingRoutesHandler) GetPosting(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}

	posting, err := h.postingService.GetPosting(c.Request().Context(), postId)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, posting)
}

// /recruits/:postId
func (h *postingRoutesHandler) PatchPosting(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}

	var input postingInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	patch, err := input.toPatch()
	if err != nil {
		return badRequest(c, err.Error())
	}

	posting, err := h.postingService.UpdatePosting(c.Request().Context(), postId, patch)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, posting)
}

// /recruits/:postId
func (h *postingRoutesHandler) DeletePosting(c echo.Context) error {
	postId, ok := idParam(c, "postId")
	if !ok {
		return badRequest(c, "postId should be a positive integer")
	}

	if err := h.postingService.DeletePosting(c.Request().Context(), postId); err != nil {
		return respondError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
