package controller

import (
	"net/http"
	"strconv"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type matchRoutesHandler struct {
	matchService service.Match
	validate     *validator.Validate
	log          *zap.Logger
}

func newMatchRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, log *zap.Logger) *matchRoutesHandler {
	h := &matchRoutesHandler{matchService: services.Match, validate: v, log: log}

	outer.GET("/matches", h.GetMatches)
	outer.POST("/matches", h.PostMatch)
	outer.GET("/matches/:id", h.GetMatch)
	outer.PATCH("/matches/:id", h.PatchMatch)
	outer.DELETE("/matches/:id", h.DeleteMatch)
	outer.POST("/matches/:id/cancel", h.CancelMatch)
	outer.POST("/matches/:id/complete", h.CompleteMatch)

	return h
}

type getMatchesInput struct {
	Status    string `query:"status" validate:"omitempty,oneof=SCHEDULED CANCELLED COMPLETED"`
	MatchDate string `query:"matchDate"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Limit     int    `query:"limit" validate:"gte=0,lte=100"`
	Offset    int    `query:"offset" validate:"gte=0"`
}

// /matches
func (h *matchRoutesHandler) GetMatches(c echo.Context) error {
	input := getMatchesInput{Limit: defaultLimit, Offset: defaultOffset}
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	filter := &entity.MatchFilter{Status: entity.MatchStatus(input.Status)}
	var err error
	if filter.Date, err = parseDate(input.MatchDate); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.StartDate, err = parseDate(input.StartDate); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.EndDate, err = parseDate(input.EndDate); err != nil {
		return badRequest(c, err.Error())
	}

	matches, err := h.matchService.GetMatches(c.Request().Context(), filter, entity.NewPaginationInput(input.Limit, input.Offset))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, matches)
}

type matchInput struct {
	MatchDate     *string `json:"matchDate"`
	MatchTime     *string `json:"matchTime" validate:"omitempty,max=20"`
	Venue         *string `json:"venue" validate:"omitempty,max=200"`
	VenueId       *int64  `json:"venueId" validate:"omitempty,gt=0"`
	VenueUrl      *string `json:"venueUrl"`
	HomeTeamId    *int64  `json:"homeTeamId" validate:"omitempty,gt=0"`
	AwayTeamId    *int64  `json:"awayTeamId" validate:"omitempty,gt=0"`
	HomeScore     *int    `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore     *int    `json:"awayScore" validate:"omitempty,gte=0"`
	Status        *string `json:"status" validate:"omitempty,oneof=SCHEDULED CANCELLED COMPLETED"`
	Referee       *string `json:"referee" validate:"omitempty,max=100"`
	Weather       *string `json:"weather" validate:"omitempty,max=50"`
	Temperature   *int    `json:"temperature"`
	RecruitPostId *int64  `json:"recruitPostId" validate:"omitempty,gt=0"`
}

func (in *matchInput) toPatch() (*entity.MatchPatch, error) {
	patch := &entity.MatchPatch{
		MatchTime:   in.MatchTime,
		Venue:       in.Venue,
		VenueId:     in.VenueId,
		VenueUrl:    in.VenueUrl,
		HomeTeamId:  in.HomeTeamId,
		AwayTeamId:  in.AwayTeamId,
		HomeScore:   in.HomeScore,
		AwayScore:   in.AwayScore,
		Referee:     in.Referee,
		Weather:     in.Weather,
		Temperature: in.Temperature,
	}
	if in.Status != nil {
		status := entity.MatchStatus(*in.Status)
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

// /matches
func (h *matchRoutesHandler) PostMatch(c echo.Context) error {
	var input matchInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}
	if input.HomeTeamId == nil || input.AwayTeamId == nil {
		return badRequest(c, "'homeTeamId' and 'awayTeamId' are required")
	}

	patch, err := input.toPatch()
	if err != nil {
		return badRequest(c, err.Error())
	}

	m := &entity.Match{RecruitPostId: input.RecruitPostId}
	patch.Apply(m)

	created, err := h.matchService.CreateMatch(c.Request().Context(), m)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// /matches/:id
func (h *matchRoutesHandler) GetMatch(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	m, err := h.matchService.GetMatch(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, m)
}

// /matches/:id
func (h *matchRoutesHandler) PatchMatch(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	var input matchInput
	if ok, err := bind(c, h.validate, &input); !ok {
		return err
	}

	patch, err := input.toPatch()
	if err != nil {
		return badRequest(c, err.Error())
	}

	m, err := h.matchService.UpdateMatch(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, m)
}

// /matches/:id
func (h *matchRoutesHandler) DeleteMatch(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	if err := h.matchService.DeleteMatch(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /matches/:id/cancel
func (h *matchRoutesHandler) CancelMatch(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	m, err := h.matchService.CancelMatch(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, m)
}

// /matches/:id/complete?homeScore=&awayScore=
func (h *matchRoutesHandler) CompleteMatch(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id should be a positive integer")
	}

	homeScore, err := strconv.Atoi(c.QueryParam("homeScore"))
	if err != nil || homeScore < 0 {
		return badRequest(c, "'homeScore' should be a non-negative integer")
	}
	awayScore, err := strconv.Atoi(c.QueryParam("awayScore"))
	if err != nil || awayScore < 0 {
		return badRequest(c, "'awayScore' should be a non-negative integer")
	}

	m, err := h.matchService.CompleteMatch(c.Request().Context(), id, homeScore, awayScore)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, m)
}
