package api

import (
	"errors"
	"net/http"

	"booking-holds/internal/handler/dto/request"
	resdto "booking-holds/internal/handler/dto/response"
	"booking-holds/internal/handler/httperr"
	"booking-holds/internal/handler/middleware"
	"booking-holds/internal/infra"
	"booking-holds/internal/usecase/commands"
	"booking-holds/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HoldHandler struct {
	holdCommands commands.HoldCommands
	holdQueries  queries.HoldQueries
}

func NewHoldHandler(holdCommands commands.HoldCommands, holdQueries queries.HoldQueries) *HoldHandler {
	return &HoldHandler{
		holdCommands: holdCommands,
		holdQueries:  holdQueries,
	}
}

// @Summary Create hold
// @Description Lease a time interval ahead of checkout. Retries with identical parameters return the same hold.
// @Tags holds
// @Accept json
// @Produce json
// @Param request body request.CreateHoldRequest true "Hold request"
// @Success 201 {object} response.HoldResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /holds [post]
func (h *HoldHandler) CreateHold(c *gin.Context) {
	var req request.CreateHoldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "missing required fields", nil)
		return
	}

	params := commands.CreateHoldParams{
		ResourceID:      req.ResourceID,
		Start:           req.Start,
		DurationMinutes: req.DurationMinutes,
		SessionToken:    req.SessionID,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		params.OwnerUserID = &userID
	}

	result, err := h.holdCommands.CreateHold(c.Request.Context(), params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHoldSnapshot(result.Hold, result.Replayed))
}

// @Summary Get hold
// @Description Get hold by ID
// @Tags holds
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} response.HoldResponse
// @Failure 404 {object} map[string]string
// @Router /holds/{id} [get]
func (h *HoldHandler) GetHold(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.holdQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrHoldNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHoldView(view))
}

// @Summary Release hold
// @Description Make a hold inert immediately. Safe to repeat.
// @Tags holds
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} response.OkResponse
// @Router /holds/{id}/release [post]
func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.holdCommands.ReleaseHold(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OkResponse{Ok: true})
}

// @Summary Extend hold
// @Description One-shot extension of a live hold's expiry.
// @Tags holds
// @Accept json
// @Produce json
// @Param id path string true "Hold ID"
// @Param request body request.ExtendHoldRequest false "Extension request"
// @Success 200 {object} response.OkResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /holds/{id}/extend [post]
func (h *HoldHandler) ExtendHold(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req request.ExtendHoldRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	params := commands.ExtendHoldParams{HoldID: id}
	if req.ExtraSeconds != nil {
		params.ExtraSeconds = *req.ExtraSeconds
	}

	if err := h.holdCommands.ExtendHold(c.Request.Context(), params); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OkResponse{Ok: true})
}

func (h *HoldHandler) respondCommandError(c *gin.Context, err error) {
	respondCommandError(c, err)
}

// respondCommandError maps usecase errors onto the wire taxonomy shared by
// the hold and booking surfaces.
func respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMissingFields):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "missing required fields", nil)
	case errors.Is(err, commands.ErrStartInPast):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start must be now/future", nil)
	case errors.Is(err, commands.ErrOverlap):
		httperr.AbortWithCode(c, http.StatusConflict, err, "interval overlaps a live hold or booking", "E_OVERLAP")
	case errors.Is(err, commands.ErrHoldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "hold not found", nil)
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "service not found", nil)
	case errors.Is(err, commands.ErrHoldNotActive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "hold is not active", nil)
	case errors.Is(err, commands.ErrHoldExpired):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "hold expired", nil)
	case errors.Is(err, commands.ErrHoldAlreadyExtended):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "hold already extended", nil)
	case infra.IsKind(err, infra.KindSerialization):
		// Transient store abort: the whole call is safe to retry.
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "transient conflict, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
