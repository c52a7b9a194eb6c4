package api

import (
	"net/http"

	"booking-holds/internal/handler/dto/request"
	resdto "booking-holds/internal/handler/dto/response"
	"booking-holds/internal/handler/httperr"
	"booking-holds/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookingCommands: bookingCommands}
}

// @Summary Finalize booking
// @Description Convert a live hold into a pending booking. Conflicts and price are re-checked atomically.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.FinalizeBookingRequest true "Finalize request"
// @Success 201 {object} response.FinalizeBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) FinalizeBooking(c *gin.Context) {
	var req request.FinalizeBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "missing required fields", nil)
		return
	}

	params := commands.FinalizeBookingParams{
		HoldID: req.HoldID,
		Customer: commands.CustomerInfo{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		CustomerID: req.CustomerID,
		PriceCents: req.Price,
		ServiceIDs: req.ServiceIDs,
	}

	result, err := h.bookingCommands.FinalizeBooking(c.Request.Context(), params)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FinalizeBookingResponse{BookingID: result.BookingID})
}
