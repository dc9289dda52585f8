package api

import (
	"errors"
	"net/http"

	"studio-booking/internal/domain/user"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Redeem a signed offer
// @Description Book the exact slot and price a previously issued offer quoted
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.RedeemOfferRequest true "Offer fields as displayed"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /bookings/redeem [post]
func (h *BookingHandler) RedeemOffer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.RedeemOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.RedeemOffer(c.Request.Context(), userID, commands.RedeemOfferInput{
		UnitID:     req.UnitID,
		SlotStart:  req.SlotStart,
		SlotEnd:    req.SlotEnd,
		PriceCents: req.PriceCents,
		Signature:  req.Signature,
	})
	if err != nil {
		h.bookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ToBookingResponse(view))
}

// @Summary Book a custom range
// @Description Book an arbitrary bucket-aligned range at the current price
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.BookCustomRangeRequest true "Booking request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) BookCustomRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.BookCustomRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.BookCustomRange(c.Request.Context(), userID, req.UnitID, req.SlotStart, req.SlotEnd)
	if err != nil {
		h.bookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ToBookingResponse(view))
}

// @Summary List own bookings
// @Description List the caller's bookings, newest first, keyset paginated
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param after query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} response.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	var after *queries.Cursor
	if q.After != "" {
		after = &queries.Cursor{After: q.After}
	}

	items, next, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, after, q.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ToBookingListResponse(items, next))
}

// @Summary Get a booking
// @Description Get one booking; foreign bookings are indistinguishable from absent
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)
	viewer := queries.Viewer{
		UserID:     userID,
		CanViewAny: role.Can(user.CapViewAnyBooking),
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), viewer, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ToBookingResponse(view))
}

// @Summary Cancel a booking
// @Description Cancel an own confirmed booking; missing, foreign and already canceled all report not found
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	canceled, err := h.bookingCommands.Cancel(c.Request.Context(), userID, bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !canceled {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot",
		})
	case errors.Is(err, commands.ErrOfferInvalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Offer signature is invalid",
		})
	case errors.Is(err, commands.ErrOfferExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Offer has expired",
		})
	case errors.Is(err, commands.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unit not found",
		})
	case errors.Is(err, commands.ErrUnitInactive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Unit is not active",
		})
	case errors.Is(err, commands.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Insufficient credit balance",
		})
	case errors.Is(err, commands.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is no longer available",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
