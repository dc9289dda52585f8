package api

import (
	"errors"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Remaining capacity per bucket
// @Description Remaining capacity for each 30-minute bucket and unit within the window
// @Tags availability
// @Security BearerAuth
// @Produce json
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {object} response.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Buckets(c *gin.Context) {
	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid window parameters",
		})
		return
	}

	rows, err := h.availabilityQueries.Buckets(c.Request.Context(), q.From, q.To)
	if err != nil {
		h.windowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToAvailabilityResponse(rows))
}

// @Summary Signed slot offers
// @Description Signed, time-limited price quotes for free future buckets in the window
// @Tags availability
// @Security BearerAuth
// @Produce json
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {object} response.OffersResponse
// @Failure 400 {object} map[string]string
// @Router /availability/offers [get]
func (h *AvailabilityHandler) Offers(c *gin.Context) {
	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid window parameters",
		})
		return
	}

	offers, err := h.availabilityQueries.Offers(c.Request.Context(), q.From, q.To)
	if err != nil {
		h.windowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToOffersResponse(offers))
}

func (h *AvailabilityHandler) windowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Window start must be before window end",
		})
	case errors.Is(err, queries.ErrWindowTooLong):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Window exceeds the maximum span",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
