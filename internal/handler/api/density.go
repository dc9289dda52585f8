package api

import (
	"errors"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DensityHandler struct {
	densityQueries queries.DensityQueries
}

func NewDensityHandler(densityQueries queries.DensityQueries) *DensityHandler {
	return &DensityHandler{densityQueries: densityQueries}
}

// @Summary Booking density timeline
// @Description Piecewise-constant count of concurrent confirmed bookings over the window
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param id path string true "Unit ID"
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {object} response.DensityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/density [get]
func (h *DensityHandler) Timeline(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid unit ID",
		})
		return
	}

	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid window parameters",
		})
		return
	}

	timeline, err := h.densityQueries.Timeline(c.Request.Context(), unitID, q.From, q.To)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
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
		return
	}

	c.JSON(http.StatusOK, resdto.ToDensityResponse(timeline))
}
