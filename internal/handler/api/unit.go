package api

import (
	"errors"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnitHandler struct {
	unitCommands commands.UnitCommands
	unitQueries  queries.UnitQueries
}

func NewUnitHandler(unitCommands commands.UnitCommands, unitQueries queries.UnitQueries) *UnitHandler {
	return &UnitHandler{
		unitCommands: unitCommands,
		unitQueries:  unitQueries,
	}
}

// @Summary List bookable units
// @Description All active units
// @Tags units
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.UnitListResponse
// @Router /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.unitQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.ToUnitListResponse(units))
}

// @Summary List all units
// @Description All units including deactivated ones
// @Tags units
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.UnitListResponse
// @Router /admin/units [get]
func (h *UnitHandler) ListAll(c *gin.Context) {
	units, err := h.unitQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.ToUnitListResponse(units))
}

// @Summary Get a unit
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} queries.UnitView
// @Failure 404 {object} map[string]string
// @Router /units/{id} [get]
func (h *UnitHandler) GetByID(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid unit ID",
		})
		return
	}

	view, err := h.unitQueries.GetByID(c.Request.Context(), unitID)
	if err != nil {
		if errors.Is(err, queries.ErrUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create a unit
// @Tags units
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateUnitRequest true "Unit"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.unitCommands.Create(c.Request.Context(), commands.CreateUnitInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidUnitData):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid unit data",
			})
		case errors.Is(err, commands.ErrDuplicateUnit):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Unit name already taken",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Activate or deactivate a unit
// @Description Deactivation stops new bookings; existing ones stand
// @Tags units
// @Security BearerAuth
// @Accept json
// @Param id path string true "Unit ID"
// @Param request body request.SetUnitActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/units/{id}/active [put]
func (h *UnitHandler) SetActive(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid unit ID",
		})
		return
	}

	var req reqdto.SetUnitActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	found, err := h.unitCommands.SetActive(c.Request.Context(), unitID, *req.IsActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unit not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List blackouts
// @Description Maintenance blackouts for a unit intersecting the window
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param id path string true "Unit ID"
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {object} response.BlackoutListResponse
// @Failure 400 {object} map[string]string
// @Router /units/{id}/blackouts [get]
func (h *UnitHandler) ListBlackouts(c *gin.Context) {
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

	blackouts, err := h.unitQueries.Blackouts(c.Request.Context(), unitID, q.From, q.To)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidWindow), errors.Is(err, queries.ErrWindowTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToBlackoutListResponse(blackouts))
}

// @Summary Create a blackout
// @Description Block an interval for maintenance; overlapping bookings are not auto-canceled
// @Tags units
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateBlackoutRequest true "Blackout"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blackouts [post]
func (h *UnitHandler) CreateBlackout(c *gin.Context) {
	var req reqdto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.unitCommands.CreateBlackout(c.Request.Context(), commands.CreateBlackoutInput{
		UnitID:    req.UnitID,
		SlotStart: req.SlotStart,
		SlotEnd:   req.SlotEnd,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidUnitData):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid blackout data",
			})
		case errors.Is(err, commands.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete a blackout
// @Tags units
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/blackouts/{id} [delete]
func (h *UnitHandler) DeleteBlackout(c *gin.Context) {
	blackoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blackout ID",
		})
		return
	}

	found, err := h.unitCommands.DeleteBlackout(c.Request.Context(), blackoutID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Blackout not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
