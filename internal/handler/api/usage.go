package api

import (
	"errors"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	usageCommands commands.UsageCommands
}

func NewUsageHandler(usageCommands commands.UsageCommands) *UsageHandler {
	return &UsageHandler{usageCommands: usageCommands}
}

// @Summary Ingest a usage report
// @Description Reconcile one cumulative counter report and bill the unbilled delta
// @Tags usage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UsageReportRequest true "Cumulative counter report"
// @Success 200 {object} response.UsageIngestResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /usage/reports [post]
func (h *UsageHandler) IngestReport(c *gin.Context) {
	var req reqdto.UsageReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.usageCommands.IngestReport(c.Request.Context(), commands.UsageReportInput{
		UserID:     req.UserID,
		Copies:     req.Copies,
		Stencils:   req.Stencils,
		ReportedAt: req.ReportedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidReport):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid usage report",
			})
		case errors.Is(err, commands.ErrStaleReport):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Report is older than the last reconciled report",
			})
		case errors.Is(err, commands.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Charge would drive the balance negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToUsageIngestResponse(result))
}

// @Summary Ingest a batch of usage reports
// @Description Reconcile each record independently; per-record outcomes are reported
// @Tags usage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UsageBatchRequest true "Batch of counter reports"
// @Success 200 {object} response.UsageBatchResponse
// @Failure 400 {object} map[string]string
// @Router /usage/reports/batch [post]
func (h *UsageHandler) IngestBatch(c *gin.Context) {
	var req reqdto.UsageBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inputs := make([]commands.UsageReportInput, 0, len(req.Reports))
	for _, r := range req.Reports {
		inputs = append(inputs, commands.UsageReportInput{
			UserID:     r.UserID,
			Copies:     r.Copies,
			Stencils:   r.Stencils,
			ReportedAt: r.ReportedAt,
		})
	}

	results := h.usageCommands.IngestBatch(c.Request.Context(), inputs)
	c.JSON(http.StatusOK, resdto.ToUsageBatchResponse(results))
}
