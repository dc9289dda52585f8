package api

import (
	"errors"
	"net/http"

	"studio-booking/internal/domain/credit"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	creditCommands commands.CreditCommands
	creditQueries  queries.CreditQueries
}

func NewCreditHandler(creditCommands commands.CreditCommands, creditQueries queries.CreditQueries) *CreditHandler {
	return &CreditHandler{
		creditCommands: creditCommands,
		creditQueries:  creditQueries,
	}
}

// @Summary Current balance
// @Description The caller's credit balance; zero for users with no ledger activity
// @Tags credits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.BalanceResponse
// @Router /credits/balance [get]
func (h *CreditHandler) Balance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.creditQueries.Balance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ToBalanceResponse(view))
}

// @Summary Ledger history
// @Description The caller's ledger entries, newest first, keyset paginated
// @Tags credits
// @Security BearerAuth
// @Produce json
// @Param after query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} response.CreditHistoryResponse
// @Failure 400 {object} map[string]string
// @Router /credits/history [get]
func (h *CreditHandler) History(c *gin.Context) {
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

	entries, next, err := h.creditQueries.History(c.Request.Context(), userID, after, q.Limit)
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

	c.JSON(http.StatusOK, resdto.ToCreditHistoryResponse(entries, next))
}

// @Summary Append a ledger entry
// @Description Record a purchase, charge or adjustment for any user
// @Tags credits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.AppendCreditRequest true "Ledger entry"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Router /credits [post]
func (h *CreditHandler) Append(c *gin.Context) {
	var req reqdto.AppendCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.creditCommands.Append(c.Request.Context(), commands.AppendCreditInput{
		UserID:      req.UserID,
		AmountCents: req.AmountCents,
		Kind:        credit.Kind(req.Kind),
		BookingID:   req.BookingID,
		PaymentID:   req.PaymentID,
		Note:        req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidTransaction):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid ledger entry",
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

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
