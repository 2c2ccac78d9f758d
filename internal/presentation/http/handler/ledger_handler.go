package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartstore/backoffice-api/internal/application/service"
	"github.com/smartstore/backoffice-api/internal/presentation/http/dto/response"
)

// LedgerHandler handles customer balance report HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// List handles the full balance report, largest due first
func (h *LedgerHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	balances, err := h.ledgerService.Balances(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", balances)
}

// Statement handles one customer's balance with its transaction history.
// The path segment may be the customer's ID or their name; names are
// matched case-insensitively.
func (h *LedgerHandler) Statement(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	statement, err := h.ledgerService.Statement(c.Request.Context(), *userID, c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement retrieved successfully", statement)
}
