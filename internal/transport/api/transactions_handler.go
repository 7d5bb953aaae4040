package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

type TransactionsHandler struct {
	svs TransactionServicer
}

func NewTransactionsHandler(svs TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{
		svs: svs,
	}
}

type TransactionResponseItem struct {
	ID             int64                       `json:"ID"`
	GroupID        uuid.UUID                   `json:"groupId"`
	Type           domain.TransactionDirection `json:"type"`
	Kind           domain.TransactionKind      `json:"kind"`
	AccountID      int64                       `json:"accountId"`
	CounterpartyID int64                       `json:"counterpartyId"`
	Amount         float64                     `json:"amount"`
	Currency       string                      `json:"currency"`
	IsRefund       bool                        `json:"isRefund,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
}

func transactionResponse(transactions []domain.Transaction) []TransactionResponseItem {
	response := make([]TransactionResponseItem, len(transactions))
	for i, t := range transactions {
		response[i] = TransactionResponseItem{
			ID:             t.ID,
			GroupID:        t.GroupID,
			Type:           t.Type,
			Kind:           t.Kind,
			AccountID:      t.AccountID,
			CounterpartyID: t.CounterpartyID,
			Amount:         t.Amount.InexactFloat64(),
			Currency:       t.Currency,
			IsRefund:       t.IsRefund,
			CreatedAt:      t.CreatedAt,
		}
	}
	return response
}

// Index GET RouteGroup + CollectiveTransactionsRoute. Строки леджера аккаунта,
// новые первыми. Лимит задается query-параметром limit.
func (h *TransactionsHandler) Index(c *gin.Context) {
	var limit uint
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, parseErr := strconv.ParseUint(rawLimit, 10, 32)
		if parseErr != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		limit = uint(parsed)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.GetByAccountSlug(reqCtx, c.Param("slug"), limit)
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	if len(transactions) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, transactionResponse(transactions))
}

// Refund POST RouteGroup + TransactionRefundRoute. Сторнирует группу строк
// двойной записи.
func (h *TransactionsHandler) Refund(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	groupID, parseErr := uuid.Parse(c.Param("groupId"))
	if parseErr != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	refunded, err := h.svs.Refund(reqCtx, groupID, currentUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrAlreadyRefunded), errors.Is(err, domain.ErrDuplicateKey):
			_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, transactionResponse(refunded))
}
