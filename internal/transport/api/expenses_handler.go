package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/service"
)

type ExpensesHandler struct {
	svs ExpenseServicer
}

func NewExpensesHandler(svs ExpenseServicer) *ExpensesHandler {
	return &ExpensesHandler{
		svs: svs,
	}
}

type SubmitExpenseParams struct {
	Amount           decimal.Decimal `binding:"required"                               json:"amount"`
	Currency         string          `binding:"required,currency_code"                 json:"currency"`
	Description      string          `binding:"required,min=1,max=1000"                json:"description"`
	PayoutMethodType string          `binding:"required,oneof=BANK_ACCOUNT PAYPAL OTHER" json:"payoutMethodType"`
	PayoutDetails    string          `binding:"max=1000"                               json:"payoutDetails"`
}

type ExpenseResponse struct {
	ID               int64                    `json:"ID"`
	CollectiveID     int64                    `json:"collectiveId"`
	PayeeUserID      int64                    `json:"payeeUserId"`
	Amount           float64                  `json:"amount"`
	Currency         string                   `json:"currency"`
	Description      string                   `json:"description"`
	Status           domain.ExpenseStatusType `json:"status"`
	PayoutMethodType domain.PayoutMethodType  `json:"payoutMethodType"`
	PayoutFee        float64                  `json:"payoutFee,omitempty"`
	PayoutReference  string                   `json:"payoutReference,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
}

func expenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:               expense.ID,
		CollectiveID:     expense.CollectiveID,
		PayeeUserID:      expense.PayeeUserID,
		Amount:           expense.Amount.InexactFloat64(),
		Currency:         expense.Currency,
		Description:      expense.Description,
		Status:           expense.Status,
		PayoutMethodType: expense.PayoutMethodType,
		PayoutFee:        expense.PayoutFee.InexactFloat64(),
		PayoutReference:  expense.PayoutReference,
		CreatedAt:        expense.CreatedAt,
	}
}

// Submit POST RouteGroup + CollectiveExpensesRoute. Текущий юзер подает расход
// к коллективу и становится его получателем.
func (h *ExpensesHandler) Submit(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params SubmitExpenseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.Amount.IsPositive() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	expense, createErr := h.svs.Submit(reqCtx, service.SubmitExpenseArgs{
		CollectiveSlug:   c.Param("slug"),
		PayeeUserID:      currentUserID,
		Amount:           params.Amount,
		Currency:         params.Currency,
		Description:      params.Description,
		PayoutMethodType: domain.PayoutMethodType(params.PayoutMethodType),
		PayoutDetails:    params.PayoutDetails,
	})
	if createErr != nil {
		abortNotFoundOrInternal(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, expenseResponse(expense))
}

// Index GET RouteGroup + CollectiveExpensesRoute.
func (h *ExpensesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	expenses, err := h.svs.GetByCollectiveSlug(reqCtx, c.Param("slug"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	if len(expenses) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		response[i] = expenseResponse(&expenses[i])
	}

	c.JSON(http.StatusOK, response)
}

// Approve POST RouteGroup + ExpenseApproveRoute.
func (h *ExpensesHandler) Approve(c *gin.Context) {
	h.review(c, h.svs.Approve)
}

// Reject POST RouteGroup + ExpenseRejectRoute.
func (h *ExpensesHandler) Reject(c *gin.Context) {
	h.review(c, h.svs.Reject)
}

// Schedule POST RouteGroup + ExpenseScheduleRoute. Ставит одобренный расход в
// очередь на выплату, если баланс коллектива покрывает сумму с комиссией.
func (h *ExpensesHandler) Schedule(c *gin.Context) {
	h.review(c, h.svs.Schedule)
}

type QuoteResponse struct {
	Fee float64 `json:"fee"`
}

// Quote GET RouteGroup + ExpenseQuoteRoute. Оценка комиссии выплаты.
func (h *ExpensesHandler) Quote(c *gin.Context) {
	expenseID := getIDParam(c, "id")
	if expenseID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	fee, err := h.svs.QuoteFee(reqCtx, expenseID)
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, &QuoteResponse{Fee: fee.InexactFloat64()})
}

func (h *ExpensesHandler) review(
	c *gin.Context,
	action func(ctx context.Context, expenseID, userID int64) (*domain.Expense, error),
) {
	currentUserID := getUserIDFromContext(c)
	expenseID := getIDParam(c, "id")
	if expenseID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	expense, err := action(reqCtx, expenseID, currentUserID)
	if err != nil {
		var transitionErr *domain.StatusTransitionError
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.As(err, &transitionErr):
			_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, expenseResponse(expense))
}
