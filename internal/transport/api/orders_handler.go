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

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type ContributeParams struct {
	Amount      decimal.Decimal `binding:"required"              json:"amount"`
	Currency    string          `binding:"required,currency_code" json:"currency"`
	PlatformTip decimal.Decimal `json:"platformTip"`
	Interval    string          `binding:"omitempty,oneof=ONEOFF MONTH" json:"interval"`
	Description string          `binding:"max=1000"              json:"description"`
}

type OrderResponse struct {
	ID           int64                  `json:"ID"`
	CollectiveID int64                  `json:"collectiveId"`
	Amount       float64                `json:"amount"`
	Currency     string                 `json:"currency"`
	PlatformTip  float64                `json:"platformTip,omitempty"`
	Interval     domain.OrderInterval   `json:"interval"`
	Status       domain.OrderStatusType `json:"status"`
	NextChargeAt *time.Time             `json:"nextChargeAt,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

func orderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		CollectiveID: order.CollectiveID,
		Amount:       order.Amount.InexactFloat64(),
		Currency:     order.Currency,
		PlatformTip:  order.PlatformTip.InexactFloat64(),
		Interval:     order.Interval,
		Status:       order.Status,
		NextChargeAt: order.NextChargeAt,
		CreatedAt:    order.CreatedAt,
	}
}

// Contribute POST RouteGroup + CollectiveOrdersRoute. Проводит контрибуцию
// текущего юзера в коллектив.
func (o *OrdersHandler) Contribute(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ContributeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.Amount.IsPositive() || params.PlatformTip.IsNegative() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	interval := domain.OrderIntervalOneOff
	if params.Interval == string(domain.OrderIntervalMonth) {
		interval = domain.OrderIntervalMonth
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, createErr := o.orderSvs.Contribute(reqCtx, service.ContributeArgs{
		UserID:         currentUserID,
		CollectiveSlug: c.Param("slug"),
		Amount:         params.Amount,
		Currency:       params.Currency,
		PlatformTip:    params.PlatformTip,
		Interval:       interval,
		Description:    params.Description,
	})
	if createErr != nil {
		abortNotFoundOrInternal(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order))
}

// Index GET RouteGroup + OrdersRoute. Заказы текущего юзера.
func (o *OrdersHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = orderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, response)
}

// Cancel DELETE RouteGroup + OrderRoute. Останавливает подписку.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID := getIDParam(c, "id")
	if orderID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Cancel(reqCtx, currentUserID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrOrderNotActive):
			_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}
