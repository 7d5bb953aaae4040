package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/service"
)

const webhookSecretHeader = "X-Webhook-Secret"

type VirtualCardsHandler struct {
	svs           VirtualCardServicer
	webhookSecret string
}

func NewVirtualCardsHandler(svs VirtualCardServicer, webhookSecret string) *VirtualCardsHandler {
	return &VirtualCardsHandler{
		svs:           svs,
		webhookSecret: webhookSecret,
	}
}

type CreateVirtualCardParams struct {
	Name         string          `binding:"required,min=1,max=255"   json:"name"`
	Last4        string          `binding:"required,len=4,numeric"   json:"last4"`
	MonthlyLimit decimal.Decimal `binding:"required"                 json:"monthlyLimit"`
}

type VirtualCardResponse struct {
	UUID         uuid.UUID                    `json:"uuid"`
	CollectiveID int64                        `json:"collectiveId"`
	Name         string                       `json:"name"`
	Last4        string                       `json:"last4"`
	MonthlyLimit float64                      `json:"monthlyLimit"`
	Currency     string                       `json:"currency"`
	Status       domain.VirtualCardStatusType `json:"status"`
	CreatedAt    time.Time                    `json:"createdAt"`
}

func virtualCardResponse(card *domain.VirtualCard) VirtualCardResponse {
	return VirtualCardResponse{
		UUID:         card.UUID,
		CollectiveID: card.CollectiveID,
		Name:         card.Name,
		Last4:        card.Last4,
		MonthlyLimit: card.MonthlyLimit.InexactFloat64(),
		Currency:     card.Currency,
		Status:       card.Status,
		CreatedAt:    card.CreatedAt,
	}
}

// Create POST RouteGroup + CollectiveCardsRoute. Выпускает виртуальную карту
// для коллектива.
func (h *VirtualCardsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateVirtualCardParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.MonthlyLimit.IsPositive() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, createErr := h.svs.Create(reqCtx, service.CreateVirtualCardArgs{
		CollectiveSlug: c.Param("slug"),
		UserID:         currentUserID,
		Name:           params.Name,
		Last4:          params.Last4,
		MonthlyLimit:   params.MonthlyLimit,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(createErr, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, virtualCardResponse(card))
}

// Pause POST RouteGroup + CardPauseRoute.
func (h *VirtualCardsHandler) Pause(c *gin.Context) {
	h.setStatus(c, h.svs.Pause)
}

// Resume POST RouteGroup + CardResumeRoute.
func (h *VirtualCardsHandler) Resume(c *gin.Context) {
	h.setStatus(c, h.svs.Resume)
}

func (h *VirtualCardsHandler) setStatus(
	c *gin.Context,
	action func(ctx context.Context, cardUUID uuid.UUID, userID int64) (*domain.VirtualCard, error),
) {
	currentUserID := getUserIDFromContext(c)

	cardUUID, parseErr := uuid.Parse(c.Param("uuid"))
	if parseErr != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := action(reqCtx, cardUUID, currentUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, virtualCardResponse(card))
}

type CardChargeParams struct {
	CardUUID    uuid.UUID       `binding:"required"        json:"cardUuid"`
	Amount      decimal.Decimal `binding:"required"        json:"amount"`
	Description string          `binding:"max=1000"        json:"description"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// ProcessCharge POST RouteGroup + CardChargesWebhookRoute. Вебхук провайдера
// карт о состоявшемся списании. Аутентифицируется общим секретом в заголовке
// X-Webhook-Secret.
func (h *VirtualCardsHandler) ProcessCharge(c *gin.Context) {
	if h.webhookSecret != "" && c.GetHeader(webhookSecretHeader) != h.webhookSecret {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var params CardChargeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.Amount.IsPositive() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	expense, err := h.svs.ProcessCharge(reqCtx, service.CardChargeArgs{
		CardUUID:    params.CardUUID,
		Amount:      params.Amount,
		Description: params.Description,
		OccurredAt:  params.OccurredAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrCardPaused), errors.Is(err, domain.ErrCardLimitExceeded):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, expenseResponse(expense))
}
