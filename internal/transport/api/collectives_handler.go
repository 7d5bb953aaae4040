package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/service"
)

type CollectivesHandler struct {
	svs CollectiveServicer
}

func NewCollectivesHandler(svs CollectiveServicer) *CollectivesHandler {
	return &CollectivesHandler{
		svs: svs,
	}
}

type CreateCollectiveParams struct {
	Slug     string `binding:"required,account_slug,max=100" json:"slug"`
	Name     string `binding:"required,min=1,max=255"        json:"name"`
	Currency string `binding:"required,currency_code"        json:"currency"`
	IsHost   bool   `json:"isHost"`
}

type CollectiveResponse struct {
	ID             int64                 `json:"ID"`
	Slug           string                `json:"slug"`
	Name           string                `json:"name"`
	Type           domain.CollectiveType `json:"type"`
	Currency       string                `json:"currency"`
	IsHost         bool                  `json:"isHost"`
	HostID         *int64                `json:"hostId,omitempty"`
	HostFeePercent string                `json:"hostFeePercent"`
	CreatedAt      time.Time             `json:"createdAt"`
}

func collectiveResponse(collective *domain.Collective) CollectiveResponse {
	return CollectiveResponse{
		ID:             collective.ID,
		Slug:           collective.Slug,
		Name:           collective.Name,
		Type:           collective.Type,
		Currency:       collective.Currency,
		IsHost:         collective.IsHost,
		HostID:         collective.HostID,
		HostFeePercent: collective.HostFeePercent.String(),
		CreatedAt:      collective.CreatedAt,
	}
}

// Create POST RouteGroup + CollectivesRoute.
func (h *CollectivesHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateCollectiveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	collective, createErr := h.svs.Create(reqCtx, service.CreateCollectiveArgs{
		Slug:     params.Slug,
		Name:     params.Name,
		Currency: params.Currency,
		IsHost:   params.IsHost,
		UserID:   currentUserID,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("collective with this slug already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, collectiveResponse(collective))
}

// Show GET RouteGroup + CollectiveRoute.
func (h *CollectivesHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	collective, err := h.svs.GetBySlug(reqCtx, c.Param("slug"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, collectiveResponse(collective))
}

type BalanceResponse struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// Balance GET RouteGroup + CollectiveBalanceRoute. Баланс считается агрегацией
// по леджеру.
func (h *CollectivesHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, c.Param("slug"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Balance:  balance.Balance.InexactFloat64(),
		Currency: balance.Currency,
	})
}

type ActivityResponseItem struct {
	Type      domain.ActivityType `json:"type"`
	UserID    int64               `json:"userId"`
	Data      json.RawMessage     `json:"data,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Activities GET RouteGroup + CollectiveActivitiesRoute.
func (h *CollectivesHandler) Activities(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	activities, err := h.svs.Activities(reqCtx, c.Param("slug"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	if len(activities) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]ActivityResponseItem, len(activities))
	for i, activity := range activities {
		response[i] = ActivityResponseItem{
			Type:      activity.Type,
			UserID:    activity.UserID,
			Data:      activity.Data,
			CreatedAt: activity.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}

type ApplyToHostParams struct {
	HostSlug string `binding:"required,account_slug,max=100" json:"hostSlug"`
	Message  string `binding:"max=1000"                      json:"message"`
}

type HostApplicationResponse struct {
	ID           int64                            `json:"ID"`
	CollectiveID int64                            `json:"collectiveId"`
	HostID       int64                            `json:"hostId"`
	Status       domain.HostApplicationStatusType `json:"status"`
	CreatedAt    time.Time                        `json:"createdAt"`
}

func hostApplicationResponse(application *domain.HostApplication) HostApplicationResponse {
	return HostApplicationResponse{
		ID:           application.ID,
		CollectiveID: application.CollectiveID,
		HostID:       application.HostID,
		Status:       application.Status,
		CreatedAt:    application.CreatedAt,
	}
}

// ApplyToHost POST RouteGroup + CollectiveApplyRoute.
func (h *CollectivesHandler) ApplyToHost(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ApplyToHostParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	application, err := h.svs.ApplyToHost(reqCtx, service.ApplyToHostArgs{
		CollectiveSlug: c.Param("slug"),
		HostSlug:       params.HostSlug,
		Message:        params.Message,
		UserID:         currentUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrNotAHost):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrDuplicateKey):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, hostApplicationResponse(application))
}

// ApproveApplication POST RouteGroup + HostApplicationApproveRoute.
func (h *CollectivesHandler) ApproveApplication(c *gin.Context) {
	h.reviewApplication(c, h.svs.ApproveApplication)
}

// RejectApplication POST RouteGroup + HostApplicationRejectRoute.
func (h *CollectivesHandler) RejectApplication(c *gin.Context) {
	h.reviewApplication(c, h.svs.RejectApplication)
}

func (h *CollectivesHandler) reviewApplication(
	c *gin.Context,
	review func(ctx context.Context, applicationID, userID int64) (*domain.HostApplication, error),
) {
	currentUserID := getUserIDFromContext(c)
	applicationID := getIDParam(c, "id")
	if applicationID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	application, err := review(reqCtx, applicationID, currentUserID)
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

	c.JSON(http.StatusOK, hostApplicationResponse(application))
}

// abortNotFoundOrInternal — общий маппинг ошибок чтения: 404 для отсутствующей
// записи, 500 для остального.
func abortNotFoundOrInternal(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
