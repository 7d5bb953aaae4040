package repoargs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

type CreateOrder struct {
	UserID       int64
	CollectiveID int64
	Amount       decimal.Decimal
	Currency     string
	PlatformTip  decimal.Decimal
	Interval     domain.OrderInterval
	Status       domain.OrderStatusType
	Description  string
	NextChargeAt *time.Time
}

// OrderChargeUpdate применяется после очередного списания по подписке.
type OrderChargeUpdate struct {
	ID           int64
	Status       domain.OrderStatusType
	NextChargeAt *time.Time
}
