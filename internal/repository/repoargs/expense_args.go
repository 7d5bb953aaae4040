package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

type CreateExpense struct {
	CollectiveID     int64
	PayeeUserID      int64
	Amount           decimal.Decimal
	Currency         string
	Description      string
	Status           domain.ExpenseStatusType
	PayoutMethodType domain.PayoutMethodType
	PayoutDetails    string
	VirtualCardUUID  *uuid.UUID
	// OccurredAt может быть нулевым, тогда БД подставит now().
	OccurredAt time.Time
}

type ExpenseStatusUpdate struct {
	ID     int64
	Status domain.ExpenseStatusType
}

// ExpensePaidUpdate фиксирует результат успешной выплаты.
type ExpensePaidUpdate struct {
	ID              int64
	PayoutFee       decimal.Decimal
	PayoutReference string
}
