package repoargs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

type CreateVirtualCard struct {
	UUID         uuid.UUID
	CollectiveID int64
	Name         string
	Last4        string
	MonthlyLimit decimal.Decimal
	Currency     string
}

type CreateActivity struct {
	Type         domain.ActivityType
	CollectiveID int64
	UserID       int64
	Data         []byte
}
