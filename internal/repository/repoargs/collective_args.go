package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

type CreateCollective struct {
	Slug        string
	Name        string
	Type        domain.CollectiveType
	Currency    string
	IsHost      bool
	CreatedByID int64
}

type AttachToHost struct {
	CollectiveID   int64
	HostID         int64
	HostFeePercent decimal.Decimal
}

type CreateHostApplication struct {
	CollectiveID int64
	HostID       int64
	Message      string
}
