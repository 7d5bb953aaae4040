package payout

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/service"
	"github.com/ralexrdz/opencollective-api/internal/transport/payout/client"
)

type Client interface {
	QuoteFee(ctx context.Context, request client.QuoteRequest) (*client.QuoteResponse, error)
	SubmitPayout(ctx context.Context, request client.PayoutRequest) (*client.PayoutResponse, error)
}

type Servicer interface {
	ExpensesForPayout(ctx context.Context, limit uint) ([]domain.Expense, error)
	UpdatePayoutResults(ctx context.Context, results []service.PayoutResultArgs) error
}
