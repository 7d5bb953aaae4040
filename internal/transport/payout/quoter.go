package payout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/transport/payout/client"
)

// Quoter реализует service.PayoutQuoter поверх API провайдера выплат.
// Используется для оценки комиссии банковских переводов до планирования
// расхода.
type Quoter struct {
	client Client
}

func NewQuoter(apiBaseURL string) *Quoter {
	return &Quoter{client: client.New(apiBaseURL)}
}

func (q *Quoter) QuoteFee(ctx context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	response, err := q.client.QuoteFee(ctx, client.QuoteRequest{Amount: amount, Currency: currency})
	if err != nil {
		return decimal.Zero, fmt.Errorf("quoting payout fee: %w", err)
	}
	return response.Fee, nil
}
