package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

// Тарифная сетка процессинга платежей: процент + фикс в валюте операции.
var (
	processorFeePercent = decimal.NewFromFloat(2.9)
	processorFeeFixed   = decimal.NewFromFloat(0.30)
)

// Тарифы выплат PayPal: процент с потолком.
var (
	paypalFeePercent = decimal.NewFromInt(2)
	paypalFeeCap     = decimal.NewFromInt(20)
)

// ProcessorFee считает комиссию платежного процессора для входящего платежа.
func ProcessorFee(amount decimal.Decimal) decimal.Decimal {
	percent := amount.Mul(processorFeePercent).Div(decimal.NewFromInt(100))
	return percent.Add(processorFeeFixed).Round(MoneyPrecision)
}

// StaticPayoutFee считает комиссию выплаты для методов с тарифами, известными
// без обращения к провайдеру. Для банковских переводов комиссия считается
// провайдером, см. transport/payout.
func StaticPayoutFee(method domain.PayoutMethodType, amount decimal.Decimal) (decimal.Decimal, bool) {
	switch method {
	case domain.PayoutPayPal:
		fee := amount.Mul(paypalFeePercent).Div(decimal.NewFromInt(100)).Round(MoneyPrecision)
		if fee.GreaterThan(paypalFeeCap) {
			fee = paypalFeeCap
		}
		return fee, true
	case domain.PayoutOther:
		return decimal.Zero, true
	default:
		return decimal.Zero, false
	}
}
