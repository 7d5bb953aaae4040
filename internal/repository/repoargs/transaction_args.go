package repoargs

import "github.com/shopspring/decimal"

// BalanceAggregation — суммы кредитов и дебетов аккаунта в его валюте.
// Дебеты хранятся отрицательными, поэтому баланс = CreditAmount + DebitAmount.
type BalanceAggregation struct {
	CreditAmount decimal.Decimal
	DebitAmount  decimal.Decimal
}
