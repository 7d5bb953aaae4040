package payout

import "errors"

var (
	ErrNoExpenses = errors.New("no expenses")
)
