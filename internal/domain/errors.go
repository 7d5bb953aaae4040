package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrForbidden        = errors.New("forbidden")
	ErrNotAHost         = errors.New("collective is not a host")
	ErrAlreadyRefunded  = errors.New("transaction group already refunded")
	ErrOrderNotActive   = errors.New("order is not an active subscription")

	ErrCardPaused        = errors.New("virtual card is paused")
	ErrCardLimitExceeded = errors.New("virtual card monthly limit exceeded")
)

// StatusTransitionError возвращается при попытке недопустимого перехода
// статуса расхода.
type StatusTransitionError struct {
	From ExpenseStatusType
	To   ExpenseStatusType
}

func NewStatusTransitionError(from, to ExpenseStatusType) error {
	return &StatusTransitionError{From: from, To: to}
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("expense status transition %s -> %s is not allowed", e.From, e.To)
}

// UnbalancedGroupError возвращается билдером леджера если сформированная группа
// строк не сходится в ноль. Появление этой ошибки означает баг в расчетах.
type UnbalancedGroupError struct {
	GroupID string
	Sum     string
}

func (e *UnbalancedGroupError) Error() string {
	return fmt.Sprintf("transaction group %s does not balance: sum %s", e.GroupID, e.Sum)
}
