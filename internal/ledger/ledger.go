// Package ledger формирует сбалансированные группы строк двойной записи для
// всех денежных операций платформы: контрибуций, выплат по расходам, списаний
// с виртуальных карт и рефандов.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

// MoneyPrecision — кол-во знаков после запятой для денежных сумм.
const MoneyPrecision = 2

type ContributionArgs struct {
	OrderID      int64
	FromID       int64
	ToID         int64
	HostID       *int64
	PlatformID   int64
	Amount       decimal.Decimal
	Currency     string
	PlatformTip  decimal.Decimal
	ProcessorFee decimal.Decimal
	// HostFeePercent в процентах (10 = 10%). Применяется к валовой сумме
	// контрибуции в валюте коллектива.
	HostFeePercent decimal.Decimal
	TargetCurrency string
	// FxRate — курс Currency -> TargetCurrency. Для одинаковых валют равен 1.
	FxRate decimal.Decimal
}

// ContributionEntries строит группу строк для контрибуции.
//
// Состав группы:
//  1. Основная пара CONTRIBUTION: дебет аккаунта контрибьютора, кредит коллектива
//     на валовую сумму (без чаевых платформе).
//  2. Пара PAYMENT_PROCESSOR_FEE: дебет коллектива, кредит аккаунта платформы.
//  3. Пара PLATFORM_TIP: дебет контрибьютора, кредит платформы (если чаевые > 0).
//  4. Пара HOST_FEE: дебет коллектива, кредит хоста (если коллектив захощен и
//     процент > 0).
//
// Все суммы конвертируются в TargetCurrency по FxRate и округляются до
// MoneyPrecision. Каждая пара балансируется одним и тем же округленным числом,
// поэтому сумма группы всегда равна нулю.
func ContributionEntries(args ContributionArgs) ([]domain.Transaction, error) {
	groupID := uuid.New()

	gross := convert(args.Amount, args.FxRate)
	processorFee := convert(args.ProcessorFee, args.FxRate)
	tip := convert(args.PlatformTip, args.FxRate)

	rows := pair(pairArgs{
		GroupID:  groupID,
		Kind:     domain.KindContribution,
		FromID:   args.FromID,
		ToID:     args.ToID,
		Amount:   gross,
		Currency: args.TargetCurrency,
		OrderID:  &args.OrderID,

		OriginalAmount:   args.Amount,
		OriginalCurrency: args.Currency,
		FxRate:           args.FxRate,
	})

	if processorFee.IsPositive() {
		rows = append(rows, pair(pairArgs{
			GroupID:  groupID,
			Kind:     domain.KindPaymentProcessorFee,
			FromID:   args.ToID,
			ToID:     args.PlatformID,
			Amount:   processorFee,
			Currency: args.TargetCurrency,
			OrderID:  &args.OrderID,

			OriginalAmount:   args.ProcessorFee,
			OriginalCurrency: args.Currency,
			FxRate:           args.FxRate,
		})...)
	}

	if tip.IsPositive() {
		rows = append(rows, pair(pairArgs{
			GroupID:  groupID,
			Kind:     domain.KindPlatformTip,
			FromID:   args.FromID,
			ToID:     args.PlatformID,
			Amount:   tip,
			Currency: args.TargetCurrency,
			OrderID:  &args.OrderID,

			OriginalAmount:   args.PlatformTip,
			OriginalCurrency: args.Currency,
			FxRate:           args.FxRate,
		})...)
	}

	if args.HostID != nil && args.HostFeePercent.IsPositive() {
		hostFee := HostFee(gross, args.HostFeePercent)
		if hostFee.IsPositive() {
			rows = append(rows, pair(pairArgs{
				GroupID:  groupID,
				Kind:     domain.KindHostFee,
				FromID:   args.ToID,
				ToID:     *args.HostID,
				Amount:   hostFee,
				Currency: args.TargetCurrency,
				OrderID:  &args.OrderID,

				OriginalAmount:   hostFee,
				OriginalCurrency: args.TargetCurrency,
				FxRate:           decimal.NewFromInt(1),
			})...)
		}
	}

	return rows, validateGroup(groupID, rows)
}

type ExpensePayoutArgs struct {
	ExpenseID  int64
	FromID     int64
	ToID       int64
	PlatformID int64
	Amount     decimal.Decimal
	Currency   string
	PayoutFee  decimal.Decimal
	Kind       domain.TransactionKind
}

// ExpensePayoutEntries строит группу для выплаты по расходу: дебет коллектива,
// кредит аккаунта получателя, плюс пара комиссии провайдера выплат (комиссия
// ложится на коллектив и уходит на аккаунт платформы, которая рассчитывается
// с провайдером вне леджера).
func ExpensePayoutEntries(args ExpensePayoutArgs) ([]domain.Transaction, error) {
	groupID := uuid.New()
	kind := args.Kind
	if kind == "" {
		kind = domain.KindExpense
	}

	amount := args.Amount.Round(MoneyPrecision)

	rows := pair(pairArgs{
		GroupID:   groupID,
		Kind:      kind,
		FromID:    args.FromID,
		ToID:      args.ToID,
		Amount:    amount,
		Currency:  args.Currency,
		ExpenseID: &args.ExpenseID,

		OriginalAmount:   amount,
		OriginalCurrency: args.Currency,
		FxRate:           decimal.NewFromInt(1),
	})

	fee := args.PayoutFee.Round(MoneyPrecision)
	if fee.IsPositive() {
		rows = append(rows, pair(pairArgs{
			GroupID:   groupID,
			Kind:      domain.KindPayoutProcessorFee,
			FromID:    args.FromID,
			ToID:      args.PlatformID,
			Amount:    fee,
			Currency:  args.Currency,
			ExpenseID: &args.ExpenseID,

			OriginalAmount:   fee,
			OriginalCurrency: args.Currency,
			FxRate:           decimal.NewFromInt(1),
		})...)
	}

	return rows, validateGroup(groupID, rows)
}

// RefundEntries строит зеркальную группу для рефанда: каждая строка оригинала
// инвертируется, помечается IsRefund и ссылается на исходную строку.
// Направления меняются местами: кредит становится дебетом и наоборот.
func RefundEntries(original []domain.Transaction) ([]domain.Transaction, error) {
	groupID := uuid.New()

	rows := make([]domain.Transaction, len(original))
	for i, t := range original {
		direction := domain.TransactionCredit
		if t.Type == domain.TransactionCredit {
			direction = domain.TransactionDebit
		}
		refundOfID := t.ID
		rows[i] = domain.Transaction{
			GroupID:          groupID,
			Type:             direction,
			Kind:             t.Kind,
			AccountID:        t.AccountID,
			CounterpartyID:   t.CounterpartyID,
			OrderID:          t.OrderID,
			ExpenseID:        t.ExpenseID,
			Amount:           t.Amount.Neg(),
			Currency:         t.Currency,
			OriginalAmount:   t.OriginalAmount,
			OriginalCurrency: t.OriginalCurrency,
			FxRate:           t.FxRate,
			IsRefund:         true,
			RefundOfID:       &refundOfID,
		}
	}
	return rows, validateGroup(groupID, rows)
}

// HostFee считает комиссию хоста от валовой суммы.
func HostFee(gross, percent decimal.Decimal) decimal.Decimal {
	return gross.Mul(percent).Div(decimal.NewFromInt(100)).Round(MoneyPrecision)
}

type pairArgs struct {
	GroupID   uuid.UUID
	Kind      domain.TransactionKind
	FromID    int64
	ToID      int64
	Amount    decimal.Decimal
	Currency  string
	OrderID   *int64
	ExpenseID *int64

	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	FxRate           decimal.Decimal
}

// pair возвращает сбалансированную пару CREDIT/DEBIT на сумму Amount.
func pair(args pairArgs) []domain.Transaction {
	credit := domain.Transaction{
		GroupID:          args.GroupID,
		Type:             domain.TransactionCredit,
		Kind:             args.Kind,
		AccountID:        args.ToID,
		CounterpartyID:   args.FromID,
		OrderID:          args.OrderID,
		ExpenseID:        args.ExpenseID,
		Amount:           args.Amount,
		Currency:         args.Currency,
		OriginalAmount:   args.OriginalAmount,
		OriginalCurrency: args.OriginalCurrency,
		FxRate:           args.FxRate,
	}
	debit := domain.Transaction{
		GroupID:          args.GroupID,
		Type:             domain.TransactionDebit,
		Kind:             args.Kind,
		AccountID:        args.FromID,
		CounterpartyID:   args.ToID,
		OrderID:          args.OrderID,
		ExpenseID:        args.ExpenseID,
		Amount:           args.Amount.Neg(),
		Currency:         args.Currency,
		OriginalAmount:   args.OriginalAmount.Neg(),
		OriginalCurrency: args.OriginalCurrency,
		FxRate:           args.FxRate,
	}
	return []domain.Transaction{credit, debit}
}

func convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(MoneyPrecision)
}

// validateGroup проверяет что сумма строк группы равна нулю. Нарушение
// инварианта означает баг в билдере, такая группа не должна попасть в базу.
func validateGroup(groupID uuid.UUID, rows []domain.Transaction) error {
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Amount)
	}
	if !sum.IsZero() {
		return &domain.UnbalancedGroupError{GroupID: groupID.String(), Sum: sum.String()}
	}
	return nil
}
