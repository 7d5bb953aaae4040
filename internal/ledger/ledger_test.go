package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralexrdz/opencollective-api/internal/domain"
)

func groupSum(rows []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Amount)
	}
	return sum
}

func accountDelta(rows []domain.Transaction, accountID int64) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range rows {
		if row.AccountID == accountID {
			sum = sum.Add(row.Amount)
		}
	}
	return sum
}

func TestContributionEntries(t *testing.T) {
	hostID := int64(5)

	cases := []struct {
		name           string
		args           ContributionArgs
		wantRows       int
		wantCollective string // итоговое изменение баланса коллектива
		wantHost       string
		wantPlatform   string
	}{
		{
			name: "same currency with tip and host fee",
			args: ContributionArgs{
				OrderID:        1,
				FromID:         10,
				ToID:           20,
				HostID:         &hostID,
				PlatformID:     1,
				Amount:         decimal.NewFromInt(100),
				Currency:       "USD",
				PlatformTip:    decimal.NewFromInt(5),
				ProcessorFee:   decimal.RequireFromString("3.20"),
				HostFeePercent: decimal.NewFromInt(10),
				TargetCurrency: "USD",
				FxRate:         decimal.NewFromInt(1),
			},
			wantRows: 8,
			// 100 - 3.20 (processor) - 10 (host fee)
			wantCollective: "86.8",
			wantHost:       "10",
			// 3.20 комиссия + 5 чаевые
			wantPlatform: "8.2",
		},
		{
			name: "cross currency conversion",
			args: ContributionArgs{
				OrderID:        2,
				FromID:         10,
				ToID:           20,
				PlatformID:     1,
				Amount:         decimal.NewFromInt(100),
				Currency:       "EUR",
				ProcessorFee:   decimal.RequireFromString("3.20"),
				TargetCurrency: "USD",
				FxRate:         decimal.RequireFromString("1.0857"),
			},
			wantRows: 4,
			// 100*1.0857 = 108.57; комиссия 3.20*1.0857 = 3.47 (округление half-up)
			wantCollective: "105.1",
			wantPlatform:   "3.47",
		},
		{
			name: "no fees at all",
			args: ContributionArgs{
				OrderID:        3,
				FromID:         10,
				ToID:           20,
				PlatformID:     1,
				Amount:         decimal.NewFromInt(50),
				Currency:       "USD",
				TargetCurrency: "USD",
				FxRate:         decimal.NewFromInt(1),
			},
			wantRows:       2,
			wantCollective: "50",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := ContributionEntries(tc.args)
			require.NoError(t, err)
			require.Len(t, rows, tc.wantRows)

			assert.True(t, groupSum(rows).IsZero(), "group must balance to zero")

			assert.Equal(t, tc.wantCollective, accountDelta(rows, tc.args.ToID).String())
			if tc.wantHost != "" {
				assert.Equal(t, tc.wantHost, accountDelta(rows, hostID).String())
			}
			if tc.wantPlatform != "" {
				assert.Equal(t, tc.wantPlatform, accountDelta(rows, tc.args.PlatformID).String())
			}

			// все строки группы разделяют один GroupID и ссылку на заказ
			for _, row := range rows {
				assert.Equal(t, rows[0].GroupID, row.GroupID)
				require.NotNil(t, row.OrderID)
				assert.Equal(t, tc.args.OrderID, *row.OrderID)
				assert.Equal(t, tc.args.TargetCurrency, row.Currency)
			}
		})
	}
}

func TestContributionEntries_PairSymmetry(t *testing.T) {
	rows, err := ContributionEntries(ContributionArgs{
		OrderID:        1,
		FromID:         10,
		ToID:           20,
		PlatformID:     1,
		Amount:         decimal.RequireFromString("33.33"),
		Currency:       "USD",
		ProcessorFee:   decimal.RequireFromString("1.27"),
		TargetCurrency: "USD",
		FxRate:         decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// каждая четная строка CREDIT, за ней зеркальный DEBIT
	for i := 0; i < len(rows); i += 2 {
		credit, debit := rows[i], rows[i+1]
		assert.Equal(t, domain.TransactionCredit, credit.Type)
		assert.Equal(t, domain.TransactionDebit, debit.Type)
		assert.Equal(t, credit.Amount, debit.Amount.Neg())
		assert.Equal(t, credit.AccountID, debit.CounterpartyID)
		assert.Equal(t, debit.AccountID, credit.CounterpartyID)
		assert.Equal(t, credit.Kind, debit.Kind)
	}
}

func TestExpensePayoutEntries(t *testing.T) {
	rows, err := ExpensePayoutEntries(ExpensePayoutArgs{
		ExpenseID:  7,
		FromID:     20,
		ToID:       30,
		PlatformID: 1,
		Amount:     decimal.NewFromInt(200),
		Currency:   "USD",
		PayoutFee:  decimal.RequireFromString("4.14"),
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.True(t, groupSum(rows).IsZero())
	// коллектив платит сумму расхода и комиссию
	assert.Equal(t, "-204.14", accountDelta(rows, 20).String())
	assert.Equal(t, "200", accountDelta(rows, 30).String())
	assert.Equal(t, "4.14", accountDelta(rows, 1).String())

	for _, row := range rows {
		require.NotNil(t, row.ExpenseID)
		assert.Equal(t, int64(7), *row.ExpenseID)
	}
}

func TestExpensePayoutEntries_CardChargeKind(t *testing.T) {
	rows, err := ExpensePayoutEntries(ExpensePayoutArgs{
		ExpenseID:  8,
		FromID:     20,
		ToID:       30,
		PlatformID: 1,
		Amount:     decimal.NewFromInt(15),
		Currency:   "USD",
		Kind:       domain.KindCardCharge,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.KindCardCharge, rows[0].Kind)
}

func TestRefundEntries(t *testing.T) {
	original, err := ContributionEntries(ContributionArgs{
		OrderID:        1,
		FromID:         10,
		ToID:           20,
		PlatformID:     1,
		Amount:         decimal.NewFromInt(100),
		Currency:       "USD",
		PlatformTip:    decimal.NewFromInt(5),
		ProcessorFee:   decimal.RequireFromString("3.20"),
		TargetCurrency: "USD",
		FxRate:         decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	for i := range original {
		original[i].ID = int64(i + 1)
	}

	refund, refundErr := RefundEntries(original)
	require.NoError(t, refundErr)
	require.Len(t, refund, len(original))

	assert.True(t, groupSum(refund).IsZero())
	assert.NotEqual(t, original[0].GroupID, refund[0].GroupID)

	for i, row := range refund {
		assert.True(t, row.IsRefund)
		require.NotNil(t, row.RefundOfID)
		assert.Equal(t, original[i].ID, *row.RefundOfID)
		assert.Equal(t, original[i].Amount.Neg(), row.Amount)
		assert.NotEqual(t, original[i].Type, row.Type)
	}

	// рефанд полностью обнуляет эффект оригинальной группы на каждый аккаунт
	for _, accountID := range []int64{1, 10, 20} {
		total := accountDelta(original, accountID).Add(accountDelta(refund, accountID))
		assert.True(t, total.IsZero(), "account %d must net to zero", accountID)
	}
}

func TestHostFee(t *testing.T) {
	fee := HostFee(decimal.RequireFromString("86.80"), decimal.NewFromInt(10))
	assert.Equal(t, "8.68", fee.String())

	zero := HostFee(decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, zero.IsZero())
}

func TestProcessorFee(t *testing.T) {
	// 100*2.9% + 0.30
	assert.Equal(t, "3.2", ProcessorFee(decimal.NewFromInt(100)).String())
	// минимальный платеж тоже несет фикс
	assert.Equal(t, "0.33", ProcessorFee(decimal.NewFromInt(1)).String())
}

func TestStaticPayoutFee(t *testing.T) {
	fee, ok := StaticPayoutFee(domain.PayoutPayPal, decimal.NewFromInt(100))
	require.True(t, ok)
	assert.Equal(t, "2", fee.String())

	// потолок комиссии PayPal
	capped, ok := StaticPayoutFee(domain.PayoutPayPal, decimal.NewFromInt(5000))
	require.True(t, ok)
	assert.Equal(t, "20", capped.String())

	other, ok := StaticPayoutFee(domain.PayoutOther, decimal.NewFromInt(100))
	require.True(t, ok)
	assert.True(t, other.IsZero())

	_, ok = StaticPayoutFee(domain.PayoutBankAccount, decimal.NewFromInt(100))
	assert.False(t, ok)
}
