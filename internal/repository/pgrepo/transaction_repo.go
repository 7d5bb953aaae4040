package pgrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const transactionColumns = "id, created_at, group_id, type, kind, account_id, counterparty_id, " +
	"order_id, expense_id, amount, currency, original_amount, original_currency, fx_rate, " +
	"is_refund, refund_of_id"

const insertTransactionSQL = `
	INSERT INTO transactions (group_id, type, kind, account_id, counterparty_id, order_id,
		expense_id, amount, currency, original_amount, original_currency, fx_rate,
		is_refund, refund_of_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// BatchCreate вставляет группу строк леджера одним батчем. Результат каждой
// вставки отдается в колбек fn. Вызывается только внутри uow-транзакции:
// частично записанная группа недопустима.
func (t *TransactionRepository) BatchCreate(
	ctx context.Context,
	transactions []domain.Transaction,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, trans := range transactions {
		batch.Queue(insertTransactionSQL,
			trans.GroupID, trans.Type, trans.Kind, trans.AccountID, trans.CounterpartyID,
			trans.OrderID, trans.ExpenseID, trans.Amount, trans.Currency,
			trans.OriginalAmount, trans.OriginalCurrency, trans.FxRate,
			trans.IsRefund, trans.RefundOfID,
		)
	}

	results := t.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i := range transactions {
		_, err := results.Exec()
		fn(i, convertErr(err, "creating ledger transaction"))
	}
}

// GetByAccountID возвращает строки леджера аккаунта, новые первыми.
func (t *TransactionRepository) GetByAccountID(
	ctx context.Context,
	accountID int64,
	limit uint,
) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		accountID, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting transactions by accountID `%d`", accountID)
	}
	defer rows.Close()

	return collectTransactions(rows, accountID)
}

func (t *TransactionRepository) GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions WHERE group_id = $1 ORDER BY id ASC`, groupID)
	if err != nil {
		return nil, convertErr(err, "getting transactions by groupID `%s`", groupID)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		trans, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transactions by groupID `%s`", groupID)
		}
		transactions = append(transactions, *trans)
	}
	if len(transactions) == 0 {
		return nil, convertErr(pgx.ErrNoRows, "getting transactions by groupID `%s`", groupID)
	}
	return transactions, convertErr(rows.Err(), "getting transactions by groupID `%s`", groupID)
}

// GroupHasRefund сообщает, существует ли зеркальная группа для переданной.
// Частичный уникальный индекс по refund_of_id страхует от гонки двух
// параллельных рефандов, этот запрос закрывает обычный повторный вызов.
func (t *TransactionRepository) GroupHasRefund(ctx context.Context, groupID uuid.UUID) (bool, error) {
	row := t.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions r
			JOIN transactions o ON r.refund_of_id = o.id
			WHERE o.group_id = $1
		)`, groupID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, convertErr(err, "checking refund existence for groupID `%s`", groupID)
	}
	return exists, nil
}

// GetAccountBalance агрегирует кредиты и дебеты аккаунта.
func (t *TransactionRepository) GetAccountBalance(
	ctx context.Context,
	accountID int64,
) (*repoargs.BalanceAggregation, error) {
	rows, err := t.db.Query(ctx, `
		SELECT type, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE account_id = $1
		GROUP BY type`,
		accountID)
	if err != nil {
		return nil, convertErr(err, "getting balance sum by accountID %d", accountID)
	}
	defer rows.Close()

	var sum = new(repoargs.BalanceAggregation)
	for rows.Next() {
		var direction domain.TransactionDirection
		var amount decimal.Decimal
		if scanErr := rows.Scan(&direction, &amount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning balance sum by accountID %d", accountID)
		}
		if direction == domain.TransactionCredit {
			sum.CreditAmount = amount
		} else {
			sum.DebitAmount = amount
		}
	}
	return sum, convertErr(rows.Err(), "getting balance sum by accountID %d", accountID)
}

func collectTransactions(rows pgx.Rows, accountID int64) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		trans, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transactions by accountID `%d`", accountID)
		}
		transactions = append(transactions, *trans)
	}
	return transactions, convertErr(rows.Err(), "getting transactions by accountID `%d`", accountID)
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var trans domain.Transaction
	err := row.Scan(
		&trans.ID,
		&trans.CreatedAt,
		&trans.GroupID,
		&trans.Type,
		&trans.Kind,
		&trans.AccountID,
		&trans.CounterpartyID,
		&trans.OrderID,
		&trans.ExpenseID,
		&trans.Amount,
		&trans.Currency,
		&trans.OriginalAmount,
		&trans.OriginalCurrency,
		&trans.FxRate,
		&trans.IsRefund,
		&trans.RefundOfID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &trans, nil
}
