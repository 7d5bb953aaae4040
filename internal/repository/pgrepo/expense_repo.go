package pgrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const expenseColumns = "id, created_at, updated_at, collective_id, payee_user_id, amount, " +
	"currency, description, status, payout_method_type, payout_details, payout_fee, " +
	"payout_reference, attempts, virtual_card_uuid, occurred_at"

type ExpenseRepository struct {
	db uow.DBTX
}

func NewExpenseRepository(db uow.DBTX) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (e *ExpenseRepository) CreateExpense(ctx context.Context, args repoargs.CreateExpense) (*domain.Expense, error) {
	var occurredAt *time.Time
	if !args.OccurredAt.IsZero() {
		utc := args.OccurredAt.UTC()
		occurredAt = &utc
	}
	row := e.db.QueryRow(ctx, `
		INSERT INTO expenses (collective_id, payee_user_id, amount, currency, description,
			status, payout_method_type, payout_details, virtual_card_uuid, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
		RETURNING `+expenseColumns,
		args.CollectiveID, args.PayeeUserID, args.Amount, args.Currency, args.Description,
		args.Status, args.PayoutMethodType, args.PayoutDetails, args.VirtualCardUUID, occurredAt,
	)
	expense, err := scanExpense(row)
	if err != nil {
		return nil, convertErr(err, "creating expense")
	}
	return expense, nil
}

func (e *ExpenseRepository) FindByID(ctx context.Context, id int64) (*domain.Expense, error) {
	row := e.db.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	expense, err := scanExpense(row)
	if err != nil {
		return nil, convertErr(err, "finding expense by id %d", id)
	}
	return expense, nil
}

func (e *ExpenseRepository) GetByCollectiveID(ctx context.Context, collectiveID int64) ([]domain.Expense, error) {
	rows, err := e.db.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses WHERE collective_id = $1 ORDER BY created_at DESC`,
		collectiveID)
	if err != nil {
		return nil, convertErr(err, "getting expenses by collectiveID `%d`", collectiveID)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning expenses by collectiveID `%d`", collectiveID)
		}
		expenses = append(expenses, *expense)
	}
	return expenses, convertErr(rows.Err(), "getting expenses by collectiveID `%d`", collectiveID)
}

// GetForPayout возвращает расходы, запланированные к выплате, с количеством
// неудачных попыток ниже maxAttempts. Выбранные строки блокируются до конца
// транзакции, чтобы параллельный инстанс процессора не взял их повторно.
func (e *ExpenseRepository) GetForPayout(ctx context.Context, limit, maxAttempts uint) ([]domain.Expense, error) {
	rows, err := e.db.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE status = $1 AND attempts < $2
		ORDER BY updated_at ASC
		LIMIT $3
		FOR UPDATE SKIP LOCKED`,
		domain.ExpenseStatusScheduled, int64(maxAttempts), int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting expenses for payout")
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning expenses for payout")
		}
		expenses = append(expenses, *expense)
	}
	return expenses, convertErr(rows.Err(), "getting expenses for payout")
}

func (e *ExpenseRepository) UpdateStatus(ctx context.Context, args repoargs.ExpenseStatusUpdate) (*domain.Expense, error) {
	row := e.db.QueryRow(ctx, `
		UPDATE expenses SET status = $1, updated_at = now() WHERE id = $2
		RETURNING `+expenseColumns,
		args.Status, args.ID,
	)
	expense, err := scanExpense(row)
	if err != nil {
		return nil, convertErr(err, "updating expense status for id %d", args.ID)
	}
	return expense, nil
}

// MarkPaid переводит расход в статус PAID и фиксирует комиссию и референс провайдера.
func (e *ExpenseRepository) MarkPaid(ctx context.Context, args repoargs.ExpensePaidUpdate) (*domain.Expense, error) {
	row := e.db.QueryRow(ctx, `
		UPDATE expenses
		SET status = $1, payout_fee = $2, payout_reference = $3, updated_at = now()
		WHERE id = $4
		RETURNING `+expenseColumns,
		domain.ExpenseStatusPaid, args.PayoutFee, args.PayoutReference, args.ID,
	)
	expense, err := scanExpense(row)
	if err != nil {
		return nil, convertErr(err, "marking expense %d paid", args.ID)
	}
	return expense, nil
}

// IncrementErrAttempts откатывает расходы обратно в SCHEDULED_FOR_PAYMENT с
// инкрементом счетчика попыток; исчерпавшие maxAttempts переводятся в ERROR.
func (e *ExpenseRepository) IncrementErrAttempts(ctx context.Context, expenseIDs []int64, maxAttempts uint) error {
	if len(expenseIDs) == 0 {
		return nil
	}
	_, err := e.db.Exec(ctx, `
		UPDATE expenses
		SET attempts = attempts + 1,
		    status = CASE WHEN attempts + 1 >= $1 THEN $2::expense_status ELSE $3::expense_status END,
		    updated_at = now()
		WHERE id = ANY($4)`,
		int64(maxAttempts), domain.ExpenseStatusError, domain.ExpenseStatusScheduled, expenseIDs)
	return convertErr(err, "incrementing err attempts for expenses with ids `%v`", expenseIDs)
}

// SumCardCharges возвращает сумму списаний по карте начиная с момента since,
// по времени списания у провайдера.
func (e *ExpenseRepository) SumCardCharges(
	ctx context.Context,
	cardUUID uuid.UUID,
	since time.Time,
) (decimal.Decimal, error) {
	row := e.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE virtual_card_uuid = $1 AND occurred_at >= $2 AND status <> $3`,
		cardUUID, since, domain.ExpenseStatusRejected)

	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "summing card charges for %s", cardUUID)
	}
	return sum, nil
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var expense domain.Expense
	err := row.Scan(
		&expense.ID,
		&expense.CreatedAt,
		&expense.UpdatedAt,
		&expense.CollectiveID,
		&expense.PayeeUserID,
		&expense.Amount,
		&expense.Currency,
		&expense.Description,
		&expense.Status,
		&expense.PayoutMethodType,
		&expense.PayoutDetails,
		&expense.PayoutFee,
		&expense.PayoutReference,
		&expense.Attempts,
		&expense.VirtualCardUUID,
		&expense.OccurredAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &expense, nil
}
