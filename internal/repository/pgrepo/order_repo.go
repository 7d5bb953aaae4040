package pgrepo

import (
	"context"
	"time"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const orderColumns = "id, created_at, updated_at, user_id, collective_id, amount, currency, " +
	"platform_tip, charge_interval, status, description, next_charge_at, attempts"

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, collective_id, amount, currency, platform_tip,
			charge_interval, status, description, next_charge_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+orderColumns,
		args.UserID, args.CollectiveID, args.Amount, args.Currency, args.PlatformTip,
		args.Interval, args.Status, args.Description, args.NextChargeAt,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order")
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return order, nil
}

// GetByUserID возвращает заказы юзера, отсортированные по дате создания по убыванию.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := o.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID `%d`", userID)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning orders by userID `%d`", userID)
		}
		orders = append(orders, *order)
	}
	return orders, convertErr(rows.Err(), "getting orders by userID `%d`", userID)
}

// GetDueRecurring возвращает активные подписки с наступившей датой списания.
func (o *OrderRepository) GetDueRecurring(
	ctx context.Context,
	now time.Time,
	limit uint,
) ([]domain.Order, error) {
	rows, err := o.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE status = $1 AND charge_interval = $2 AND next_charge_at <= $3
		ORDER BY next_charge_at ASC
		LIMIT $4`,
		domain.OrderStatusActive, domain.OrderIntervalMonth, now, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting due recurring orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning due recurring orders")
		}
		orders = append(orders, *order)
	}
	return orders, convertErr(rows.Err(), "getting due recurring orders")
}

// UpdateCharge фиксирует результат успешного списания по подписке.
func (o *OrderRepository) UpdateCharge(ctx context.Context, args repoargs.OrderChargeUpdate) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, next_charge_at = $2, attempts = 0, updated_at = now()
		WHERE id = $3
		RETURNING `+orderColumns,
		args.Status, args.NextChargeAt, args.ID,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order charge for id %d", args.ID)
	}
	return order, nil
}

func (o *OrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
		RETURNING `+orderColumns,
		status, id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order status for id %d", id)
	}
	return order, nil
}

func (o *OrderRepository) IncrementErrAttempts(ctx context.Context, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}
	_, err := o.db.Exec(ctx, `
		UPDATE orders SET attempts = attempts + 1, updated_at = now() WHERE id = ANY($1)`, orderIDs)
	return convertErr(err, "incrementing err attempts for orders with ids `%v`", orderIDs)
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.CollectiveID,
		&order.Amount,
		&order.Currency,
		&order.PlatformTip,
		&order.Interval,
		&order.Status,
		&order.Description,
		&order.NextChargeAt,
		&order.Attempts,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}
