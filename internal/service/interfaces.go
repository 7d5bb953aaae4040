package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type CollectiveRepository interface {
	CreateCollective(ctx context.Context, args repoargs.CreateCollective) (*domain.Collective, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Collective, error)
	FindByID(ctx context.Context, id int64) (*domain.Collective, error)
	AttachToHost(ctx context.Context, args repoargs.AttachToHost) (*domain.Collective, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	GetDueRecurring(ctx context.Context, now time.Time, limit uint) ([]domain.Order, error)
	UpdateCharge(ctx context.Context, args repoargs.OrderChargeUpdate) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) (*domain.Order, error)
	IncrementErrAttempts(ctx context.Context, orderIDs []int64) error
}

type ExpenseRepository interface {
	CreateExpense(ctx context.Context, args repoargs.CreateExpense) (*domain.Expense, error)
	FindByID(ctx context.Context, id int64) (*domain.Expense, error)
	GetByCollectiveID(ctx context.Context, collectiveID int64) ([]domain.Expense, error)
	GetForPayout(ctx context.Context, limit, maxAttempts uint) ([]domain.Expense, error)
	UpdateStatus(ctx context.Context, args repoargs.ExpenseStatusUpdate) (*domain.Expense, error)
	MarkPaid(ctx context.Context, args repoargs.ExpensePaidUpdate) (*domain.Expense, error)
	IncrementErrAttempts(ctx context.Context, expenseIDs []int64, maxAttempts uint) error
	SumCardCharges(ctx context.Context, cardUUID uuid.UUID, since time.Time) (decimal.Decimal, error)
}

type TransactionRepository interface {
	BatchCreate(ctx context.Context, transactions []domain.Transaction, fn repoargs.BatchExecQueryRow)
	GetByAccountID(ctx context.Context, accountID int64, limit uint) ([]domain.Transaction, error)
	GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]domain.Transaction, error)
	GetAccountBalance(ctx context.Context, accountID int64) (*repoargs.BalanceAggregation, error)
	GroupHasRefund(ctx context.Context, groupID uuid.UUID) (bool, error)
}

type VirtualCardRepository interface {
	CreateVirtualCard(ctx context.Context, args repoargs.CreateVirtualCard) (*domain.VirtualCard, error)
	FindByUUID(ctx context.Context, cardUUID uuid.UUID) (*domain.VirtualCard, error)
	UpdateStatus(ctx context.Context, cardUUID uuid.UUID, status domain.VirtualCardStatusType) (*domain.VirtualCard, error)
}

type HostApplicationRepository interface {
	CreateHostApplication(ctx context.Context, args repoargs.CreateHostApplication) (*domain.HostApplication, error)
	FindByID(ctx context.Context, id int64) (*domain.HostApplication, error)
	UpdateStatus(ctx context.Context, id int64, status domain.HostApplicationStatusType) (*domain.HostApplication, error)
	GetByHostID(ctx context.Context, hostID int64) ([]domain.HostApplication, error)
}

type ActivityRepository interface {
	CreateActivity(ctx context.Context, args repoargs.CreateActivity) (*domain.Activity, error)
	GetByCollectiveID(ctx context.Context, collectiveID int64, limit uint) ([]domain.Activity, error)
}

// FxProvider отдает курс конвертации base -> quote. Реализация —
// transport/fxrates (HTTP клиент с TTL кэшем).
type FxProvider interface {
	GetRate(ctx context.Context, base, quote string) (decimal.Decimal, error)
}

// PayoutQuoter оценивает комиссию выплаты до её планирования. Для банковских
// переводов реализуется клиентом провайдера выплат, см. transport/payout.
type PayoutQuoter interface {
	QuoteFee(ctx context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error)
}
