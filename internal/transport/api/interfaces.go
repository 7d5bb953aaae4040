package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type CollectiveServicer interface {
	Create(ctx context.Context, args service.CreateCollectiveArgs) (*domain.Collective, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Collective, error)
	GetBalance(ctx context.Context, slug string) (*service.CollectiveBalance, error)
	Activities(ctx context.Context, slug string) ([]domain.Activity, error)
	ApplyToHost(ctx context.Context, args service.ApplyToHostArgs) (*domain.HostApplication, error)
	ApproveApplication(ctx context.Context, applicationID, userID int64) (*domain.HostApplication, error)
	RejectApplication(ctx context.Context, applicationID, userID int64) (*domain.HostApplication, error)
}

type OrderServicer interface {
	Contribute(ctx context.Context, args service.ContributeArgs) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	Cancel(ctx context.Context, userID, orderID int64) (*domain.Order, error)
}

type ExpenseServicer interface {
	Submit(ctx context.Context, args service.SubmitExpenseArgs) (*domain.Expense, error)
	GetByCollectiveSlug(ctx context.Context, slug string) ([]domain.Expense, error)
	Approve(ctx context.Context, expenseID, userID int64) (*domain.Expense, error)
	Reject(ctx context.Context, expenseID, userID int64) (*domain.Expense, error)
	Schedule(ctx context.Context, expenseID, userID int64) (*domain.Expense, error)
	QuoteFee(ctx context.Context, expenseID int64) (decimal.Decimal, error)
}

type TransactionServicer interface {
	GetByAccountSlug(ctx context.Context, slug string, limit uint) ([]domain.Transaction, error)
	Refund(ctx context.Context, groupID uuid.UUID, userID int64) ([]domain.Transaction, error)
}

type VirtualCardServicer interface {
	Create(ctx context.Context, args service.CreateVirtualCardArgs) (*domain.VirtualCard, error)
	Pause(ctx context.Context, cardUUID uuid.UUID, userID int64) (*domain.VirtualCard, error)
	Resume(ctx context.Context, cardUUID uuid.UUID, userID int64) (*domain.VirtualCard, error)
	ProcessCharge(ctx context.Context, args service.CardChargeArgs) (*domain.Expense, error)
}
