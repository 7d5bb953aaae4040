package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Email             string
	EncryptedPassword string
	// CollectiveID указывает на персональный аккаунт юзера в леджере.
	CollectiveID int64
}

// Collective представляет аккаунт в леджере: коллектив, организацию-хоста или
// персональный аккаунт юзера. Все денежные движения в системе происходят между
// записями этой таблицы.
type Collective struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Slug           string
	Name           string
	Type           CollectiveType
	Currency       string
	HostID         *int64
	HostFeePercent decimal.Decimal
	IsHost         bool
	CreatedByID    int64
}

type Order struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       int64
	CollectiveID int64
	Amount       decimal.Decimal
	Currency     string
	PlatformTip  decimal.Decimal
	Interval     OrderInterval
	Status       OrderStatusType
	Description  string
	NextChargeAt *time.Time
	Attempts     uint
}

// Transaction — одна строка двойной записи. Строки группируются по GroupID:
// сумма Amount всех строк группы всегда равна нулю.
type Transaction struct {
	ID             int64
	CreatedAt      time.Time
	GroupID        uuid.UUID
	Type           TransactionDirection
	Kind           TransactionKind
	AccountID      int64
	CounterpartyID int64
	OrderID        *int64
	ExpenseID      *int64
	// Amount в валюте Currency аккаунта: положительный для CREDIT, отрицательный для DEBIT.
	Amount           decimal.Decimal
	Currency         string
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	FxRate           decimal.Decimal
	IsRefund         bool
	RefundOfID       *int64
}

type Expense struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CollectiveID     int64
	PayeeUserID      int64
	Amount           decimal.Decimal
	Currency         string
	Description      string
	Status           ExpenseStatusType
	PayoutMethodType PayoutMethodType
	PayoutDetails    string
	PayoutFee        decimal.Decimal
	PayoutReference  string
	Attempts         uint
	// VirtualCardUUID заполнен только для расходов, созданных списанием с карты.
	VirtualCardUUID *uuid.UUID
	// OccurredAt — момент списания у провайдера, хранится в UTC.
	OccurredAt time.Time
}

type VirtualCard struct {
	UUID         uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CollectiveID int64
	Name         string
	Last4        string
	MonthlyLimit decimal.Decimal
	Currency     string
	Status       VirtualCardStatusType
}

type HostApplication struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CollectiveID int64
	HostID       int64
	Status       HostApplicationStatusType
	Message      string
}

// Activity — запись ленты событий. Является основой для последующих
// нотификаций (рассылка писем вне зоны ответственности этого сервиса).
type Activity struct {
	ID           int64
	CreatedAt    time.Time
	Type         ActivityType
	CollectiveID int64
	UserID       int64
	Data         []byte
}
