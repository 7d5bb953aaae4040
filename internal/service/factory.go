package service

import (
	"github.com/pkg/errors"

	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

// AppServices агрегирует сервисы приложения для передачи в транспортный слой.
type AppServices struct {
	UserService        *UserService
	CollectiveService  *CollectiveService
	OrderService       *OrderService
	ExpenseService     *ExpenseService
	TransactionService *TransactionService
	VirtualCardService *VirtualCardService
}

type AppServicesArgs struct {
	UOW            uow.UOW
	JWTTokenSecret []byte
	FxProvider     FxProvider
	PayoutQuoter   PayoutQuoter
	// PlatformAccountID — id служебного аккаунта платформы, на который
	// зачисляются комиссии и чаевые.
	PlatformAccountID int64
}

func NewAppServices(args AppServicesArgs) (*AppServices, error) {
	userService, userErr := NewUserService(args.UOW, args.JWTTokenSecret)
	if userErr != nil {
		return nil, errors.Wrap(userErr, "init user service")
	}
	collectiveService, collErr := NewCollectiveService(args.UOW)
	if collErr != nil {
		return nil, errors.Wrap(collErr, "init collective service")
	}
	orderService, orderErr := NewOrderService(args.UOW, args.FxProvider, args.PlatformAccountID)
	if orderErr != nil {
		return nil, errors.Wrap(orderErr, "init order service")
	}
	expenseService, expErr := NewExpenseService(args.UOW, args.PayoutQuoter, args.PlatformAccountID)
	if expErr != nil {
		return nil, errors.Wrap(expErr, "init expense service")
	}
	transactionService, transErr := NewTransactionService(args.UOW)
	if transErr != nil {
		return nil, errors.Wrap(transErr, "init transaction service")
	}
	virtualCardService, cardErr := NewVirtualCardService(args.UOW, args.PlatformAccountID)
	if cardErr != nil {
		return nil, errors.Wrap(cardErr, "init virtual card service")
	}

	return &AppServices{
		UserService:        userService,
		CollectiveService:  collectiveService,
		OrderService:       orderService,
		ExpenseService:     expenseService,
		TransactionService: transactionService,
		VirtualCardService: virtualCardService,
	}, nil
}
