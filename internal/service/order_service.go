package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/ledger"
	"github.com/ralexrdz/opencollective-api/internal/metrics"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const (
	// maxChargeAttempts — после этого кол-ва неудачных списаний подписка
	// переводится в ERROR и больше не обрабатывается.
	maxChargeAttempts   uint = 3
	recurringBatchLimit uint = 100
)

type OrderService struct {
	uow        uow.UOW
	orderRepo  OrderRepository
	collRepo   CollectiveRepository
	userRepo   UserRepository
	fxProvider FxProvider
	platformID int64
}

func NewOrderService(u uow.UOW, fxProvider FxProvider, platformID int64) (*OrderService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	collRepo, collRepoErr :=
		uow.GetRepositoryAs[CollectiveRepository](u, uow.RepositoryName(repoargs.CollectiveRepoName))
	if collRepoErr != nil {
		return nil, collRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &OrderService{
		uow:        u,
		orderRepo:  orderRepo,
		collRepo:   collRepo,
		userRepo:   userRepo,
		fxProvider: fxProvider,
		platformID: platformID,
	}, nil
}

type ContributeArgs struct {
	UserID         int64
	CollectiveSlug string
	Amount         decimal.Decimal
	Currency       string
	PlatformTip    decimal.Decimal
	Interval       domain.OrderInterval
	Description    string
}

// Contribute проводит контрибуцию целиком: считает комиссию процессинга,
// запрашивает курс конвертации, строит группу строк двойной записи и атомарно
// пишет заказ, строки леджера и активность. Для подписок (Interval == MONTH)
// заказ остается в статусе ACTIVE с датой следующего списания через месяц.
func (s *OrderService) Contribute(ctx context.Context, args ContributeArgs) (*domain.Order, error) {
	collective, collectiveErr := s.collRepo.FindBySlug(ctx, args.CollectiveSlug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}

	user, userErr := s.userRepo.FindUserByID(ctx, args.UserID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}

	rate, rateErr := s.fxProvider.GetRate(ctx, args.Currency, collective.Currency)
	if rateErr != nil {
		return nil, fmt.Errorf("contributing to %s: %w", args.CollectiveSlug, rateErr)
	}

	status := domain.OrderStatusPaid
	var nextChargeAt *time.Time
	if args.Interval == domain.OrderIntervalMonth {
		status = domain.OrderStatusActive
		next := time.Now().AddDate(0, 1, 0)
		nextChargeAt = &next
	}

	var order *domain.Order
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		var createErr error
		order, createErr = orderRepo.CreateOrder(c, repoargs.CreateOrder{
			UserID:       args.UserID,
			CollectiveID: collective.ID,
			Amount:       args.Amount,
			Currency:     args.Currency,
			PlatformTip:  args.PlatformTip,
			Interval:     args.Interval,
			Status:       status,
			Description:  args.Description,
			NextChargeAt: nextChargeAt,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if ledgerErr := s.writeContributionLedger(c, tx, order, user, collective, rate); ledgerErr != nil {
			return ledgerErr
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityOrderProcessed,
			CollectiveID: collective.ID,
			UserID:       args.UserID,
			Data: activityPayload(map[string]any{
				"orderId":  order.ID,
				"amount":   args.Amount,
				"currency": args.Currency,
			}),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("contributing to %s: %w", args.CollectiveSlug, txErr)
	}
	return order, nil
}

// GetByUserID возвращает заказы юзера отсортированные по дате создания по убыванию.
func (s *OrderService) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// Cancel останавливает подписку. Отменить заказ может только его владелец,
// и только пока подписка активна: разовые и уже завершенные заказы
// возвращают domain.ErrOrderNotActive.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, orderErr := s.orderRepo.FindByID(ctx, orderID)
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("cancelling order %d: %w", orderID, domain.ErrForbidden)
	}
	if order.Status != domain.OrderStatusActive {
		return nil, fmt.Errorf("cancelling order %d: %w", orderID, domain.ErrOrderNotActive)
	}

	var cancelled *domain.Order
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		cancelled, updErr = orderRepo.UpdateStatus(c, orderID, domain.OrderStatusCancelled)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityOrderCancelled,
			CollectiveID: order.CollectiveID,
			UserID:       userID,
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("cancelling order %d: %w", orderID, txErr)
	}
	return cancelled, nil
}

// ChargeDueRecurring обрабатывает подписки с наступившей датой списания.
// Вызывается планировщиком. Ошибка отдельного заказа не прерывает проход:
// неудачникам инкрементируется счетчик попыток, исчерпавшие лимит уходят в ERROR.
func (s *OrderService) ChargeDueRecurring(ctx context.Context) (charged int, err error) {
	due, dueErr := s.orderRepo.GetDueRecurring(ctx, time.Now(), recurringBatchLimit)
	if dueErr != nil {
		return 0, fmt.Errorf("charging due recurring orders: %w", dueErr)
	}

	var failedIDs []int64
	for i := range due {
		if chargeErr := s.chargeRecurring(ctx, &due[i]); chargeErr != nil {
			failedIDs = append(failedIDs, due[i].ID)
			err = errors.Join(err, fmt.Errorf("order %d: %w", due[i].ID, chargeErr))
			continue
		}
		charged++
	}

	if len(failedIDs) > 0 {
		if incErr := s.orderRepo.IncrementErrAttempts(ctx, failedIDs); incErr != nil {
			err = errors.Join(err, incErr)
		}
		err = errors.Join(err, s.disableExhausted(ctx, due, failedIDs))
	}
	return charged, err
}

func (s *OrderService) chargeRecurring(ctx context.Context, order *domain.Order) error {
	collective, collectiveErr := s.collRepo.FindByID(ctx, order.CollectiveID)
	if collectiveErr != nil {
		return collectiveErr //nolint:wrapcheck
	}
	user, userErr := s.userRepo.FindUserByID(ctx, order.UserID)
	if userErr != nil {
		return userErr //nolint:wrapcheck
	}

	rate, rateErr := s.fxProvider.GetRate(ctx, order.Currency, collective.Currency)
	if rateErr != nil {
		return fmt.Errorf("charging recurring order: %w", rateErr)
	}

	next := time.Now().AddDate(0, 1, 0)

	return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if _, updErr := orderRepo.UpdateCharge(c, repoargs.OrderChargeUpdate{
			ID:           order.ID,
			Status:       domain.OrderStatusActive,
			NextChargeAt: &next,
		}); updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if ledgerErr := s.writeContributionLedger(c, tx, order, user, collective, rate); ledgerErr != nil {
			return ledgerErr
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityOrderProcessed,
			CollectiveID: collective.ID,
			UserID:       order.UserID,
			Data: activityPayload(map[string]any{
				"orderId":   order.ID,
				"recurring": true,
			}),
		})
	})
}

// disableExhausted переводит в ERROR заказы, исчерпавшие попытки списания.
// Attempts в памяти еще не учитывает только что записанный инкремент.
func (s *OrderService) disableExhausted(ctx context.Context, due []domain.Order, failedIDs []int64) error {
	failed := make(map[int64]struct{}, len(failedIDs))
	for _, id := range failedIDs {
		failed[id] = struct{}{}
	}

	var err error
	for _, order := range due {
		if _, ok := failed[order.ID]; !ok {
			continue
		}
		if order.Attempts+1 < maxChargeAttempts {
			continue
		}
		if _, updErr := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderStatusError); updErr != nil {
			err = errors.Join(err, updErr)
		}
	}
	return err
}

// writeContributionLedger строит и пишет группу строк двойной записи для
// заказа внутри открытой uow-транзакции.
func (s *OrderService) writeContributionLedger(
	ctx context.Context,
	tx uow.TX,
	order *domain.Order,
	user *domain.User,
	collective *domain.Collective,
	rate decimal.Decimal,
) error {
	entries, entriesErr := ledger.ContributionEntries(ledger.ContributionArgs{
		OrderID:        order.ID,
		FromID:         user.CollectiveID,
		ToID:           collective.ID,
		HostID:         collective.HostID,
		PlatformID:     s.platformID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		PlatformTip:    order.PlatformTip,
		ProcessorFee:   ledger.ProcessorFee(order.Amount),
		HostFeePercent: collective.HostFeePercent,
		TargetCurrency: collective.Currency,
		FxRate:         rate,
	})
	if entriesErr != nil {
		return fmt.Errorf("building contribution entries: %w", entriesErr)
	}

	return writeLedgerEntries(ctx, tx, entries)
}

// writeLedgerEntries батчем пишет строки леджера внутри uow-транзакции.
// Любая ошибка вставки откатывает всю группу.
func writeLedgerEntries(ctx context.Context, tx uow.TX, entries []domain.Transaction) error {
	transRepo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	var batchErr error
	transRepo.BatchCreate(ctx, entries, func(_ int, err error) {
		if err != nil {
			batchErr = err
		}
	})
	if batchErr != nil {
		return batchErr
	}

	for _, entry := range entries {
		metrics.LedgerEntriesWritten.WithLabelValues(string(entry.Kind)).Inc()
	}
	return nil
}
