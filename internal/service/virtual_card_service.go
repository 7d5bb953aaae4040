package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/ledger"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

type VirtualCardService struct {
	uow        uow.UOW
	cardRepo   VirtualCardRepository
	collRepo   CollectiveRepository
	expRepo    ExpenseRepository
	platformID int64
}

func NewVirtualCardService(u uow.UOW, platformID int64) (*VirtualCardService, error) {
	cardRepo, cardRepoErr :=
		uow.GetRepositoryAs[VirtualCardRepository](u, uow.RepositoryName(repoargs.VirtualCardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr
	}
	collRepo, collRepoErr :=
		uow.GetRepositoryAs[CollectiveRepository](u, uow.RepositoryName(repoargs.CollectiveRepoName))
	if collRepoErr != nil {
		return nil, collRepoErr
	}
	expRepo, expRepoErr := uow.GetRepositoryAs[ExpenseRepository](u, uow.RepositoryName(repoargs.ExpenseRepoName))
	if expRepoErr != nil {
		return nil, expRepoErr
	}
	return &VirtualCardService{
		uow:        u,
		cardRepo:   cardRepo,
		collRepo:   collRepo,
		expRepo:    expRepo,
		platformID: platformID,
	}, nil
}

type CreateVirtualCardArgs struct {
	CollectiveSlug string
	UserID         int64
	Name           string
	Last4          string
	MonthlyLimit   decimal.Decimal
}

// Create выпускает виртуальную карту для коллектива в его валюте. Доступно
// только админу коллектива.
func (s *VirtualCardService) Create(ctx context.Context, args CreateVirtualCardArgs) (*domain.VirtualCard, error) {
	collective, collectiveErr := s.collRepo.FindBySlug(ctx, args.CollectiveSlug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}
	if collective.CreatedByID != args.UserID {
		return nil, fmt.Errorf("creating virtual card: %w", domain.ErrForbidden)
	}

	var card *domain.VirtualCard
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, repoErr := uow.GetAs[VirtualCardRepository](tx, uow.RepositoryName(repoargs.VirtualCardRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		card, createErr = cardRepo.CreateVirtualCard(c, repoargs.CreateVirtualCard{
			UUID:         uuid.New(),
			CollectiveID: collective.ID,
			Name:         args.Name,
			Last4:        args.Last4,
			MonthlyLimit: args.MonthlyLimit,
			Currency:     collective.Currency,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityVirtualCardAssigned,
			CollectiveID: collective.ID,
			UserID:       args.UserID,
			Data: activityPayload(map[string]any{
				"cardUuid": card.UUID,
				"last4":    card.Last4,
			}),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating virtual card: %w", txErr)
	}
	return card, nil
}

// Pause приостанавливает карту: новые списания по ней отклоняются.
func (s *VirtualCardService) Pause(ctx context.Context, cardUUID uuid.UUID, userID int64) (*domain.VirtualCard, error) {
	return s.setStatus(ctx, cardUUID, userID, domain.VirtualCardPaused)
}

// Resume снимает карту с паузы.
func (s *VirtualCardService) Resume(ctx context.Context, cardUUID uuid.UUID, userID int64) (*domain.VirtualCard, error) {
	return s.setStatus(ctx, cardUUID, userID, domain.VirtualCardActive)
}

func (s *VirtualCardService) setStatus(
	ctx context.Context,
	cardUUID uuid.UUID,
	userID int64,
	status domain.VirtualCardStatusType,
) (*domain.VirtualCard, error) {
	card, cardErr := s.cardRepo.FindByUUID(ctx, cardUUID)
	if cardErr != nil {
		return nil, cardErr //nolint:wrapcheck
	}
	collective, collectiveErr := s.collRepo.FindByID(ctx, card.CollectiveID)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}
	if collective.CreatedByID != userID {
		return nil, fmt.Errorf("updating virtual card %s: %w", cardUUID, domain.ErrForbidden)
	}

	updated, updErr := s.cardRepo.UpdateStatus(ctx, cardUUID, status)
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}
	return updated, nil
}

// CardChargeArgs — нотификация провайдера карт о состоявшемся списании.
type CardChargeArgs struct {
	CardUUID    uuid.UUID
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
}

// ProcessCharge обрабатывает вебхук списания с виртуальной карты.
//
// Алгоритм работы:
//  1. Карта должна быть активна, иначе domain.ErrCardPaused.
//  2. Сумма списаний за календарный месяц вместе с новым списанием не должна
//     превышать месячный лимит карты, иначе domain.ErrCardLimitExceeded.
//  3. Списание фиксируется расходом в статусе PAID (карточные списания уже
//     проведены провайдером, им не нужен цикл одобрения) и парой строк
//     леджера CARD_CHARGE с аккаунта коллектива на аккаунт платформы.
func (s *VirtualCardService) ProcessCharge(ctx context.Context, args CardChargeArgs) (*domain.Expense, error) {
	card, cardErr := s.cardRepo.FindByUUID(ctx, args.CardUUID)
	if cardErr != nil {
		return nil, cardErr //nolint:wrapcheck
	}
	if card.Status != domain.VirtualCardActive {
		return nil, fmt.Errorf("processing charge on card %s: %w", args.CardUUID, domain.ErrCardPaused)
	}

	occurredAt := args.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	// Окно лимита считается по календарному месяцу в UTC, независимо от
	// таймзоны в нотификации провайдера.
	occurredAt = occurredAt.UTC()
	monthStart := time.Date(occurredAt.Year(), occurredAt.Month(), 1, 0, 0, 0, 0, time.UTC)

	spent, spentErr := s.expRepo.SumCardCharges(ctx, card.UUID, monthStart)
	if spentErr != nil {
		return nil, spentErr //nolint:wrapcheck
	}
	if spent.Add(args.Amount).GreaterThan(card.MonthlyLimit) {
		return nil, fmt.Errorf("processing charge on card %s: %w", args.CardUUID, domain.ErrCardLimitExceeded)
	}

	collective, collectiveErr := s.collRepo.FindByID(ctx, card.CollectiveID)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}

	var expense *domain.Expense
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		expRepo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		cardUUID := card.UUID
		var createErr error
		expense, createErr = expRepo.CreateExpense(c, repoargs.CreateExpense{
			CollectiveID:     card.CollectiveID,
			PayeeUserID:      collective.CreatedByID,
			Amount:           args.Amount,
			Currency:         card.Currency,
			Description:      args.Description,
			Status:           domain.ExpenseStatusPaid,
			PayoutMethodType: domain.PayoutOther,
			VirtualCardUUID:  &cardUUID,
			OccurredAt:       occurredAt,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		entries, entriesErr := ledger.ExpensePayoutEntries(ledger.ExpensePayoutArgs{
			ExpenseID:  expense.ID,
			FromID:     card.CollectiveID,
			ToID:       s.platformID,
			PlatformID: s.platformID,
			Amount:     args.Amount,
			Currency:   card.Currency,
			PayoutFee:  decimal.Zero,
			Kind:       domain.KindCardCharge,
		})
		if entriesErr != nil {
			return fmt.Errorf("building card charge entries: %w", entriesErr)
		}
		if writeErr := writeLedgerEntries(c, tx, entries); writeErr != nil {
			return writeErr
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityVirtualCardCharge,
			CollectiveID: card.CollectiveID,
			UserID:       collective.CreatedByID,
			Data: activityPayload(map[string]any{
				"cardUuid":  card.UUID,
				"expenseId": expense.ID,
				"amount":    args.Amount,
			}),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("processing charge on card %s: %w", args.CardUUID, txErr)
	}
	return expense, nil
}
