package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/ledger"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

// DefaultTransactionListLimit — лимит выборки леджера по умолчанию.
const DefaultTransactionListLimit uint = 100

type TransactionService struct {
	uow       uow.UOW
	transRepo TransactionRepository
	collRepo  CollectiveRepository
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	transRepo, transRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	collRepo, collRepoErr :=
		uow.GetRepositoryAs[CollectiveRepository](u, uow.RepositoryName(repoargs.CollectiveRepoName))
	if collRepoErr != nil {
		return nil, collRepoErr
	}
	return &TransactionService{uow: u, transRepo: transRepo, collRepo: collRepo}, nil
}

// GetByAccountSlug возвращает строки леджера аккаунта, новые первыми.
func (s *TransactionService) GetByAccountSlug(
	ctx context.Context,
	slug string,
	limit uint,
) ([]domain.Transaction, error) {
	if limit == 0 {
		limit = DefaultTransactionListLimit
	}
	collective, collectiveErr := s.collRepo.FindBySlug(ctx, slug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}
	transactions, err := s.transRepo.GetByAccountID(ctx, collective.ID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// Refund сторнирует транзакционную группу: для каждой исходной строки
// создается зеркальная с обратным направлением, помеченная как возврат.
// Доступно админу любого аккаунта, затронутого группой.
//
// Группа сторнируется не более одного раза: повторный вызов (и попытка
// сторнировать саму зеркальную группу) возвращает domain.ErrAlreadyRefunded.
// От гонки двух параллельных рефандов страхует уникальный индекс по
// refund_of_id, он проявится как domain.ErrDuplicateKey при вставке.
func (s *TransactionService) Refund(
	ctx context.Context,
	groupID uuid.UUID,
	userID int64,
) ([]domain.Transaction, error) {
	original, originalErr := s.transRepo.GetByGroupID(ctx, groupID)
	if originalErr != nil {
		return nil, originalErr //nolint:wrapcheck
	}
	if original[0].IsRefund {
		return nil, fmt.Errorf("refunding group %s: %w", groupID, domain.ErrAlreadyRefunded)
	}

	refunded, refundedErr := s.transRepo.GroupHasRefund(ctx, groupID)
	if refundedErr != nil {
		return nil, refundedErr //nolint:wrapcheck
	}
	if refunded {
		return nil, fmt.Errorf("refunding group %s: %w", groupID, domain.ErrAlreadyRefunded)
	}

	if authErr := s.authorizeRefund(ctx, original, userID); authErr != nil {
		return nil, authErr
	}

	entries, entriesErr := ledger.RefundEntries(original)
	if entriesErr != nil {
		return nil, fmt.Errorf("building refund entries for group %s: %w", groupID, entriesErr)
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if writeErr := writeLedgerEntries(c, tx, entries); writeErr != nil {
			return writeErr
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityTransactionRefunded,
			CollectiveID: refundSubjectID(original),
			UserID:       userID,
			Data:         activityPayload(map[string]any{"groupId": groupID}),
		})
	})
	if txErr != nil {
		return nil, fmt.Errorf("refunding group %s: %w", groupID, txErr)
	}
	return entries, nil
}

// refundSubjectID выбирает аккаунт для записи активности: получатель
// кредита основной пары, либо первый аккаунт группы.
func refundSubjectID(original []domain.Transaction) int64 {
	for _, t := range original {
		if t.Kind == domain.KindContribution && t.Type == domain.TransactionCredit {
			return t.AccountID
		}
	}
	return original[0].AccountID
}

func (s *TransactionService) authorizeRefund(
	ctx context.Context,
	original []domain.Transaction,
	userID int64,
) error {
	seen := make(map[int64]struct{}, len(original))
	for _, t := range original {
		if _, ok := seen[t.AccountID]; ok {
			continue
		}
		seen[t.AccountID] = struct{}{}

		account, accountErr := s.collRepo.FindByID(ctx, t.AccountID)
		if accountErr != nil {
			return accountErr //nolint:wrapcheck
		}
		if account.CreatedByID == userID {
			return nil
		}
	}
	return fmt.Errorf("authorizing refund: %w", domain.ErrForbidden)
}
