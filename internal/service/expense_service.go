package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/ledger"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

// maxPayoutAttempts — лимит неудачных попыток выплаты, после него расход
// уходит в ERROR.
const maxPayoutAttempts uint = 3

// allowedTransitions описывает машину статусов расхода.
var allowedTransitions = map[domain.ExpenseStatusType][]domain.ExpenseStatusType{
	domain.ExpenseStatusPending:    {domain.ExpenseStatusApproved, domain.ExpenseStatusRejected},
	domain.ExpenseStatusApproved:   {domain.ExpenseStatusScheduled, domain.ExpenseStatusRejected},
	domain.ExpenseStatusScheduled:  {domain.ExpenseStatusProcessing, domain.ExpenseStatusError},
	domain.ExpenseStatusProcessing: {domain.ExpenseStatusPaid, domain.ExpenseStatusScheduled, domain.ExpenseStatusError},
}

func transitionAllowed(from, to domain.ExpenseStatusType) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type ExpenseService struct {
	uow        uow.UOW
	expRepo    ExpenseRepository
	collRepo   CollectiveRepository
	transRepo  TransactionRepository
	userRepo   UserRepository
	quoter     PayoutQuoter
	platformID int64
}

func NewExpenseService(u uow.UOW, quoter PayoutQuoter, platformID int64) (*ExpenseService, error) {
	expRepo, expRepoErr := uow.GetRepositoryAs[ExpenseRepository](u, uow.RepositoryName(repoargs.ExpenseRepoName))
	if expRepoErr != nil {
		return nil, expRepoErr
	}
	collRepo, collRepoErr :=
		uow.GetRepositoryAs[CollectiveRepository](u, uow.RepositoryName(repoargs.CollectiveRepoName))
	if collRepoErr != nil {
		return nil, collRepoErr
	}
	transRepo, transRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &ExpenseService{
		uow:        u,
		expRepo:    expRepo,
		collRepo:   collRepo,
		transRepo:  transRepo,
		userRepo:   userRepo,
		quoter:     quoter,
		platformID: platformID,
	}, nil
}

type SubmitExpenseArgs struct {
	CollectiveSlug   string
	PayeeUserID      int64
	Amount           decimal.Decimal
	Currency         string
	Description      string
	PayoutMethodType domain.PayoutMethodType
	PayoutDetails    string
}

// Submit создает расход в статусе PENDING. Валюта расхода обязана совпадать с
// валютой коллектива: выплаты делаются из его бюджета.
func (s *ExpenseService) Submit(ctx context.Context, args SubmitExpenseArgs) (*domain.Expense, error) {
	collective, collectiveErr := s.collRepo.FindBySlug(ctx, args.CollectiveSlug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}
	if collective.Currency != args.Currency {
		return nil, fmt.Errorf(
			"submitting expense: currency %s does not match collective currency %s: %w",
			args.Currency, collective.Currency, domain.ErrUnknown,
		)
	}

	var expense *domain.Expense
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		expRepo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		expense, createErr = expRepo.CreateExpense(c, repoargs.CreateExpense{
			CollectiveID:     collective.ID,
			PayeeUserID:      args.PayeeUserID,
			Amount:           args.Amount,
			Currency:         args.Currency,
			Description:      args.Description,
			Status:           domain.ExpenseStatusPending,
			PayoutMethodType: args.PayoutMethodType,
			PayoutDetails:    args.PayoutDetails,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityExpenseCreated,
			CollectiveID: collective.ID,
			UserID:       args.PayeeUserID,
			Data: activityPayload(map[string]any{
				"expenseId": expense.ID,
				"amount":    args.Amount,
			}),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("submitting expense: %w", txErr)
	}
	return expense, nil
}

// Approve переводит расход PENDING -> APPROVED. Доступно админу коллектива
// или админу его хоста.
func (s *ExpenseService) Approve(ctx context.Context, expenseID, userID int64) (*domain.Expense, error) {
	return s.review(ctx, expenseID, userID, domain.ExpenseStatusApproved, domain.ActivityExpenseApproved)
}

// Reject переводит расход PENDING/APPROVED -> REJECTED.
func (s *ExpenseService) Reject(ctx context.Context, expenseID, userID int64) (*domain.Expense, error) {
	return s.review(ctx, expenseID, userID, domain.ExpenseStatusRejected, domain.ActivityExpenseRejected)
}

// QuoteFee оценивает комиссию выплаты для расхода: статические тарифы для
// PAYPAL/OTHER, запрос к провайдеру для банковских переводов.
func (s *ExpenseService) QuoteFee(ctx context.Context, expenseID int64) (decimal.Decimal, error) {
	expense, expenseErr := s.expRepo.FindByID(ctx, expenseID)
	if expenseErr != nil {
		return decimal.Zero, expenseErr //nolint:wrapcheck
	}
	return s.quoteFee(ctx, expense)
}

func (s *ExpenseService) quoteFee(ctx context.Context, expense *domain.Expense) (decimal.Decimal, error) {
	if fee, ok := ledger.StaticPayoutFee(expense.PayoutMethodType, expense.Amount); ok {
		return fee, nil
	}
	fee, quoteErr := s.quoter.QuoteFee(ctx, expense.Amount, expense.Currency)
	if quoteErr != nil {
		return decimal.Zero, fmt.Errorf("quoting payout fee for expense %d: %w", expense.ID, quoteErr)
	}
	return fee, nil
}

// Schedule переводит расход APPROVED -> SCHEDULED_FOR_PAYMENT. Перед
// планированием проверяется, что баланс коллектива покрывает сумму вместе с
// оценкой комиссии, иначе domain.ErrNotEnoughBalance.
func (s *ExpenseService) Schedule(ctx context.Context, expenseID, userID int64) (*domain.Expense, error) {
	expense, expenseErr := s.expRepo.FindByID(ctx, expenseID)
	if expenseErr != nil {
		return nil, expenseErr //nolint:wrapcheck
	}
	if !transitionAllowed(expense.Status, domain.ExpenseStatusScheduled) {
		return nil, domain.NewStatusTransitionError(expense.Status, domain.ExpenseStatusScheduled)
	}
	if authErr := s.authorizeAdmin(ctx, expense.CollectiveID, userID); authErr != nil {
		return nil, authErr
	}

	fee, feeErr := s.quoteFee(ctx, expense)
	if feeErr != nil {
		return nil, feeErr
	}

	aggregation, sumErr := s.transRepo.GetAccountBalance(ctx, expense.CollectiveID)
	if sumErr != nil {
		return nil, sumErr //nolint:wrapcheck
	}
	balance := aggregation.CreditAmount.Add(aggregation.DebitAmount)
	if balance.LessThan(expense.Amount.Add(fee)) {
		return nil, fmt.Errorf("scheduling expense %d: %w", expenseID, domain.ErrNotEnoughBalance)
	}

	scheduled, updErr := s.expRepo.UpdateStatus(ctx, repoargs.ExpenseStatusUpdate{
		ID:     expenseID,
		Status: domain.ExpenseStatusScheduled,
	})
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}
	return scheduled, nil
}

// GetByCollectiveSlug возвращает расходы коллектива, новые первыми.
func (s *ExpenseService) GetByCollectiveSlug(ctx context.Context, slug string) ([]domain.Expense, error) {
	collective, collectiveErr := s.collRepo.FindBySlug(ctx, slug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}
	expenses, err := s.expRepo.GetByCollectiveID(ctx, collective.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return expenses, nil
}

// ExpensesForPayout отдает запланированные расходы фоновому обработчику выплат
// и переводит их в PROCESSING, чтобы параллельный проход их не подхватил.
func (s *ExpenseService) ExpensesForPayout(ctx context.Context, limit uint) ([]domain.Expense, error) {
	var claimed []domain.Expense
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		expRepo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		scheduled, schedErr := expRepo.GetForPayout(c, limit, maxPayoutAttempts)
		if schedErr != nil {
			return schedErr //nolint:wrapcheck
		}

		for _, expense := range scheduled {
			processing, updErr := expRepo.UpdateStatus(c, repoargs.ExpenseStatusUpdate{
				ID:     expense.ID,
				Status: domain.ExpenseStatusProcessing,
			})
			if updErr != nil {
				return updErr //nolint:wrapcheck
			}
			claimed = append(claimed, *processing)
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("claiming expenses for payout: %w", txErr)
	}
	return claimed, nil
}

// PayoutResultArgs — результат попытки выплаты одного расхода.
type PayoutResultArgs struct {
	Error     error
	ExpenseID int64
	Fee       decimal.Decimal
	Reference string
}

// UpdatePayoutResults применяет результаты прохода обработчика выплат.
//
// Алгоритм работы:
//  1. Успешные расходы помечаются PAID, для каждого строится и пишется группа
//     строк леджера (дебет коллектива, кредит получателя, пара комиссии).
//  2. Неудачным инкрементируется счетчик попыток; исчерпавшие лимит уходят в ERROR.
//
// Все изменения применяются одной транзакцией.
func (s *ExpenseService) UpdatePayoutResults(ctx context.Context, results []PayoutResultArgs) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		success, failureIDs := splitPayoutResults(results)

		for _, result := range success {
			if err := s.markPaid(c, tx, result); err != nil {
				return err
			}
		}

		if len(failureIDs) > 0 {
			expRepo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			if incErr := expRepo.IncrementErrAttempts(c, failureIDs, maxPayoutAttempts); incErr != nil {
				return incErr //nolint:wrapcheck
			}
		}
		return nil
	})

	if txErr != nil {
		return fmt.Errorf("updating payout results: %w", txErr)
	}
	return nil
}

func splitPayoutResults(results []PayoutResultArgs) ([]PayoutResultArgs, []int64) {
	var success = make([]PayoutResultArgs, 0, len(results))
	var failureIDs = make([]int64, 0, len(results))
	for _, result := range results {
		if result.Error == nil {
			success = append(success, result)
		} else {
			failureIDs = append(failureIDs, result.ExpenseID)
		}
	}
	return success, failureIDs
}

func (s *ExpenseService) markPaid(ctx context.Context, tx uow.TX, result PayoutResultArgs) error {
	expRepo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	expense, paidErr := expRepo.MarkPaid(ctx, repoargs.ExpensePaidUpdate{
		ID:              result.ExpenseID,
		PayoutFee:       result.Fee,
		PayoutReference: result.Reference,
	})
	if paidErr != nil {
		return paidErr //nolint:wrapcheck
	}

	payee, payeeErr := s.userRepo.FindUserByID(ctx, expense.PayeeUserID)
	if payeeErr != nil {
		return payeeErr //nolint:wrapcheck
	}

	entries, entriesErr := ledger.ExpensePayoutEntries(ledger.ExpensePayoutArgs{
		ExpenseID:  expense.ID,
		FromID:     expense.CollectiveID,
		ToID:       payee.CollectiveID,
		PlatformID: s.platformID,
		Amount:     expense.Amount,
		Currency:   expense.Currency,
		PayoutFee:  result.Fee,
	})
	if entriesErr != nil {
		return fmt.Errorf("building payout entries: %w", entriesErr)
	}

	if writeErr := writeLedgerEntries(ctx, tx, entries); writeErr != nil {
		return writeErr
	}

	return recordActivity(ctx, tx, repoargs.CreateActivity{
		Type:         domain.ActivityExpensePaid,
		CollectiveID: expense.CollectiveID,
		UserID:       expense.PayeeUserID,
		Data: activityPayload(map[string]any{
			"expenseId": expense.ID,
			"reference": result.Reference,
		}),
	})
}

// review выполняет Approve/Reject с проверкой прав и машины статусов.
func (s *ExpenseService) review(
	ctx context.Context,
	expenseID int64,
	userID int64,
	to domain.ExpenseStatusType,
	activityType domain.ActivityType,
) (*domain.Expense, error) {
	expense, expenseErr := s.expRepo.FindByID(ctx, expenseID)
	if expenseErr != nil {
		return nil, expenseErr //nolint:wrapcheck
	}
	if !transitionAllowed(expense.Status, to) {
		return nil, domain.NewStatusTransitionError(expense.Status, to)
	}
	if authErr := s.authorizeAdmin(ctx, expense.CollectiveID, userID); authErr != nil {
		return nil, authErr
	}

	var reviewed *domain.Expense
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		expRepo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		reviewed, updErr = expRepo.UpdateStatus(c, repoargs.ExpenseStatusUpdate{ID: expenseID, Status: to})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         activityType,
			CollectiveID: expense.CollectiveID,
			UserID:       userID,
			Data:         activityPayload(map[string]any{"expenseId": expenseID}),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("reviewing expense %d: %w", expenseID, txErr)
	}
	return reviewed, nil
}

// authorizeAdmin пропускает админа коллектива и админа его хоста.
func (s *ExpenseService) authorizeAdmin(ctx context.Context, collectiveID, userID int64) error {
	collective, collectiveErr := s.collRepo.FindByID(ctx, collectiveID)
	if collectiveErr != nil {
		return collectiveErr //nolint:wrapcheck
	}
	if collective.CreatedByID == userID {
		return nil
	}
	if collective.HostID != nil {
		host, hostErr := s.collRepo.FindByID(ctx, *collective.HostID)
		if hostErr != nil {
			return hostErr //nolint:wrapcheck
		}
		if host.CreatedByID == userID {
			return nil
		}
	}
	return fmt.Errorf("authorizing admin for collective %d: %w", collectiveID, domain.ErrForbidden)
}
