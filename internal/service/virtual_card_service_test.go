package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/internal/service/mocks"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
	uowmocks "github.com/ralexrdz/opencollective-api/pkg/uow/mocks"
)

type VirtualCardServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockCardRepo     *mocks.MockVirtualCardRepository
	mockCollRepo     *mocks.MockCollectiveRepository
	mockExpRepo      *mocks.MockExpenseRepository
	mockTransRepo    *mocks.MockTransactionRepository
	mockActivityRepo *mocks.MockActivityRepository
	service          *VirtualCardService
}

func TestVirtualCardServiceSuite(t *testing.T) {
	suite.Run(t, new(VirtualCardServiceTestSuite))
}

func (s *VirtualCardServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockCardRepo = mocks.NewMockVirtualCardRepository(mockCtrl)
	s.mockCollRepo = mocks.NewMockCollectiveRepository(mockCtrl)
	s.mockExpRepo = mocks.NewMockExpenseRepository(mockCtrl)
	s.mockTransRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockActivityRepo = mocks.NewMockActivityRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.VirtualCardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CollectiveRepoName)).
		Return(s.mockCollRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ExpenseRepoName)).
		Return(s.mockExpRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.VirtualCardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ExpenseRepoName)).
		Return(s.mockExpRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ActivityRepoName)).
		Return(s.mockActivityRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	service, servErr := NewVirtualCardService(s.mockUOW, testPlatformID)
	s.Require().NoError(servErr)
	s.service = service
}

func (s *VirtualCardServiceTestSuite) cardFixture(status domain.VirtualCardStatusType) (domain.VirtualCard, domain.Collective) {
	collective := domain.Collective{
		ID:          5,
		Slug:        "open-maps",
		Currency:    "USD",
		CreatedByID: 100,
	}
	card := domain.VirtualCard{
		UUID:         uuid.New(),
		CollectiveID: collective.ID,
		Name:         "Ops card",
		Last4:        "4242",
		MonthlyLimit: decimal.NewFromInt(500),
		Currency:     collective.Currency,
		Status:       status,
	}
	return card, collective
}

func (s *VirtualCardServiceTestSuite) TestCreate() {
	_, collective := s.cardFixture(domain.VirtualCardActive)

	s.mockCollRepo.EXPECT().FindBySlug(gomock.Any(), collective.Slug).Return(&collective, nil).Times(2)

	s.mockCardRepo.EXPECT().
		CreateVirtualCard(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateVirtualCard{})).
		DoAndReturn(func(_ context.Context, args repoargs.CreateVirtualCard) (*domain.VirtualCard, error) {
			// Валюта карты наследуется от коллектива.
			s.Equal(collective.Currency, args.Currency)
			s.Equal(collective.ID, args.CollectiveID)
			return &domain.VirtualCard{
				UUID:         args.UUID,
				CollectiveID: args.CollectiveID,
				Name:         args.Name,
				Last4:        args.Last4,
				MonthlyLimit: args.MonthlyLimit,
				Currency:     args.Currency,
				Status:       domain.VirtualCardActive,
			}, nil
		})
	s.mockActivityRepo.EXPECT().
		CreateActivity(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateActivity{})).
		Return(&domain.Activity{ID: 1}, nil)

	args := CreateVirtualCardArgs{
		CollectiveSlug: collective.Slug,
		UserID:         collective.CreatedByID,
		Name:           "Ops card",
		Last4:          "4242",
		MonthlyLimit:   decimal.NewFromInt(500),
	}

	card, err := s.service.Create(context.Background(), args)
	s.Require().NoError(err)
	s.Equal(domain.VirtualCardActive, card.Status)

	args.UserID = 999
	_, err = s.service.Create(context.Background(), args)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *VirtualCardServiceTestSuite) TestPause() {
	card, collective := s.cardFixture(domain.VirtualCardActive)
	paused := card
	paused.Status = domain.VirtualCardPaused

	s.mockCardRepo.EXPECT().FindByUUID(gomock.Any(), card.UUID).Return(&card, nil).Times(2)
	s.mockCollRepo.EXPECT().FindByID(gomock.Any(), collective.ID).Return(&collective, nil).Times(2)
	s.mockCardRepo.EXPECT().
		UpdateStatus(gomock.Any(), card.UUID, domain.VirtualCardPaused).
		Return(&paused, nil)

	got, err := s.service.Pause(context.Background(), card.UUID, collective.CreatedByID)
	s.Require().NoError(err)
	s.Equal(domain.VirtualCardPaused, got.Status)

	_, err = s.service.Pause(context.Background(), card.UUID, 999)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *VirtualCardServiceTestSuite) TestProcessCharge() {
	card, collective := s.cardFixture(domain.VirtualCardActive)
	occurredAt := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	s.mockCardRepo.EXPECT().FindByUUID(gomock.Any(), card.UUID).Return(&card, nil)
	s.mockCollRepo.EXPECT().FindByID(gomock.Any(), collective.ID).Return(&collective, nil)

	// Списания считаются с начала календарного месяца.
	s.mockExpRepo.EXPECT().
		SumCardCharges(gomock.Any(), card.UUID, monthStart).
		Return(decimal.NewFromInt(100), nil)

	createdExpense := domain.Expense{
		ID:           7,
		CollectiveID: collective.ID,
		Amount:       decimal.NewFromInt(50),
		Currency:     card.Currency,
		Status:       domain.ExpenseStatusPaid,
	}

	s.mockExpRepo.EXPECT().
		CreateExpense(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateExpense{})).
		DoAndReturn(func(_ context.Context, args repoargs.CreateExpense) (*domain.Expense, error) {
			// Карточное списание уже проведено провайдером: расход сразу PAID.
			s.Equal(domain.ExpenseStatusPaid, args.Status)
			s.Equal(domain.PayoutOther, args.PayoutMethodType)
			s.Require().NotNil(args.VirtualCardUUID)
			s.Equal(card.UUID, *args.VirtualCardUUID)
			s.True(args.OccurredAt.Equal(occurredAt))
			return &createdExpense, nil
		})

	s.mockTransRepo.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entries []domain.Transaction, _ repoargs.BatchExecQueryRow) {
			s.Require().Len(entries, 2)
			sum := decimal.Zero
			for _, entry := range entries {
				sum = sum.Add(entry.Amount)
				s.Equal(domain.KindCardCharge, entry.Kind)
			}
			s.True(sum.IsZero())
		})
	s.mockActivityRepo.EXPECT().
		CreateActivity(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateActivity{})).
		Return(&domain.Activity{ID: 1}, nil)

	expense, err := s.service.ProcessCharge(context.Background(), CardChargeArgs{
		CardUUID:    card.UUID,
		Amount:      decimal.NewFromInt(50),
		Description: "SaaS subscription",
		OccurredAt:  occurredAt,
	})
	s.Require().NoError(err)
	s.Equal(domain.ExpenseStatusPaid, expense.Status)
}

func (s *VirtualCardServiceTestSuite) TestProcessChargeWindowUTC() {
	card, _ := s.cardFixture(domain.VirtualCardActive)

	// 1 апреля 01:30 по Москве — это еще 31 марта по UTC: окно лимита
	// должно начинаться с 1 марта, а не с 1 апреля.
	msk := time.FixedZone("MSK", 3*60*60)
	occurredAt := time.Date(2025, time.April, 1, 1, 30, 0, 0, msk)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	s.mockCardRepo.EXPECT().FindByUUID(gomock.Any(), card.UUID).Return(&card, nil)
	s.mockExpRepo.EXPECT().
		SumCardCharges(gomock.Any(), card.UUID, monthStart).
		Return(decimal.NewFromInt(480), nil)

	_, err := s.service.ProcessCharge(context.Background(), CardChargeArgs{
		CardUUID:   card.UUID,
		Amount:     decimal.NewFromInt(50),
		OccurredAt: occurredAt,
	})
	s.Require().ErrorIs(err, domain.ErrCardLimitExceeded)
}

func (s *VirtualCardServiceTestSuite) TestProcessChargePaused() {
	card, _ := s.cardFixture(domain.VirtualCardPaused)

	s.mockCardRepo.EXPECT().FindByUUID(gomock.Any(), card.UUID).Return(&card, nil)

	_, err := s.service.ProcessCharge(context.Background(), CardChargeArgs{
		CardUUID: card.UUID,
		Amount:   decimal.NewFromInt(50),
	})
	s.Require().ErrorIs(err, domain.ErrCardPaused)
}

func (s *VirtualCardServiceTestSuite) TestProcessChargeLimitExceeded() {
	card, _ := s.cardFixture(domain.VirtualCardActive)
	occurredAt := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	s.mockCardRepo.EXPECT().FindByUUID(gomock.Any(), card.UUID).Return(&card, nil)

	// Лимит 500, потрачено 480: списание в 50 не проходит.
	s.mockExpRepo.EXPECT().
		SumCardCharges(gomock.Any(), card.UUID, monthStart).
		Return(decimal.NewFromInt(480), nil)

	_, err := s.service.ProcessCharge(context.Background(), CardChargeArgs{
		CardUUID:   card.UUID,
		Amount:     decimal.NewFromInt(50),
		OccurredAt: occurredAt,
	})
	s.Require().ErrorIs(err, domain.ErrCardLimitExceeded)
}
