package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/internal/service/mocks"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
	uowmocks "github.com/ralexrdz/opencollective-api/pkg/uow/mocks"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockOrderRepo    *mocks.MockOrderRepository
	mockCollRepo     *mocks.MockCollectiveRepository
	mockUserRepo     *mocks.MockUserRepository
	mockTransRepo    *mocks.MockTransactionRepository
	mockActivityRepo *mocks.MockActivityRepository
	mockFx           *mocks.MockFxProvider
	orderService     *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockCollRepo = mocks.NewMockCollectiveRepository(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockTransRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockActivityRepo = mocks.NewMockActivityRepository(mockCtrl)
	s.mockFx = mocks.NewMockFxProvider(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CollectiveRepoName)).
		Return(s.mockCollRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ActivityRepoName)).
		Return(s.mockActivityRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW, s.mockFx, testPlatformID)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TestContribute() {
	hostID := int64(2)
	collective := domain.Collective{
		ID:             5,
		Slug:           "open-maps",
		Currency:       "USD",
		HostID:         &hostID,
		HostFeePercent: decimal.NewFromInt(10),
	}
	user := domain.User{ID: 42, CollectiveID: 33}

	argsOneOff := ContributeArgs{
		UserID:         user.ID,
		CollectiveSlug: collective.Slug,
		Amount:         decimal.NewFromInt(100),
		Currency:       "USD",
		PlatformTip:    decimal.NewFromInt(5),
		Interval:       domain.OrderIntervalOneOff,
		Description:    "one time",
	}
	argsMonthly := argsOneOff
	argsMonthly.Interval = domain.OrderIntervalMonth
	argsMonthly.Description = "monthly"

	s.mockCollRepo.EXPECT().FindBySlug(gomock.Any(), collective.Slug).Return(&collective, nil).Times(2)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil).Times(2)
	s.mockFx.EXPECT().GetRate(gomock.Any(), "USD", "USD").Return(decimal.NewFromInt(1), nil).Times(2)

	s.mockOrderRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateOrder{})).
		DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
			order := domain.Order{
				ID:           1,
				UserID:       args.UserID,
				CollectiveID: args.CollectiveID,
				Amount:       args.Amount,
				Currency:     args.Currency,
				PlatformTip:  args.PlatformTip,
				Interval:     args.Interval,
				Status:       args.Status,
				NextChargeAt: args.NextChargeAt,
			}
			if args.Interval == domain.OrderIntervalMonth {
				// Подписка остается активной с датой следующего списания.
				s.Equal(domain.OrderStatusActive, args.Status)
				s.Require().NotNil(args.NextChargeAt)
				s.True(args.NextChargeAt.After(time.Now()))
			} else {
				s.Equal(domain.OrderStatusPaid, args.Status)
				s.Nil(args.NextChargeAt)
			}
			return &order, nil
		}).Times(2)

	s.mockTransRepo.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entries []domain.Transaction, _ repoargs.BatchExecQueryRow) {
			sum := decimal.Zero
			for _, entry := range entries {
				sum = sum.Add(entry.Amount)
				s.Equal(entries[0].GroupID, entry.GroupID)
			}
			s.True(sum.IsZero())
		}).Times(2)

	s.mockActivityRepo.EXPECT().
		CreateActivity(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateActivity{})).
		Return(&domain.Activity{ID: 1}, nil).Times(2)

	order, err := s.orderService.Contribute(context.Background(), argsOneOff)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, order.Status)

	order, err = s.orderService.Contribute(context.Background(), argsMonthly)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusActive, order.Status)
}

func (s *OrderServiceTestSuite) TestCancel() {
	order := domain.Order{
		ID:           1,
		UserID:       42,
		CollectiveID: 5,
		Interval:     domain.OrderIntervalMonth,
		Status:       domain.OrderStatusActive,
	}
	cancelled := order
	cancelled.Status = domain.OrderStatusCancelled

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(&order, nil).Times(2)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), order.ID, domain.OrderStatusCancelled).
		Return(&cancelled, nil)
	s.mockActivityRepo.EXPECT().
		CreateActivity(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateActivity{})).
		Return(&domain.Activity{ID: 1}, nil)

	got, err := s.orderService.Cancel(context.Background(), order.UserID, order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, got.Status)

	// Чужой заказ отменить нельзя.
	_, err = s.orderService.Cancel(context.Background(), 999, order.ID)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *OrderServiceTestSuite) TestCancelNotActive() {
	// Разовые и завершенные заказы отменять нечего: статус уже не ACTIVE.
	for _, order := range []domain.Order{
		{ID: 2, UserID: 42, CollectiveID: 5, Interval: domain.OrderIntervalOneOff, Status: domain.OrderStatusPaid},
		{ID: 3, UserID: 42, CollectiveID: 5, Interval: domain.OrderIntervalMonth, Status: domain.OrderStatusError},
		{ID: 4, UserID: 42, CollectiveID: 5, Interval: domain.OrderIntervalMonth, Status: domain.OrderStatusCancelled},
	} {
		order := order
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(&order, nil)

		_, err := s.orderService.Cancel(context.Background(), order.UserID, order.ID)
		s.Require().ErrorIs(err, domain.ErrOrderNotActive)
	}
}

func (s *OrderServiceTestSuite) TestChargeDueRecurring() {
	collective := domain.Collective{ID: 5, Currency: "USD"}
	user := domain.User{ID: 42, CollectiveID: 33}

	next := time.Now().AddDate(0, -1, 0)
	due := []domain.Order{
		{
			ID:           1,
			UserID:       user.ID,
			CollectiveID: collective.ID,
			Amount:       decimal.NewFromInt(25),
			Currency:     "USD",
			Interval:     domain.OrderIntervalMonth,
			Status:       domain.OrderStatusActive,
			NextChargeAt: &next,
		},
	}

	s.mockOrderRepo.EXPECT().
		GetDueRecurring(gomock.Any(), gomock.Any(), recurringBatchLimit).
		Return(due, nil)
	s.mockCollRepo.EXPECT().FindByID(gomock.Any(), collective.ID).Return(&collective, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil)
	s.mockFx.EXPECT().GetRate(gomock.Any(), "USD", "USD").Return(decimal.NewFromInt(1), nil)

	s.mockOrderRepo.EXPECT().
		UpdateCharge(gomock.Any(), gomock.AssignableToTypeOf(repoargs.OrderChargeUpdate{})).
		DoAndReturn(func(_ context.Context, args repoargs.OrderChargeUpdate) (*domain.Order, error) {
			s.Equal(due[0].ID, args.ID)
			s.Equal(domain.OrderStatusActive, args.Status)
			s.Require().NotNil(args.NextChargeAt)
			s.True(args.NextChargeAt.After(time.Now()))
			return &due[0], nil
		})
	s.mockTransRepo.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), gomock.Any())
	s.mockActivityRepo.EXPECT().
		CreateActivity(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateActivity{})).
		Return(&domain.Activity{ID: 1}, nil)

	charged, err := s.orderService.ChargeDueRecurring(context.Background())
	s.Require().NoError(err)
	s.Equal(1, charged)
}
