package payout

import (
	"context"
	"fmt"

	"github.com/ralexrdz/opencollective-api/internal/service"
	"github.com/ralexrdz/opencollective-api/internal/transport/payout/client"

	"github.com/shopspring/decimal"

	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/transport/payout/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, "", logger)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoExpenses Тест на случай, когда нет расходов для выплаты.
func (s *ProcessorTestSuite) TestProcess_NoExpenses() {
	s.mockService.EXPECT().
		ExpensesForPayout(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.Expense{}, nil)

	err := s.processor.process(context.Background())

	s.ErrorIs(err, ErrNoExpenses)
}

// TestProcess_ErrorPayoutReq Тест на случай, когда провайдер отвечает ошибками.
func (s *ProcessorTestSuite) TestProcess_ErrorPayoutReq() {
	testExpenses := []domain.Expense{
		{
			ID:               1,
			CollectiveID:     5,
			PayeeUserID:      100,
			Amount:           decimal.NewFromInt(75),
			Currency:         "USD",
			Status:           domain.ExpenseStatusProcessing,
			PayoutMethodType: domain.PayoutPayPal,
			PayoutDetails:    "dev@example.com",
		}, {
			ID:               2,
			CollectiveID:     5,
			PayeeUserID:      101,
			Amount:           decimal.NewFromInt(130),
			Currency:         "USD",
			Status:           domain.ExpenseStatusProcessing,
			PayoutMethodType: domain.PayoutBankAccount,
			PayoutDetails:    "DE89370400440532013000",
		},
	}

	s.mockService.EXPECT().
		ExpensesForPayout(gomock.Any(), s.processor.limitPerIteration).
		Return(testExpenses, nil)

	internalError := client.NewStatusCodeError(500)
	rejectedError := client.NewStatusCodeError(422)

	s.mockHTTPClient.EXPECT().
		SubmitPayout(gomock.Any(), matchExpenseID(1)).
		Return(nil, internalError)
	s.mockHTTPClient.EXPECT().
		SubmitPayout(gomock.Any(), matchExpenseID(2)).
		Return(nil, rejectedError)

	s.mockService.EXPECT().
		UpdatePayoutResults(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, results []service.PayoutResultArgs) {
			// Убеждаемся что ошибки были отправлены в сервис
			s.Require().Len(results, 2)
			s.Error(results[0].Error) //nolint:testifylint
			s.Error(results[1].Error) //nolint:testifylint
		}).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)

	s.NoError(err)
}

// TestProcess_Success Тест на успешную выплату расходов.
func (s *ProcessorTestSuite) TestProcess_Success() {
	testExpenses := []domain.Expense{
		{
			ID:               1,
			Amount:           decimal.NewFromInt(75),
			Currency:         "USD",
			Status:           domain.ExpenseStatusProcessing,
			PayoutMethodType: domain.PayoutPayPal,
			PayoutDetails:    "dev@example.com",
		}, {
			ID:               2,
			Amount:           decimal.NewFromInt(130),
			Currency:         "USD",
			Status:           domain.ExpenseStatusProcessing,
			PayoutMethodType: domain.PayoutBankAccount,
			PayoutDetails:    "DE89370400440532013000",
		},
	}

	payoutResponses := []*client.PayoutResponse{
		{Reference: "po_abc", Fee: decimal.NewFromFloat(0.35)},
		{Reference: "po_def", Fee: decimal.NewFromInt(5)},
	}

	s.mockService.EXPECT().
		ExpensesForPayout(gomock.Any(), s.processor.limitPerIteration).
		Return(testExpenses, nil)

	s.mockHTTPClient.EXPECT().
		SubmitPayout(gomock.Any(), matchExpenseID(1)).
		Return(payoutResponses[0], nil)
	s.mockHTTPClient.EXPECT().
		SubmitPayout(gomock.Any(), matchExpenseID(2)).
		Return(payoutResponses[1], nil)

	// Ожидаем фиксацию результатов с правильными данными.
	s.mockService.EXPECT().
		UpdatePayoutResults(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, results []service.PayoutResultArgs) {
			s.Require().Len(results, 2)

			var foundFirst bool
			var foundSecond bool

			for _, result := range results {
				if result.ExpenseID == 1 {
					s.NoError(result.Error) //nolint:testifylint
					s.Equal("po_abc", result.Reference)
					s.True(result.Fee.Equal(decimal.NewFromFloat(0.35)))
					foundFirst = true
				}

				if result.ExpenseID == 2 {
					s.NoError(result.Error) //nolint:testifylint
					s.Equal("po_def", result.Reference)
					s.True(result.Fee.Equal(decimal.NewFromInt(5)))
					foundSecond = true
				}
			}

			s.Truef(foundFirst, "Не найден результат для расхода с ID=%d", 1)
			s.Truef(foundSecond, "Не найден результат для расхода с ID=%d", 2)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_RetryAfterTooManyRequests Тест на повторную отправку после 429.
func (s *ProcessorTestSuite) TestProcess_RetryAfterTooManyRequests() {
	testExpenses := []domain.Expense{
		{
			ID:               1,
			Amount:           decimal.NewFromInt(75),
			Currency:         "USD",
			Status:           domain.ExpenseStatusProcessing,
			PayoutMethodType: domain.PayoutPayPal,
			PayoutDetails:    "dev@example.com",
		},
	}

	s.mockService.EXPECT().
		ExpensesForPayout(gomock.Any(), s.processor.limitPerIteration).
		Return(testExpenses, nil)

	gomock.InOrder(
		s.mockHTTPClient.EXPECT().
			SubmitPayout(gomock.Any(), matchExpenseID(1)).
			Return(nil, client.NewTooManyRequestError(10*time.Millisecond)),
		s.mockHTTPClient.EXPECT().
			SubmitPayout(gomock.Any(), matchExpenseID(1)).
			Return(&client.PayoutResponse{Reference: "po_retry", Fee: decimal.Zero}, nil),
	)

	s.mockService.EXPECT().
		UpdatePayoutResults(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, results []service.PayoutResultArgs) {
			s.Require().Len(results, 1)
			s.NoError(results[0].Error) //nolint:testifylint
			s.Equal("po_retry", results[0].Reference)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// expenseIDMatcher матчер запроса выплаты по идентификатору расхода.
type expenseIDMatcher struct {
	id int64
}

func matchExpenseID(id int64) gomock.Matcher {
	return expenseIDMatcher{id: id}
}

func (m expenseIDMatcher) Matches(x interface{}) bool {
	request, ok := x.(client.PayoutRequest)
	return ok && request.ExpenseID == m.id
}

func (m expenseIDMatcher) String() string {
	return fmt.Sprintf("payout request for expense %d", m.id)
}
