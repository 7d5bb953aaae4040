package api

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/logger"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/mocks"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/testutils"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/tokens"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockExpenseService *mocks.MockExpenseServicer
	jwtSecret          []byte
	adminJWTToken      string
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockExpenseService = mocks.NewMockExpenseServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		ExpenseService: s.mockExpenseService,
		JWTSecretKey:   s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router

	token, tokenErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.adminJWTToken = token
}

func (s *ExpenseHandlerTestSuite) TestSubmit() {
	validPayload := []byte(`{
		"amount": 75,
		"currency": "USD",
		"description": "conference travel",
		"payoutMethodType": "PAYPAL",
		"payoutDetails": "dev@example.com"
	}`)
	badMethodPayload := []byte(`{
		"amount": 75,
		"currency": "USD",
		"description": "conference travel",
		"payoutMethodType": "CASH"
	}`)

	s.mockExpenseService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(&domain.Expense{
			ID:               1,
			CollectiveID:     5,
			PayeeUserID:      1,
			Amount:           decimal.NewFromInt(75),
			Currency:         "USD",
			Status:           domain.ExpenseStatusPending,
			PayoutMethodType: domain.PayoutPayPal,
			CreatedAt:        time.Now(),
		}, nil)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
		jwtToken   string
	}{
		{name: "all ok", payload: validPayload, wantStatus: http.StatusCreated, jwtToken: s.adminJWTToken},
		{name: "unknown payout method", payload: badMethodPayload, wantStatus: http.StatusUnprocessableEntity, jwtToken: s.adminJWTToken},
		{name: "not authorized", payload: validPayload, wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/collectives/open-maps/expenses",
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *ExpenseHandlerTestSuite) TestReview() {
	approved := domain.Expense{
		ID:     10,
		Status: domain.ExpenseStatusApproved,
		Amount: decimal.NewFromInt(75),
	}

	s.mockExpenseService.EXPECT().Approve(gomock.Any(), int64(10), int64(1)).Return(&approved, nil)
	s.mockExpenseService.EXPECT().Approve(gomock.Any(), int64(11), int64(1)).
		Return(nil, fmt.Errorf("authorizing admin for collective 5: %w", domain.ErrForbidden))
	s.mockExpenseService.EXPECT().Approve(gomock.Any(), int64(12), int64(1)).
		Return(nil, domain.NewStatusTransitionError(domain.ExpenseStatusPaid, domain.ExpenseStatusApproved))
	s.mockExpenseService.EXPECT().Schedule(gomock.Any(), int64(13), int64(1)).
		Return(nil, fmt.Errorf("scheduling expense 13: %w", domain.ErrNotEnoughBalance))

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "approve ok", url: "/expenses/10/approve", wantStatus: http.StatusOK},
		{name: "not an admin", url: "/expenses/11/approve", wantStatus: http.StatusForbidden},
		{name: "illegal transition", url: "/expenses/12/approve", wantStatus: http.StatusConflict},
		{name: "not enough balance", url: "/expenses/13/schedule", wantStatus: http.StatusPaymentRequired},
		{name: "garbage id", url: "/expenses/abc/approve", wantStatus: http.StatusNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + t.url,
			}
			res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.adminJWTToken))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *ExpenseHandlerTestSuite) TestQuote() {
	s.mockExpenseService.EXPECT().
		QuoteFee(gomock.Any(), int64(10)).
		Return(decimal.NewFromFloat(3.5), nil)
	s.mockExpenseService.EXPECT().
		QuoteFee(gomock.Any(), int64(999)).
		Return(decimal.Zero, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "all ok", url: "/expenses/10/quote", wantStatus: http.StatusOK},
		{name: "unknown expense", url: "/expenses/999/quote", wantStatus: http.StatusNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + t.url,
			}
			res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.adminJWTToken))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
