package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/logger"
	"github.com/ralexrdz/opencollective-api/internal/service"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/mocks"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/testutils"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/tokens"
)

const testWebhookSecret = "whsec-test"

type VirtualCardHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCardService *mocks.MockVirtualCardServicer
	jwtSecret       []byte
	adminJWTToken   string
}

func TestVirtualCardHandlerSuite(t *testing.T) {
	suite.Run(t, new(VirtualCardHandlerTestSuite))
}

func (s *VirtualCardHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockCardService = mocks.NewMockVirtualCardServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		VirtualCardService: s.mockCardService,
		JWTSecretKey:       s.jwtSecret,
		CardWebhookSecret:  testWebhookSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router

	token, tokenErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.adminJWTToken = token
}

func (s *VirtualCardHandlerTestSuite) TestProcessCharge() {
	activeCardUUID := uuid.New()
	pausedCardUUID := uuid.New()
	exhaustedCardUUID := uuid.New()

	chargePayload := func(cardUUID uuid.UUID) []byte {
		return fmt.Appendf(nil, `{"cardUuid": %q, "amount": 50, "description": "SaaS"}`, cardUUID)
	}

	s.mockCardService.EXPECT().
		ProcessCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CardChargeArgs) (*domain.Expense, error) {
			s.Equal(activeCardUUID, args.CardUUID)
			s.True(args.Amount.Equal(decimal.NewFromInt(50)))

			return &domain.Expense{
				ID:               7,
				Amount:           args.Amount,
				Currency:         "USD",
				Status:           domain.ExpenseStatusPaid,
				PayoutMethodType: domain.PayoutOther,
				CreatedAt:        time.Now(),
			}, nil
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		secret     string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    chargePayload(activeCardUUID),
			secret:     testWebhookSecret,
			wantStatus: http.StatusCreated,
		}, {
			name:       "wrong secret",
			payload:    chargePayload(activeCardUUID),
			secret:     "nope",
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "missing secret",
			payload:    chargePayload(activeCardUUID),
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "negative amount",
			payload:    []byte(fmt.Sprintf(`{"cardUuid": %q, "amount": -50}`, activeCardUUID)),
			secret:     testWebhookSecret,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "broken json",
			payload:    []byte(`{"cardUuid"`),
			secret:     testWebhookSecret,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + CardChargesWebhookRoute,
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.secret != "" {
				reqOpts = append(reqOpts, testutils.WithHeader(webhookSecretHeader, t.secret))
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

	// Отклоненные сервисом списания отдаются провайдеру как 422.
	s.mockCardService.EXPECT().
		ProcessCharge(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("processing charge on card %s: %w", pausedCardUUID, domain.ErrCardPaused))
	s.mockCardService.EXPECT().
		ProcessCharge(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("processing charge on card %s: %w", exhaustedCardUUID, domain.ErrCardLimitExceeded))

	for _, cardUUID := range []uuid.UUID{pausedCardUUID, exhaustedCardUUID} {
		args := testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    RouteGroup + CardChargesWebhookRoute,
			Body:   bytes.NewReader(chargePayload(cardUUID)),
		}
		res, err := testutils.MakeRequest(args,
			testutils.WithHeader(webhookSecretHeader, testWebhookSecret),
			testutils.WithHeader("Content-Type", "application/json"),
		)
		s.Require().NoError(err)
		s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	}
}

func (s *VirtualCardHandlerTestSuite) TestCreate() {
	validPayload := []byte(`{"name": "infra", "last4": "4242", "monthlyLimit": 500}`)
	badLast4Payload := []byte(`{"name": "infra", "last4": "42", "monthlyLimit": 500}`)

	s.mockCardService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateVirtualCardArgs) (*domain.VirtualCard, error) {
			s.Equal("open-maps", args.CollectiveSlug)
			s.Equal(int64(1), args.UserID)
			s.Equal("4242", args.Last4)

			return &domain.VirtualCard{
				UUID:         uuid.New(),
				CollectiveID: 5,
				Name:         args.Name,
				Last4:        args.Last4,
				MonthlyLimit: args.MonthlyLimit,
				Currency:     "USD",
				Status:       domain.VirtualCardActive,
				CreatedAt:    time.Now(),
			}, nil
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		token      string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			token:      s.adminJWTToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "bad last4",
			payload:    badLast4Payload,
			token:      s.adminJWTToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "no token",
			payload:    validPayload,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/collectives/open-maps/virtual-cards",
				Body:   bytes.NewReader(t.payload),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithBearerToken(t.token),
				testutils.WithHeader("Content-Type", "application/json"),
			)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}

	s.mockCardService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("creating virtual card: %w", domain.ErrForbidden))

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/collectives/open-maps/virtual-cards",
		Body:   bytes.NewReader(validPayload),
	},
		testutils.WithBearerToken(s.adminJWTToken),
		testutils.WithHeader("Content-Type", "application/json"),
	)
	s.Require().NoError(err)
	s.Equal(http.StatusForbidden, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *VirtualCardHandlerTestSuite) TestPause() {
	cardUUID := uuid.New()

	s.mockCardService.EXPECT().
		Pause(gomock.Any(), cardUUID, int64(1)).
		Return(&domain.VirtualCard{
			UUID:         cardUUID,
			CollectiveID: 5,
			Name:         "infra",
			Last4:        "4242",
			MonthlyLimit: decimal.NewFromInt(500),
			Currency:     "USD",
			Status:       domain.VirtualCardPaused,
			CreatedAt:    time.Now(),
		}, nil)

	cases := []struct {
		name       string
		uuidParam  string
		wantStatus int
	}{
		{
			name:       "all ok",
			uuidParam:  cardUUID.String(),
			wantStatus: http.StatusOK,
		}, {
			// Кривой uuid не должен долетать до сервиса.
			name:       "garbage uuid",
			uuidParam:  "not-a-uuid",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/virtual-cards/" + t.uuidParam + "/pause",
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
