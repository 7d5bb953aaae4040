package fxrates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestGetRate() {
	type tcase struct {
		name           string
		quote          string
		httpStatus     int
		retryAfter     string
		wantResponse   *Response
		wantErrType    error
		wantRetryAfter time.Duration
		wantPlainErr   bool
	}

	cases := []tcase{
		{
			name:       "valid request",
			quote:      "EUR",
			httpStatus: http.StatusOK,
			wantResponse: &Response{
				Base:  "USD",
				Quote: "EUR",
				Rate:  decimal.NewFromFloat(0.92),
			},
		}, {
			name:           "too many requests with retry header",
			quote:          "GBP",
			httpStatus:     http.StatusTooManyRequests,
			retryAfter:     "30",
			wantErrType:    new(TooManyRequestError),
			wantRetryAfter: 30 * time.Second,
		}, {
			// Значение вне диапазона заменяется дефолтными 60 секундами.
			name:           "too many requests with bogus retry header",
			quote:          "JPY",
			httpStatus:     http.StatusTooManyRequests,
			retryAfter:     "100500",
			wantErrType:    new(TooManyRequestError),
			wantRetryAfter: 60 * time.Second,
		}, {
			name:        "internal error",
			quote:       "CHF",
			httpStatus:  http.StatusInternalServerError,
			wantErrType: new(StatusCodeError),
		}, {
			name:       "non-positive rate",
			quote:      "MXN",
			httpStatus: http.StatusOK,
			wantResponse: &Response{
				Base:  "USD",
				Quote: "MXN",
				Rate:  decimal.Zero,
			},
			wantPlainErr: true,
		},
	}

	// хендлер для тестового сервера. По валюте котировки в пути определяет
	// кейс и выдает соответствующий ответ.
	serverHandler := func(w http.ResponseWriter, r *http.Request) {
		var rc *tcase
		for _, c := range cases {
			quote, exist := strings.CutPrefix(r.URL.Path, "/api/rates/USD/")
			s.Require().True(exist) //nolint:testifylint
			if quote == c.quote {
				rc = &c
				break
			}
		}
		s.Require().NotNilf(rc, "тест для пути %s не найден", r.URL.Path) //nolint:testifylint

		if rc.retryAfter != "" {
			w.Header().Set("Retry-After", rc.retryAfter)
		}

		var body []byte
		if rc.httpStatus == http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			var bErr error
			body, bErr = json.Marshal(rc.wantResponse)
			s.NoError(bErr)
		}
		w.WriteHeader(rc.httpStatus)

		if body != nil {
			_, wErr := w.Write(body)
			s.NoError(wErr)
		}
	}

	s.server = httptest.NewServer(http.HandlerFunc(serverHandler))

	for _, t := range cases {
		s.Run(t.name, func() {
			client := New(s.server.URL)
			response, err := client.GetRate(context.Background(), "USD", t.quote)

			if t.wantErrType != nil {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &t.wantErrType) //nolint:testifylint

				if t.wantRetryAfter > 0 {
					var tooMany *TooManyRequestError
					s.Require().ErrorAs(err, &tooMany)
					s.Equal(t.wantRetryAfter, tooMany.RetryAfter)
				}
				return
			}

			if t.wantPlainErr {
				s.Require().Error(err)
				s.Nil(response)
				return
			}

			s.Require().NoError(err)
			s.NotNil(response)
			s.True(t.wantResponse.Rate.Equal(response.Rate))
			s.Equal(t.wantResponse.Base, response.Base)
			s.Equal(t.wantResponse.Quote, response.Quote)
		})
	}
}
