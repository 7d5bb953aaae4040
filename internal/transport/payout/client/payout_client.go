package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

const (
	RouteQuote  = "/api/quotes"
	RoutePayout = "/api/payouts"
)

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

type QuoteRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type QuoteResponse struct {
	Fee decimal.Decimal `json:"fee"`
}

type PayoutRequest struct {
	ExpenseID int64           `json:"expenseId"`
	Method    string          `json:"method"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

type PayoutResponse struct {
	Reference string          `json:"reference"`
	Fee       decimal.Decimal `json:"fee"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к
// провайдеру выплат.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// QuoteFee запрашивает у провайдера оценку комиссии банковского перевода.
func (c HTTPClient) QuoteFee(ctx context.Context, request QuoteRequest) (*QuoteResponse, error) {
	var response QuoteResponse
	if err := c.post(ctx, RouteQuote, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SubmitPayout отправляет выплату провайдеру. Провайдер отвечает референсом
// платежа и фактической комиссией.
func (c HTTPClient) SubmitPayout(ctx context.Context, request PayoutRequest) (*PayoutResponse, error) {
	var response PayoutResponse
	if err := c.post(ctx, RoutePayout, request, &response); err != nil {
		return nil, err
	}
	if response.Reference == "" {
		return nil, errors.New("provider returned empty payout reference")
	}
	return &response, nil
}

//nolint:nonamedreturns
func (c HTTPClient) post(ctx context.Context, route string, payload any, target any) (err error) {
	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(body))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		return NewStatusCodeError(resp.StatusCode)
	}

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	if jsonErr := json.Unmarshal(raw, target); jsonErr != nil {
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return nil
}

func parseRetryAfter(retryAfterStr string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(retryAfterStr)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
