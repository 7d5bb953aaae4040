package fxrates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

const RouteRate = "/api/rates/%s/%s"

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

type Response struct {
	Base  string          `json:"base"`
	Quote string          `json:"quote"`
	Rate  decimal.Decimal `json:"rate"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к
// провайдеру курсов валют.
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

// GetRate получает курс конвертации base -> quote.
// При ответе сервера со статусом отличным от http.StatusOK, возвращает ошибку
// StatusCodeError, или TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) GetRate(
	ctx context.Context,
	base string,
	quote string,
) (response *Response, err error) {
	url := c.baseURL + fmt.Sprintf(RouteRate, base, quote)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		minValue := decimal.NewFromInt(minRetryAfter)
		maxValue := decimal.NewFromInt(maxRetryAfter)

		retryAfterStr := resp.Header.Get("Retry-After")

		retryAfter, parseErr := decimal.NewFromString(retryAfterStr)
		if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
			// в случае ошибки или неверных данных ставим 60 секунд
			retryAfter = decimal.NewFromInt(60) //nolint:mnd
		}

		ra := time.Duration(retryAfter.IntPart()) * time.Second
		return nil, NewTooManyRequestError(ra)
	}

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	if !response.Rate.IsPositive() {
		return nil, fmt.Errorf("provider returned non-positive rate %s for %s/%s", response.Rate, base, quote)
	}

	return response, nil
}
