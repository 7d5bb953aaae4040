package fxrates

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubClient отдает заранее заданные ответы и считает обращения.
type stubClient struct {
	response *Response
	err      error
	calls    int
}

func (c *stubClient) GetRate(_ context.Context, _, _ string) (*Response, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

type ProviderTestSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) TestIdentityRate() {
	client := &stubClient{err: errors.New("must not be called")}
	provider := NewProvider(client, DefaultCacheTTL)

	rate, err := provider.GetRate(context.Background(), "USD", "USD")

	s.Require().NoError(err)
	s.True(rate.Equal(decimal.NewFromInt(1)))
	s.Zero(client.calls)
}

func (s *ProviderTestSuite) TestCacheHit() {
	client := &stubClient{response: &Response{
		Base:  "USD",
		Quote: "EUR",
		Rate:  decimal.NewFromFloat(0.92),
	}}
	provider := NewProvider(client, time.Hour)

	for i := 0; i < 3; i++ {
		rate, err := provider.GetRate(context.Background(), "USD", "EUR")
		s.Require().NoError(err)
		s.True(rate.Equal(decimal.NewFromFloat(0.92)))
	}

	// Все повторные обращения в пределах TTL обслуживаются кэшем.
	s.Equal(1, client.calls)
}

func (s *ProviderTestSuite) TestStaleCacheFallback() {
	client := &stubClient{response: &Response{
		Base:  "USD",
		Quote: "EUR",
		Rate:  decimal.NewFromFloat(0.92),
	}}
	provider := NewProvider(client, time.Nanosecond)

	rate, err := provider.GetRate(context.Background(), "USD", "EUR")
	s.Require().NoError(err)
	s.True(rate.Equal(decimal.NewFromFloat(0.92)))

	time.Sleep(time.Millisecond)
	client.err = errors.New("provider is down")

	rate, err = provider.GetRate(context.Background(), "USD", "EUR")
	s.Require().NoError(err)
	s.True(rate.Equal(decimal.NewFromFloat(0.92)))
	s.Equal(2, client.calls)
}

func (s *ProviderTestSuite) TestErrorWithoutCache() {
	client := &stubClient{err: errors.New("provider is down")}
	provider := NewProvider(client, DefaultCacheTTL)

	_, err := provider.GetRate(context.Background(), "USD", "EUR")

	s.Require().Error(err)
	s.Equal(1, client.calls)
}
