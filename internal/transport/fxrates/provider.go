package fxrates

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCacheTTL — время жизни закэшированного курса. Курсы меняются
// медленнее, чем приходят контрибуции, минуты достаточно.
const DefaultCacheTTL = time.Minute

type Client interface {
	GetRate(ctx context.Context, base, quote string) (*Response, error)
}

type cachedRate struct {
	rate      decimal.Decimal
	expiresAt time.Time
}

// Provider реализует service.FxProvider поверх HTTP клиента с TTL кэшем.
// Для одинаковых валют возвращает единицу без похода в сеть.
type Provider struct {
	client Client
	ttl    time.Duration

	mu    sync.Mutex
	cache map[string]cachedRate
}

func NewProvider(client Client, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Provider{
		client: client,
		ttl:    ttl,
		cache:  make(map[string]cachedRate),
	}
}

func (p *Provider) GetRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	if base == quote {
		return decimal.NewFromInt(1), nil
	}

	key := base + "/" + quote

	p.mu.Lock()
	cached, ok := p.cache[key]
	p.mu.Unlock()
	if ok && time.Now().Before(cached.expiresAt) {
		return cached.rate, nil
	}

	response, err := p.client.GetRate(ctx, base, quote)
	if err != nil {
		// протухший курс лучше, чем отказ провести контрибуцию.
		if ok {
			return cached.rate, nil
		}
		return decimal.Zero, fmt.Errorf("fetching fx rate %s: %w", key, err)
	}

	p.mu.Lock()
	p.cache[key] = cachedRate{rate: response.Rate, expiresAt: time.Now().Add(p.ttl)}
	p.mu.Unlock()

	return response.Rate, nil
}
