package quotes

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Quote is one batch lookup result. OK is false when the lookup failed or
// the upstream had no data; Price is meaningless in that case.
type Quote struct {
	Price float64
	OK    bool
}

// Source resolves a single symbol to its latest price.
type Source interface {
	Latest(ctx context.Context, symbol string) (float64, error)
}

// Cache batches per-symbol lookups and reuses the result for the rest of
// the refresh tick. The cache key is the distinct normalized symbol set;
// Invalidate is called at every tick boundary, so entries never survive
// across ticks.
type Cache struct {
	src Source

	mu     sync.Mutex
	key    string
	quotes map[string]Quote
}

func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// CurrentPrices returns a quote per distinct symbol. One symbol failing
// never fails the batch: that symbol just comes back with OK=false.
func (c *Cache) CurrentPrices(ctx context.Context, symbols []string) map[string]Quote {
	distinct := distinctSymbols(symbols)
	key := strings.Join(distinct, ",")

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quotes != nil && c.key == key {
		return copyQuotes(c.quotes)
	}

	quotes := make(map[string]Quote, len(distinct))
	for _, sym := range distinct {
		price, err := c.src.Latest(ctx, sym)
		if err != nil {
			quotes[sym] = Quote{}
			continue
		}
		quotes[sym] = Quote{Price: price, OK: true}
	}

	c.key = key
	c.quotes = quotes
	return copyQuotes(quotes)
}

// Invalidate drops the cached batch. The refresh loop calls this at the
// start of each tick.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = ""
	c.quotes = nil
}

func distinctSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func copyQuotes(in map[string]Quote) map[string]Quote {
	out := make(map[string]Quote, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
