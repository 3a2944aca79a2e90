package prices

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// defaultPrices are the static display prices served before any refresh.
var defaultPrices = map[string]float64{
	"BNB":  263.42,
	"BUSD": 1.0,
	"BTCB": 41231.58,
	"ETH":  2238.76,
	"CAKE": 2.42,
	"USDT": 1.0,
	"USDC": 1.0,
	"DOT":  6.32,
	"LINK": 13.76,
	"ADA":  0.45,
}

// upstreamPairs maps token symbols to their quote pair on the upstream feed.
var upstreamPairs = map[string]string{
	"BNB":  "BNBUSDT",
	"BUSD": "BUSDUSDT",
	"BTCB": "BTCUSDT",
	"ETH":  "ETHUSDT",
	"CAKE": "CAKEUSDT",
	"USDT": "USDTUSDC",
	"USDC": "USDCUSDT",
	"DOT":  "DOTUSDT",
	"LINK": "LINKUSDT",
	"ADA":  "ADAUSDT",
}

// simulatedPairPrices stands in for the upstream exchange feed, which is not
// reachable from the demo environment.
var simulatedPairPrices = map[string]float64{
	"BNBUSDT":  574.32,
	"BUSDUSDT": 1.00,
	"BTCUSDT":  57893.45,
	"ETHUSDT":  3124.78,
	"CAKEUSDT": 2.87,
	"USDTUSDC": 1.00,
	"USDCUSDT": 1.00,
	"DOTUSDT":  7.83,
	"LINKUSDT": 13.46,
	"ADAUSDT":  0.42,
}

// Feed serves per-token USD display prices. Values are mock data: the static
// defaults until Refresh overlays the simulated upstream feed.
type Feed struct {
	logs *zap.SugaredLogger

	mu          sync.RWMutex
	prices      map[string]float64
	lastUpdated time.Time
}

func NewFeed(logger *zap.SugaredLogger) *Feed {
	prices := make(map[string]float64, len(defaultPrices))
	for symbol, price := range defaultPrices {
		prices[symbol] = price
	}

	return &Feed{
		logs:   logger,
		prices: prices,
	}
}

// Refresh overlays prices from the simulated upstream feed. Symbols without
// an upstream pair keep their current value.
func (f *Feed) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for symbol, pair := range upstreamPairs {
		if price, ok := simulatedPairPrices[pair]; ok {
			f.prices[symbol] = price
		}
	}
	f.lastUpdated = time.Now()

	f.logs.Infow("token prices refreshed", "count", len(f.prices))
}

// Snapshot returns a copy of the current price map.
func (f *Feed) Snapshot() map[string]float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]float64, len(f.prices))
	for symbol, price := range f.prices {
		out[symbol] = price
	}
	return out
}

// Price returns the USD price for a symbol, defaulting to 1.0 when unknown.
func (f *Feed) Price(symbol string) float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if price, ok := f.prices[symbol]; ok {
		return price
	}
	return 1.0
}

// LastUpdated reports when Refresh last ran; zero before the first refresh.
func (f *Feed) LastUpdated() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lastUpdated
}
