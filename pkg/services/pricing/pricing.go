// Package pricing resolves per-message unit rates for delivery
// channels.
package pricing

import (
	"strings"
)

type Price struct {
	PerMessage float64
	Currency   string
}

type Store interface {
	ChannelPrice(channel string) Price
}

type staticStore struct {
	rates map[string]float64
}

// DefaultRates returns the contracted unit rates. Channels absent from
// the map price at zero.
func DefaultRates() map[string]float64 {
	return map[string]float64{
		"sms": 0.047,
		"rcs": 0.105,
	}
}

// NewStore creates a Store with the default rates.
func NewStore() Store {
	return NewStoreWithRates(DefaultRates())
}

// NewStoreWithRates creates a Store from an explicit rate table. Keys
// are matched case-insensitively against lowered channel names.
func NewStoreWithRates(rates map[string]float64) Store {
	normalized := make(map[string]float64, len(rates))
	for channel, rate := range rates {
		normalized[strings.ToLower(channel)] = rate
	}
	return &staticStore{rates: normalized}
}

func (s *staticStore) ChannelPrice(channel string) Price {
	return Price{
		PerMessage: s.rates[strings.ToLower(channel)],
		Currency:   "BRL",
	}
}
