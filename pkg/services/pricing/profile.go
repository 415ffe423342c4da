package pricing

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadProfile builds a Store from a rate-profile ini file. Each
// section is a named profile whose keys are channel names and values
// unit rates, e.g.
//
//	[default]
//	sms = 0.047
//	rcs = 0.105
//
// Channels missing from the profile keep their default rate, so a
// profile may override a single channel.
func LoadProfile(path, profile string) (Store, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing profile file %s: %w", path, err)
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("pricing profile %q not found in %s: %w", profile, path, err)
	}

	rates := DefaultRates()
	for _, key := range section.Keys() {
		rate, err := key.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid rate for channel %q in profile %q: %w", key.Name(), profile, err)
		}
		if rate < 0 {
			return nil, fmt.Errorf("negative rate for channel %q in profile %q", key.Name(), profile)
		}
		rates[key.Name()] = rate
	}

	return NewStoreWithRates(rates), nil
}
