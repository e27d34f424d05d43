package wifi

import (
	"log/slog"

	"github.com/ALLTERCO/wifi/nonos"
)

// rateFamily ties one legacy rate family to its configured packed limit
// and the SDK defaults used when the limit is RateLimitUnset.
type rateFamily struct {
	name       string
	limit      nonos.RCLimit
	packed     int
	defaultMax uint8
	defaultMin uint8
}

// setRateLimits pushes the configured TX rate limits for all three
// legacy families to the station interface and flips the station bit of
// the limit mask accordingly. Families left at RateLimitUnset still get
// their SDK default max/min pair pushed. Rejected pairs are logged and
// clear the mask bit but never fail the setup; rate limiting is best
// effort. Callers hold d.mu.
func (d *Device) setRateLimits() {
	families := [3]rateFamily{
		{"rate_limit_11b", nonos.RC_LIMIT_11B, d.cfg.TxRateLimit11B,
			nonos.RATE_11B_B11M, nonos.RATE_11B_B1M},
		{"rate_limit_11g", nonos.RC_LIMIT_11G, d.cfg.TxRateLimit11G,
			nonos.RATE_11G_G54M, nonos.RATE_11G_B1M},
		{"rate_limit_11n", nonos.RC_LIMIT_11N, d.cfg.TxRateLimit11N,
			nonos.RATE_11N_MCS7S, nonos.RATE_11N_B1M},
	}

	enable, valid := false, true
	for _, f := range families {
		max, min := f.defaultMax, f.defaultMin
		if f.packed != RateLimitUnset {
			max = uint8(f.packed >> 8)
			min = uint8(f.packed)
			enable = true
		}
		d.debug("set rate limit",
			slog.String("family", f.name),
			slog.Int("max", int(max)),
			slog.Int("min", int(min)))
		if err := d.radio.SetRateLimit(f.limit, nonos.STATION_IF, max, min); err != nil {
			d.logerr("invalid rate limit",
				slog.String("family", f.name),
				slog.Int("max", int(max)),
				slog.Int("min", int(min)))
			valid = false
		}
	}

	mask := d.radio.RateLimitMask()
	if enable && valid {
		mask |= nonos.LIMIT_RATE_MASK_STA
	} else {
		mask &^= nonos.LIMIT_RATE_MASK_STA
	}
	if err := d.radio.SetRateLimitMask(mask); err != nil {
		d.logerr("failed to set rate limit mask")
	}
}
