package wifi

import (
	"errors"
	"testing"

	"github.com/ALLTERCO/wifi/nonos"
)

func TestRateLimitDefaults(t *testing.T) {
	d, radio := newTestDevice(t, DefaultConfig())
	d.setRateLimits()

	// Unset families still get the SDK default pair pushed.
	if max, min := radio.RateLimit(nonos.RC_LIMIT_11B); max != nonos.RATE_11B_B11M || min != nonos.RATE_11B_B1M {
		t.Errorf("11b limits %d/%d", max, min)
	}
	if max, min := radio.RateLimit(nonos.RC_LIMIT_11G); max != nonos.RATE_11G_G54M || min != nonos.RATE_11G_B1M {
		t.Errorf("11g limits %d/%d", max, min)
	}
	if max, min := radio.RateLimit(nonos.RC_LIMIT_11N); max != nonos.RATE_11N_MCS7S || min != nonos.RATE_11N_B1M {
		t.Errorf("11n limits %d/%d", max, min)
	}
	if radio.RateLimitMask()&nonos.LIMIT_RATE_MASK_STA != 0 {
		t.Error("limit mask set with no family configured")
	}
}

func TestRateLimitConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TxRateLimit11G = int(nonos.RATE_11G_G24M)<<8 | int(nonos.RATE_11G_B1M)
	d, radio := newTestDevice(t, cfg)
	d.setRateLimits()

	if max, min := radio.RateLimit(nonos.RC_LIMIT_11G); max != nonos.RATE_11G_G24M || min != nonos.RATE_11G_B1M {
		t.Errorf("11g limits %d/%d", max, min)
	}
	// The other families stay at defaults.
	if max, _ := radio.RateLimit(nonos.RC_LIMIT_11B); max != nonos.RATE_11B_B11M {
		t.Errorf("11b max %d", max)
	}
	if radio.RateLimitMask()&nonos.LIMIT_RATE_MASK_STA == 0 {
		t.Error("limit mask not set")
	}
}

func TestRateLimitFailureSwallowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TxRateLimit11B = int(nonos.RATE_11B_B5M) << 8
	d, radio := newTestDevice(t, cfg)
	if err := radio.SetRateLimitMask(nonos.LIMIT_RATE_MASK_AP); err != nil {
		t.Fatal(err)
	}
	radio.FailOn["SetRateLimit"] = errors.New("invalid pair")

	// Rate limiting is best effort; station setup must survive it.
	if err := d.StationSetup(StationConfig{Enable: true, SSID: "x"}); err != nil {
		t.Fatal(err)
	}
	mask := radio.RateLimitMask()
	if mask&nonos.LIMIT_RATE_MASK_STA != 0 {
		t.Error("limit mask set despite rejected pairs")
	}
	if mask&nonos.LIMIT_RATE_MASK_AP == 0 {
		t.Error("unrelated mask bit clobbered")
	}
}

func TestRateLimitMaskFailureSwallowed(t *testing.T) {
	d, radio := newTestDevice(t, DefaultConfig())
	radio.FailOn["SetRateLimitMask"] = errors.New("sdk says no")
	if err := d.StationSetup(StationConfig{Enable: true, SSID: "x"}); err != nil {
		t.Fatal(err)
	}
}
