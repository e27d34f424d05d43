package wifi

import (
	"encoding/hex"
	"log/slog"
	"net/netip"
	"strings"

	"github.com/ALLTERCO/wifi/nonos"
)

// apBeaconIntervalMS is fixed; the vendor default of 100ms works for all
// supported deployments and is not exposed in configuration.
const apBeaconIntervalMS = 100

// APConfig is the portable access-point configuration consumed by
// APSetup.
type APConfig struct {
	// Enable false tears the access-point mode down instead of
	// applying the rest of the config.
	Enable bool
	// SSID may contain '?' placeholders which are expanded from the
	// AP MAC address for device-unique names, e.g. "shelly-??????".
	SSID string
	// Password empty selects an open network, otherwise WPA2-PSK.
	Password       string
	Channel        uint8
	Hidden         bool
	MaxConnections uint8

	IP      string
	Netmask string
	Gateway string

	// DHCP lease range handed out to clients.
	DHCPStart string
	DHCPEnd   string
}

// APSetup applies cfg to the radio, enabling access-point mode as part
// of the active mode set, or removes access-point mode when cfg.Enable
// is false. Vendor failures abort the call; settings already applied in
// this call are not rolled back.
func (d *Device) APSetup(cfg APConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !cfg.Enable {
		return d.removeMode(nonos.SOFTAP_MODE)
	}

	d.setRateLimits()

	if err := d.addMode(nonos.SOFTAP_MODE); err != nil {
		return err
	}

	ssid := cfg.SSID
	if mac, err := d.radio.MACAddress(nonos.SOFTAP_IF); err == nil {
		ssid = expandMACPlaceholders(ssid, mac)
	}

	var ap nonos.SoftAPConfig
	n := copy(ap.SSID[:], ssid)
	ap.SSIDLen = uint8(n)
	if cfg.Password != "" {
		copy(ap.Password[:], cfg.Password)
		ap.AuthMode = nonos.AUTH_WPA2_PSK
	} else {
		ap.AuthMode = nonos.AUTH_OPEN
	}
	ap.Channel = cfg.Channel
	ap.Hidden = cfg.Hidden
	ap.MaxConnections = cfg.MaxConnections
	ap.BeaconInterval = apBeaconIntervalMS
	d.info("AP config",
		slog.String("ssid", ssid),
		slog.Int("channel", int(ap.Channel)))

	if err := d.radio.SetSoftAPConfig(ap); err != nil {
		d.logerr("AP: failed to set config")
		return err
	}

	_ = d.radio.DHCPServerStop()

	// The AP's own address has to be set explicitly as well; clients
	// get addresses from the lease range below.
	info, err := parseIPInfo(cfg.IP, cfg.Netmask, cfg.Gateway)
	if err != nil {
		d.logerr("AP: bad IP config", slog.String("err", err.Error()))
		return err
	}
	if err := d.radio.SetIPInfo(nonos.SOFTAP_IF, info); err != nil {
		d.logerr("AP: failed to set IP config")
		return err
	}

	lease, err := parseLease(cfg.DHCPStart, cfg.DHCPEnd)
	if err != nil {
		d.logerr("AP: bad DHCP lease range", slog.String("err", err.Error()))
		return err
	}
	if err := d.radio.SetDHCPLease(lease); err != nil {
		d.logerr("AP: failed to set DHCP config")
		return err
	}
	// Do not offer self as a router, we're not one.
	_ = d.radio.SetDHCPOfferOption(nonos.OFFER_ROUTER, false)

	if err := d.radio.DHCPServerStart(); err != nil {
		d.logerr("AP: failed to start DHCP server")
		return err
	}

	d.info("AP up",
		slog.String("ip", cfg.IP),
		slog.String("netmask", cfg.Netmask),
		slog.String("gw", cfg.Gateway),
		slog.String("dhcp_start", cfg.DHCPStart),
		slog.String("dhcp_end", cfg.DHCPEnd))

	return nil
}

func parseLease(start, end string) (lease nonos.DHCPLease, err error) {
	lease.Enable = true
	lease.StartIP, err = netip.ParseAddr(start)
	if err != nil {
		return lease, err
	}
	lease.EndIP, err = netip.ParseAddr(end)
	return lease, err
}

// expandMACPlaceholders replaces '?' runs in s with hex digits of mac,
// consumed right to left so a trailing "??????" becomes the last six
// digits of the MAC.
func expandMACPlaceholders(s string, mac [6]byte) string {
	if !strings.ContainsRune(s, '?') {
		return s
	}
	digits := strings.ToUpper(hex.EncodeToString(mac[:]))
	b := []byte(s)
	di := len(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '?' {
			continue
		}
		di--
		if di >= 0 {
			b[i] = digits[di]
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
