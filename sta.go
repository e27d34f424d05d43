package wifi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/ALLTERCO/wifi/nonos"
)

// StationConfig is the portable station (client) configuration consumed
// by StationSetup. String fields left empty are not applied.
type StationConfig struct {
	// Enable false tears the station mode down instead of applying
	// the rest of the config.
	Enable bool
	SSID   string
	// BSSID optionally pins the association to one AP, formatted as
	// six colon-separated two-digit hex groups.
	BSSID    string
	Password string

	// Static IP configuration. Applied when both IP and Netmask are
	// set; Gateway is optional.
	IP      string
	Netmask string
	Gateway string

	// WPA2-enterprise credentials. Enterprise auth is selected when
	// User or Cert is set; Password then becomes the EAP password.
	User         string
	AnonIdentity string
	CACert       string // path to CA certificate PEM
	Cert         string // path to client certificate PEM
	Key          string // path to client key PEM

	// DHCPHostname overrides the default hostname (the device ID).
	DHCPHostname string
}

// StationSetup applies cfg to the radio, enabling station mode as part
// of the active mode set, or removes station mode when cfg.Enable is
// false. Vendor failures abort the call; settings already applied in
// this call are not rolled back.
func (d *Device) StationSetup(cfg StationConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !cfg.Enable {
		return d.removeMode(nonos.STATION_MODE)
	}

	_ = d.radio.StationDisconnect()

	d.setRateLimits()

	if err := d.addMode(nonos.STATION_MODE); err != nil {
		return err
	}

	var sta nonos.StationConfig
	if cfg.BSSID != "" {
		bssid, err := parseBSSID(cfg.BSSID)
		if err != nil {
			d.logerr("invalid BSSID", slog.String("bssid", cfg.BSSID))
			return err
		}
		sta.BSSID = bssid
		sta.BSSIDSet = true
	}
	copy(sta.SSID[:], cfg.SSID)

	if cfg.IP != "" && cfg.Netmask != "" {
		info, err := parseIPInfo(cfg.IP, cfg.Netmask, cfg.Gateway)
		if err != nil {
			d.logerr("STA: bad static IP config", slog.String("err", err.Error()))
			return err
		}
		_ = d.radio.DHCPClientStop()
		if err := d.radio.SetIPInfo(nonos.STATION_IF, info); err != nil {
			d.logerr("STA: failed to set IP config")
			return err
		}
		d.info("STA static IP",
			slog.String("ip", cfg.IP),
			slog.String("netmask", cfg.Netmask),
			slog.String("gw", cfg.Gateway))
	}

	if cfg.User == "" /* not using EAP */ && cfg.Password != "" {
		copy(sta.Password[:], cfg.Password)
	}

	if err := d.radio.SetStationConfig(sta); err != nil {
		d.logerr("STA: failed to set config")
		return err
	}

	_ = d.radio.SetAutoConnect(false)
	// Reconnect policy is owned by the layer above, not by this shim.
	_ = d.radio.SetReconnectPolicy(false)

	if cfg.Cert != "" || cfg.User != "" {
		if err := d.setupEnterprise(cfg); err != nil {
			return err
		}
	} else {
		_ = d.radio.SetEnterpriseEnabled(false)
	}

	hostname := cfg.DHCPHostname
	if hostname == "" {
		hostname = d.cfg.DeviceID
	}
	if hostname != "" {
		if err := d.radio.SetHostname(hostname); err != nil {
			d.logerr("STA: failed to set hostname", slog.String("hostname", hostname))
			return err
		}
	}

	return nil
}

// setupEnterprise applies the 802.1X credentials. PEM material read from
// disk is kept in the session struct because the SDK retains references
// into the buffers for the life of the enterprise session; the previous
// session's buffers are released by replacement here.
func (d *Device) setupEnterprise(cfg StationConfig) error {
	if err := d.radio.SetEnterpriseUsername([]byte(cfg.User)); err != nil {
		return err
	}

	identity := cfg.AnonIdentity
	if identity == "" {
		// By default, the username doubles as the identity.
		identity = cfg.User
	}
	if err := d.radio.SetEnterpriseIdentity([]byte(identity)); err != nil {
		return err
	}

	if cfg.Password != "" {
		if err := d.radio.SetEnterprisePassword([]byte(cfg.Password)); err != nil {
			return err
		}
	} else {
		d.radio.ClearEnterprisePassword()
	}

	if cfg.CACert != "" {
		pem, err := os.ReadFile(cfg.CACert)
		if err != nil {
			d.logerr("failed to read CA cert", slog.String("path", cfg.CACert))
			return err
		}
		d.session.caPEM = pem
		if err := d.radio.SetEnterpriseCACert(d.session.caPEM); err != nil {
			return err
		}
	} else {
		d.radio.ClearEnterpriseCACert()
	}

	if cfg.Cert != "" && cfg.Key != "" {
		certPEM, err := os.ReadFile(cfg.Cert)
		if err != nil {
			d.logerr("failed to read client cert", slog.String("path", cfg.Cert))
			return err
		}
		keyPEM, err := os.ReadFile(cfg.Key)
		if err != nil {
			d.logerr("failed to read client key", slog.String("path", cfg.Key))
			return err
		}
		d.session.certPEM = certPEM
		d.session.keyPEM = keyPEM
		if err := d.radio.SetEnterpriseCertKey(d.session.certPEM, d.session.keyPEM); err != nil {
			return err
		}
	}

	_ = d.radio.SetEnterpriseDisableTimeCheck(true)
	return d.radio.SetEnterpriseEnabled(true)
}

// parseBSSID parses six colon-separated two-digit hex groups.
func parseBSSID(s string) (bssid [6]byte, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return bssid, errors.New("BSSID must have 6 colon-separated groups")
	}
	for i, p := range parts {
		if len(p) != 2 {
			return bssid, errors.New("BSSID groups must be two hex digits")
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return bssid, fmt.Errorf("bad BSSID group %q", p)
		}
		bssid[i] = byte(v)
	}
	return bssid, nil
}

// parseIPInfo parses dotted-quad ip/netmask and an optional gateway.
func parseIPInfo(ip, netmask, gw string) (info nonos.IPInfo, err error) {
	info.IP, err = netip.ParseAddr(ip)
	if err != nil {
		return info, err
	}
	info.Netmask, err = netip.ParseAddr(netmask)
	if err != nil {
		return info, err
	}
	if gw != "" {
		info.GW, err = netip.ParseAddr(gw)
		if err != nil {
			return info, err
		}
	}
	return info, nil
}
