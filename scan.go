package wifi

import (
	"log/slog"

	"github.com/ALLTERCO/wifi/nonos"
)

// Active scan dwell time per channel, in milliseconds. Short enough not
// to starve an active association for too long.
const (
	scanActiveMinMS = 100
	scanActiveMaxMS = 150
)

// AuthMode is the portable network security mode reported in scan
// results.
type AuthMode uint8

const (
	AuthModeOpen AuthMode = iota
	AuthModeWEP
	AuthModeWPAPSK
	AuthModeWPA2PSK
	AuthModeWPAWPA2PSK
)

func (m AuthMode) String() string {
	switch m {
	case AuthModeOpen:
		return "open"
	case AuthModeWEP:
		return "WEP"
	case AuthModeWPAPSK:
		return "WPA"
	case AuthModeWPA2PSK:
		return "WPA2"
	case AuthModeWPAWPA2PSK:
		return "WPA/WPA2"
	}
	return "???"
}

// ScanResult describes one network found by StartScan.
type ScanResult struct {
	SSID     string
	BSSID    [6]byte
	Channel  uint8
	RSSI     int8
	AuthMode AuthMode
}

// StartScan kicks off an active scan; the result is delivered through
// Config.OnScan. Scanning needs the station interface, so an AP-only
// radio is promoted to AP+STA first and stays there after the scan.
func (d *Device) StartScan() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.addMode(nonos.STATION_MODE); err != nil {
		return err
	}
	cfg := nonos.ScanConfig{
		Type:      nonos.SCAN_TYPE_ACTIVE,
		ActiveMin: scanActiveMinMS,
		ActiveMax: scanActiveMaxMS,
	}
	return d.radio.Scan(cfg, d.scanDone)
}

// scanDone translates the vendor scan completion. OnScan gets -1 and a
// nil slice on scan failure, 0 and nil when the air was empty.
func (d *Device) scanDone(status nonos.ScanStatus, networks []nonos.BSSInfo) {
	if d.cfg.OnScan == nil {
		return
	}
	if status != nonos.SCAN_OK {
		d.cfg.OnScan(-1, nil)
		return
	}
	if len(networks) == 0 {
		d.cfg.OnScan(0, nil)
		return
	}
	results := make([]ScanResult, len(networks))
	for i := range networks {
		bss := &networks[i]
		r := &results[i]
		n := int(bss.SSIDLen)
		if n > len(bss.SSID) {
			n = len(bss.SSID)
		}
		r.SSID = string(bss.SSID[:n])
		r.BSSID = bss.BSSID
		r.Channel = bss.Channel
		r.RSSI = bss.RSSI
		switch bss.AuthMode {
		case nonos.AUTH_OPEN:
			r.AuthMode = AuthModeOpen
		case nonos.AUTH_WEP:
			r.AuthMode = AuthModeWEP
		case nonos.AUTH_WPA_PSK:
			r.AuthMode = AuthModeWPAPSK
		case nonos.AUTH_WPA2_PSK:
			r.AuthMode = AuthModeWPA2PSK
		case nonos.AUTH_WPA_WPA2_PSK:
			r.AuthMode = AuthModeWPAWPA2PSK
		}
	}
	d.debug("scan done", slog.Int("networks", len(results)))
	d.cfg.OnScan(len(results), results)
}
