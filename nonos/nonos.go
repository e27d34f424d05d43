// package nonos exposes the ESP8266 NONOS-class WiFi SDK surface consumed
// by the portable shim: the opmode/auth/rate/event constants, the vendor
// configuration structs and the Radio interface a vendor binding satisfies.
package nonos

// Opmode is the vendor SDK's combined operating mode. STATIONAP_MODE is
// the bitwise union of STATION_MODE and SOFTAP_MODE.
type Opmode uint8

const (
	NULL_MODE Opmode = iota
	STATION_MODE
	SOFTAP_MODE
	STATIONAP_MODE
)

func (m Opmode) String() string {
	switch m {
	case NULL_MODE:
		return "disabled"
	case SOFTAP_MODE:
		return "AP"
	case STATION_MODE:
		return "STA"
	case STATIONAP_MODE:
		return "AP+STA"
	}
	return "???"
}

// Interface selects which radio interface an IP-level call refers to.
type Interface uint8

const (
	STATION_IF Interface = 0
	SOFTAP_IF  Interface = 1
)

// SleepType is the vendor modem power-save setting.
type SleepType uint8

const (
	NONE_SLEEP_T SleepType = iota
	LIGHT_SLEEP_T
	MODEM_SLEEP_T
)

// AuthMode mirrors the vendor auth mode enum. Values above
// AUTH_WPA_WPA2_PSK exist in newer SDKs but have no portable
// representation.
type AuthMode uint8

const (
	AUTH_OPEN AuthMode = iota
	AUTH_WEP
	AUTH_WPA_PSK
	AUTH_WPA2_PSK
	AUTH_WPA_WPA2_PSK
	AUTH_MAX
)

// RCLimit selects a legacy rate family for wifi_set_user_rate_limit.
type RCLimit uint8

const (
	RC_LIMIT_11B RCLimit = iota
	RC_LIMIT_11G
	RC_LIMIT_11N
)

// Per-family rate indices. Lower index means higher rate, matching the
// vendor enums.
const (
	RATE_11B_B11M uint8 = iota
	RATE_11B_B5M
	RATE_11B_B2M
	RATE_11B_B1M
)

const (
	RATE_11G_G54M uint8 = iota
	RATE_11G_G48M
	RATE_11G_G36M
	RATE_11G_G24M
	RATE_11G_G18M
	RATE_11G_G12M
	RATE_11G_G9M
	RATE_11G_G6M
	RATE_11G_B5M
	RATE_11G_B2M
	RATE_11G_B1M
)

const (
	RATE_11N_MCS7S uint8 = iota
	RATE_11N_MCS7
	RATE_11N_MCS6
	RATE_11N_MCS5
	RATE_11N_MCS4
	RATE_11N_MCS3
	RATE_11N_MCS2
	RATE_11N_MCS1
	RATE_11N_MCS0
	RATE_11N_B5M
	RATE_11N_B2M
	RATE_11N_B1M
)

// LimitMask is the per-interface rate limit enable bitmask.
type LimitMask uint8

const (
	LIMIT_RATE_MASK_NONE LimitMask = 0
	LIMIT_RATE_MASK_STA  LimitMask = 1 << 0
	LIMIT_RATE_MASK_AP   LimitMask = 1 << 1
	LIMIT_RATE_MASK_ALL  LimitMask = LIMIT_RATE_MASK_STA | LIMIT_RATE_MASK_AP
)

// OfferOption selects a DHCP server offer knob for
// SetDHCPOfferOption. OFFER_ROUTER controls whether the AP's DHCP server
// advertises itself as the default router.
type OfferOption uint8

const (
	OFFER_START OfferOption = iota
	OFFER_ROUTER
	OFFER_END
)

// ScanType selects active or passive scanning.
type ScanType uint8

const (
	SCAN_TYPE_ACTIVE ScanType = iota
	SCAN_TYPE_PASSIVE
)

// ScanStatus is the completion status reported to the scan-done callback.
type ScanStatus uint8

const (
	SCAN_OK ScanStatus = iota
	SCAN_FAIL
)

// EventType identifies an asynchronous vendor event.
type EventType uint8

const (
	EVENT_STAMODE_CONNECTED EventType = iota
	EVENT_STAMODE_DISCONNECTED
	EVENT_STAMODE_AUTHMODE_CHANGE
	EVENT_STAMODE_GOT_IP
	EVENT_STAMODE_DHCP_TIMEOUT
	EVENT_SOFTAPMODE_STACONNECTED
	EVENT_SOFTAPMODE_STADISCONNECTED
	EVENT_SOFTAPMODE_PROBEREQRECVED
	EVENT_MAX
)

func (e EventType) String() string {
	switch e {
	case EVENT_STAMODE_CONNECTED:
		return "sta-connected"
	case EVENT_STAMODE_DISCONNECTED:
		return "sta-disconnected"
	case EVENT_STAMODE_AUTHMODE_CHANGE:
		return "sta-authmode-change"
	case EVENT_STAMODE_GOT_IP:
		return "sta-got-ip"
	case EVENT_STAMODE_DHCP_TIMEOUT:
		return "sta-dhcp-timeout"
	case EVENT_SOFTAPMODE_STACONNECTED:
		return "ap-sta-connected"
	case EVENT_SOFTAPMODE_STADISCONNECTED:
		return "ap-sta-disconnected"
	case EVENT_SOFTAPMODE_PROBEREQRECVED:
		return "ap-probe-req"
	}
	return "???"
}

const (
	// SSID_MAX_LEN is the vendor SSID field width.
	SSID_MAX_LEN = 32
	// PASSWORD_MAX_LEN is the vendor passphrase field width.
	PASSWORD_MAX_LEN = 64
)
