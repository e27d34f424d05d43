package nonos

import "net/netip"

// IPInfo is the vendor per-interface IP configuration.
type IPInfo struct {
	IP      netip.Addr
	Netmask netip.Addr
	GW      netip.Addr
}

// DHCPLease is the address pool handed to the softAP DHCP server.
type DHCPLease struct {
	Enable  bool
	StartIP netip.Addr
	EndIP   netip.Addr
}

// StationConfig is the vendor station (client) configuration record.
type StationConfig struct {
	SSID     [SSID_MAX_LEN]byte
	Password [PASSWORD_MAX_LEN]byte
	// BSSIDSet pins the association to BSSID when true.
	BSSIDSet bool
	BSSID    [6]byte
}

// SoftAPConfig is the vendor access-point configuration record.
type SoftAPConfig struct {
	SSID           [SSID_MAX_LEN]byte
	SSIDLen        uint8
	Password       [PASSWORD_MAX_LEN]byte
	Channel        uint8
	AuthMode       AuthMode
	Hidden         bool
	MaxConnections uint8
	BeaconInterval uint16 // milliseconds
}

// ScanConfig holds scan trigger parameters. Dwell times are per channel in
// milliseconds and only apply to active scans.
type ScanConfig struct {
	Type      ScanType
	ActiveMin uint16
	ActiveMax uint16
}

// BSSInfo describes one network visible in a completed scan.
type BSSInfo struct {
	SSID     [SSID_MAX_LEN]byte
	SSIDLen  uint8
	BSSID    [6]byte
	Channel  uint8
	RSSI     int8
	AuthMode AuthMode
	Hidden   bool
}

// ScanDoneFunc receives the outcome of a scan request. bss is only valid
// when status is SCAN_OK and may be empty.
type ScanDoneFunc func(status ScanStatus, bss []BSSInfo)

// EventFunc receives asynchronous vendor events. The SDK invokes it from
// its own single-threaded dispatch context; it must not block.
type EventFunc func(ev Event)

// Radio is the downward vendor SDK surface. All calls are synchronous and
// return as soon as the SDK has accepted or rejected the parameters; the
// radio operations they trigger complete asynchronously and are reported
// through the registered EventFunc.
type Radio interface {
	// Opmode reporting and control.
	Opmode() Opmode
	SetOpmode(Opmode) error
	SetSleepType(SleepType) error

	// Station control.
	SetStationConfig(StationConfig) error
	StationConnect() error
	StationDisconnect() error
	SetAutoConnect(bool) error
	SetReconnectPolicy(bool) error
	SetHostname(string) error
	// StationRSSI reports the RSSI of the current association in dBm,
	// or a non-negative value when not associated.
	StationRSSI() int

	// IP-level plumbing. The network stack lives inside the SDK.
	SetIPInfo(Interface, IPInfo) error
	IPInfo(Interface) (IPInfo, error)
	DHCPClientStop() error

	// SoftAP control.
	SetSoftAPConfig(SoftAPConfig) error
	DHCPServerStart() error
	DHCPServerStop() error
	SetDHCPLease(DHCPLease) error
	SetDHCPOfferOption(opt OfferOption, enable bool) error

	// Transmit rate limiting.
	SetRateLimit(family RCLimit, itf Interface, max, min uint8) error
	RateLimitMask() LimitMask
	SetRateLimitMask(LimitMask) error

	// WPA2-enterprise (802.1X) session plumbing. Byte slices passed in
	// must remain valid until replaced or cleared; the SDK keeps
	// references instead of copying.
	SetEnterpriseUsername([]byte) error
	SetEnterpriseIdentity([]byte) error
	SetEnterprisePassword([]byte) error
	ClearEnterprisePassword()
	SetEnterpriseCACert([]byte) error
	ClearEnterpriseCACert()
	SetEnterpriseCertKey(cert, key []byte) error
	SetEnterpriseDisableTimeCheck(bool) error
	SetEnterpriseEnabled(bool) error

	// Scan issues an asynchronous scan; done fires exactly once.
	Scan(cfg ScanConfig, done ScanDoneFunc) error

	// SetEventHandler registers the asynchronous event callback.
	// A nil handler unregisters.
	SetEventHandler(EventFunc)

	// MACAddress returns the factory MAC of the given interface.
	MACAddress(Interface) ([6]byte, error)
	// DNSServer returns the station DNS server at idx as configured by
	// DHCP, or the zero Addr when none is known.
	DNSServer(idx int) netip.Addr
}
