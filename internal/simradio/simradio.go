// package simradio is an in-memory nonos.Radio used by tests and the
// runnable examples. It records every vendor call, keeps the applied
// configuration inspectable and can be scripted to fail specific calls
// or to deliver canned scan results and events.
package simradio

import (
	"net/netip"
	"sync"

	"github.com/ALLTERCO/wifi/nonos"
)

// Radio implements nonos.Radio. The zero value is ready to use.
type Radio struct {
	mu    sync.Mutex
	calls []string
	// FailOn maps a method name to the error it returns. The special
	// key "ScanDone" makes Scan accept the request but complete with
	// SCAN_FAIL.
	FailOn map[string]error

	opmode    nonos.Opmode
	sleep     nonos.SleepType
	staConfig nonos.StationConfig
	apConfig  nonos.SoftAPConfig
	hostname  string

	autoConnect bool
	reconnect   bool
	connected   bool

	ipInfo      map[nonos.Interface]nonos.IPInfo
	lease       nonos.DHCPLease
	dhcpsUp     bool
	offerRouter bool

	rateLimits map[nonos.RCLimit][2]uint8
	limitMask  nonos.LimitMask

	entUsername []byte
	entIdentity []byte
	entPassword []byte
	entCACert   []byte
	entCert     []byte
	entKey      []byte
	entNoTime   bool
	entEnabled  bool

	handler  nonos.EventFunc
	lastScan nonos.ScanConfig

	// RSSI is returned by StationRSSI.
	RSSI int
	// MACs holds the per-interface factory MAC addresses.
	MACs map[nonos.Interface][6]byte
	// DNS holds the station DNS servers by index.
	DNS map[int]netip.Addr
	// Networks is delivered to the scan-done callback on success.
	Networks []nonos.BSSInfo
}

func (r *Radio) record(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
	return r.FailOn[name]
}

// Calls returns the vendor call names in invocation order.
func (r *Radio) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount reports how many times name was invoked.
func (r *Radio) CallCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

// PushEvent delivers ev to the registered handler, synchronously, the
// way the vendor SDK dispatches from its own context. No-op when no
// handler is registered.
func (r *Radio) PushEvent(ev nonos.Event) {
	r.mu.Lock()
	h := r.handler
	r.mu.Unlock()
	if h != nil {
		h(ev)
	}
}

func (r *Radio) Opmode() nonos.Opmode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opmode
}

func (r *Radio) SetOpmode(mode nonos.Opmode) error {
	if err := r.record("SetOpmode"); err != nil {
		return err
	}
	r.mu.Lock()
	r.opmode = mode
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetSleepType(st nonos.SleepType) error {
	if err := r.record("SetSleepType"); err != nil {
		return err
	}
	r.mu.Lock()
	r.sleep = st
	r.mu.Unlock()
	return nil
}

// SleepType reports the last applied sleep setting.
func (r *Radio) SleepType() nonos.SleepType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sleep
}

func (r *Radio) SetStationConfig(cfg nonos.StationConfig) error {
	if err := r.record("SetStationConfig"); err != nil {
		return err
	}
	r.mu.Lock()
	r.staConfig = cfg
	r.mu.Unlock()
	return nil
}

// StationConfig reports the last applied station config.
func (r *Radio) StationConfig() nonos.StationConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staConfig
}

func (r *Radio) StationConnect() error {
	if err := r.record("StationConnect"); err != nil {
		return err
	}
	r.mu.Lock()
	r.connected = true
	r.mu.Unlock()
	return nil
}

func (r *Radio) StationDisconnect() error {
	if err := r.record("StationDisconnect"); err != nil {
		return err
	}
	r.mu.Lock()
	r.connected = false
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetAutoConnect(on bool) error {
	if err := r.record("SetAutoConnect"); err != nil {
		return err
	}
	r.mu.Lock()
	r.autoConnect = on
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetReconnectPolicy(on bool) error {
	if err := r.record("SetReconnectPolicy"); err != nil {
		return err
	}
	r.mu.Lock()
	r.reconnect = on
	r.mu.Unlock()
	return nil
}

// AutoConnect reports the last applied auto-connect flag.
func (r *Radio) AutoConnect() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.autoConnect
}

// ReconnectPolicy reports the last applied reconnect flag.
func (r *Radio) ReconnectPolicy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reconnect
}

func (r *Radio) SetHostname(name string) error {
	if err := r.record("SetHostname"); err != nil {
		return err
	}
	r.mu.Lock()
	r.hostname = name
	r.mu.Unlock()
	return nil
}

// Hostname reports the last applied hostname.
func (r *Radio) Hostname() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hostname
}

func (r *Radio) StationRSSI() int {
	_ = r.record("StationRSSI")
	return r.RSSI
}

func (r *Radio) SetIPInfo(itf nonos.Interface, info nonos.IPInfo) error {
	if err := r.record("SetIPInfo"); err != nil {
		return err
	}
	r.mu.Lock()
	if r.ipInfo == nil {
		r.ipInfo = make(map[nonos.Interface]nonos.IPInfo)
	}
	r.ipInfo[itf] = info
	r.mu.Unlock()
	return nil
}

func (r *Radio) IPInfo(itf nonos.Interface) (nonos.IPInfo, error) {
	if err := r.record("IPInfo"); err != nil {
		return nonos.IPInfo{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ipInfo[itf], nil
}

func (r *Radio) DHCPClientStop() error {
	return r.record("DHCPClientStop")
}

func (r *Radio) SetSoftAPConfig(cfg nonos.SoftAPConfig) error {
	if err := r.record("SetSoftAPConfig"); err != nil {
		return err
	}
	r.mu.Lock()
	r.apConfig = cfg
	r.mu.Unlock()
	return nil
}

// SoftAPConfig reports the last applied softAP config.
func (r *Radio) SoftAPConfig() nonos.SoftAPConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apConfig
}

func (r *Radio) DHCPServerStart() error {
	if err := r.record("DHCPServerStart"); err != nil {
		return err
	}
	r.mu.Lock()
	r.dhcpsUp = true
	r.mu.Unlock()
	return nil
}

func (r *Radio) DHCPServerStop() error {
	if err := r.record("DHCPServerStop"); err != nil {
		return err
	}
	r.mu.Lock()
	r.dhcpsUp = false
	r.mu.Unlock()
	return nil
}

// DHCPServerRunning reports whether the DHCP server is started.
func (r *Radio) DHCPServerRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dhcpsUp
}

func (r *Radio) SetDHCPLease(lease nonos.DHCPLease) error {
	if err := r.record("SetDHCPLease"); err != nil {
		return err
	}
	r.mu.Lock()
	r.lease = lease
	r.mu.Unlock()
	return nil
}

// DHCPLease reports the last applied lease range.
func (r *Radio) DHCPLease() nonos.DHCPLease {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lease
}

func (r *Radio) SetDHCPOfferOption(opt nonos.OfferOption, enable bool) error {
	if err := r.record("SetDHCPOfferOption"); err != nil {
		return err
	}
	if opt == nonos.OFFER_ROUTER {
		r.mu.Lock()
		r.offerRouter = enable
		r.mu.Unlock()
	}
	return nil
}

// OffersRouter reports whether the DHCP server advertises a default
// router.
func (r *Radio) OffersRouter() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offerRouter
}

func (r *Radio) SetRateLimit(family nonos.RCLimit, itf nonos.Interface, max, min uint8) error {
	if err := r.record("SetRateLimit"); err != nil {
		return err
	}
	r.mu.Lock()
	if r.rateLimits == nil {
		r.rateLimits = make(map[nonos.RCLimit][2]uint8)
	}
	r.rateLimits[family] = [2]uint8{max, min}
	r.mu.Unlock()
	return nil
}

// RateLimit reports the last applied max/min pair for family.
func (r *Radio) RateLimit(family nonos.RCLimit) (max, min uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pair := r.rateLimits[family]
	return pair[0], pair[1]
}

func (r *Radio) RateLimitMask() nonos.LimitMask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limitMask
}

func (r *Radio) SetRateLimitMask(mask nonos.LimitMask) error {
	if err := r.record("SetRateLimitMask"); err != nil {
		return err
	}
	r.mu.Lock()
	r.limitMask = mask
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetEnterpriseUsername(b []byte) error {
	if err := r.record("SetEnterpriseUsername"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entUsername = b
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetEnterpriseIdentity(b []byte) error {
	if err := r.record("SetEnterpriseIdentity"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entIdentity = b
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetEnterprisePassword(b []byte) error {
	if err := r.record("SetEnterprisePassword"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entPassword = b
	r.mu.Unlock()
	return nil
}

func (r *Radio) ClearEnterprisePassword() {
	_ = r.record("ClearEnterprisePassword")
	r.mu.Lock()
	r.entPassword = nil
	r.mu.Unlock()
}

func (r *Radio) SetEnterpriseCACert(b []byte) error {
	if err := r.record("SetEnterpriseCACert"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entCACert = b
	r.mu.Unlock()
	return nil
}

func (r *Radio) ClearEnterpriseCACert() {
	_ = r.record("ClearEnterpriseCACert")
	r.mu.Lock()
	r.entCACert = nil
	r.mu.Unlock()
}

func (r *Radio) SetEnterpriseCertKey(cert, key []byte) error {
	if err := r.record("SetEnterpriseCertKey"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entCert, r.entKey = cert, key
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetEnterpriseDisableTimeCheck(disable bool) error {
	if err := r.record("SetEnterpriseDisableTimeCheck"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entNoTime = disable
	r.mu.Unlock()
	return nil
}

func (r *Radio) SetEnterpriseEnabled(enable bool) error {
	if err := r.record("SetEnterpriseEnabled"); err != nil {
		return err
	}
	r.mu.Lock()
	r.entEnabled = enable
	r.mu.Unlock()
	return nil
}

// EnterpriseEnabled reports whether 802.1X auth is enabled.
func (r *Radio) EnterpriseEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entEnabled
}

// EnterpriseCredentials reports the buffers currently held by the
// enterprise session.
func (r *Radio) EnterpriseCredentials() (username, identity, password, caCert, cert, key []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entUsername, r.entIdentity, r.entPassword, r.entCACert, r.entCert, r.entKey
}

// Scan delivers the scripted outcome synchronously before returning,
// which keeps tests free of scan-completion races.
func (r *Radio) Scan(cfg nonos.ScanConfig, done nonos.ScanDoneFunc) error {
	if err := r.record("Scan"); err != nil {
		return err
	}
	r.mu.Lock()
	r.lastScan = cfg
	fail := r.FailOn["ScanDone"] != nil
	networks := r.Networks
	r.mu.Unlock()
	if fail {
		done(nonos.SCAN_FAIL, nil)
	} else {
		done(nonos.SCAN_OK, networks)
	}
	return nil
}

// LastScanConfig reports the parameters of the most recent scan request.
func (r *Radio) LastScanConfig() nonos.ScanConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastScan
}

func (r *Radio) SetEventHandler(fn nonos.EventFunc) {
	r.mu.Lock()
	r.handler = fn
	r.mu.Unlock()
}

func (r *Radio) MACAddress(itf nonos.Interface) ([6]byte, error) {
	if err := r.record("MACAddress"); err != nil {
		return [6]byte{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.MACs[itf], nil
}

func (r *Radio) DNSServer(idx int) netip.Addr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.DNS[idx]
}
