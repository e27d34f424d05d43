// package wifi is a portable shim over ESP8266 NONOS-class vendor WiFi
// SDKs. It translates portable station/access-point configuration into
// vendor calls through the nonos.Radio interface, manages the radio
// opmode combination (off/STA/AP/STA+AP) as features are enabled and
// disabled independently, and re-emits vendor asynchronous events as
// portable event records.
//
// The shim owns no networking itself: DHCP, IP and the 802.11 state
// machines live inside the vendor SDK. Reconnect policy is likewise
// deliberately left to the layer above.
package wifi

import (
	"errors"
	"log/slog"
	"net/netip"
	"sync"
	"sync/atomic"

	"github.com/ALLTERCO/wifi/nonos"
	"golang.org/x/exp/constraints"
)

// RateLimitUnset leaves a rate family at the SDK default max/min pair.
const RateLimitUnset = -1

const defaultEventQueueLen = 16

// ErrNoAddress is returned by IPInfo when the interface has no address
// assigned yet.
var ErrNoAddress = errors.New("interface has no address")

// Config carries device-wide settings. Use DefaultConfig as a base; the
// zero value of the TxRateLimit fields configures a zero rate limit
// rather than leaving the family unset.
type Config struct {
	// Logger receives structured logs. nil disables logging.
	Logger *slog.Logger
	// DeviceID is the unique device identifier used as the default
	// DHCP hostname when the station config does not set one.
	DeviceID string
	// TxRateLimit* pack a max/min rate index pair as max<<8|min for
	// the corresponding legacy family, or RateLimitUnset.
	TxRateLimit11B int
	TxRateLimit11G int
	TxRateLimit11N int
	// EventQueueLen bounds the inbound vendor event queue.
	// 0 selects a small default.
	EventQueueLen int
	// OnEvent receives translated portable events from the dispatcher.
	OnEvent func(Event)
	// OnScan receives scan completions. n is -1 on scan failure and 0
	// for an empty scan, in which cases results is nil.
	OnScan func(n int, results []ScanResult)
}

// DefaultConfig returns a Config with all rate families unset.
func DefaultConfig() Config {
	return Config{
		TxRateLimit11B: RateLimitUnset,
		TxRateLimit11G: RateLimitUnset,
		TxRateLimit11N: RateLimitUnset,
	}
}

// entSession owns the PEM material of the current enterprise session.
// The vendor SDK keeps references into these buffers instead of copying,
// so they stay alive here until the next enterprise setup replaces them.
type entSession struct {
	caPEM   []byte
	certPEM []byte
	keyPEM  []byte
}

// Device is the shim instance. All state lives here; there are no
// package globals. Setup entry points are driven by the portable WiFi
// manager above, events by the vendor SDK's dispatch context below.
type Device struct {
	mu     sync.Mutex
	radio  nonos.Radio
	logger *slog.Logger
	cfg    Config

	mode    nonos.Opmode
	session entSession

	events    chan nonos.Event
	stop      chan struct{}
	dropped   atomic.Uint32
	netlinkCb atomic.Value // of func(netlink.Event)
}

// New returns a Device driving radio. Init must be called before any
// setup entry point.
func New(radio nonos.Radio, cfg Config) *Device {
	return &Device{
		radio:  radio,
		logger: cfg.Logger,
		cfg:    cfg,
	}
}

// Init resets the radio to the disabled opmode, registers the vendor
// event handler and starts the event dispatcher.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.events != nil {
		return errors.New("device already initialized")
	}
	if err := d.radio.SetOpmode(nonos.NULL_MODE); err != nil {
		return err
	}
	d.mode = nonos.NULL_MODE
	qlen := d.cfg.EventQueueLen
	if qlen == 0 {
		qlen = defaultEventQueueLen
	}
	d.events = make(chan nonos.Event, clamp(qlen, 1, 1024))
	d.stop = make(chan struct{})
	d.radio.SetEventHandler(d.enqueueVendorEvent)
	go d.dispatch(d.events, d.stop)
	d.info("Init:done")
	return nil
}

// Deinit unregisters the vendor event handler, stops the dispatcher and
// switches the radio off. Safe to call on an uninitialized Device.
func (d *Device) Deinit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.events == nil {
		return nil
	}
	d.radio.SetEventHandler(nil)
	close(d.stop)
	d.events = nil
	d.stop = nil
	err := d.radio.SetOpmode(nonos.NULL_MODE)
	d.mode = nonos.NULL_MODE
	d.info("Deinit:done")
	return err
}

// StationConnect asks the radio to associate using the current station
// config. Completion is reported asynchronously via OnEvent.
func (d *Device) StationConnect() error {
	return d.radio.StationConnect()
}

// StationDisconnect drops the current association, if any.
func (d *Device) StationDisconnect() error {
	return d.radio.StationDisconnect()
}

// IPInfo reports the IP configuration of itf. Returns ErrNoAddress when
// the interface is up but has no address yet.
func (d *Device) IPInfo(itf nonos.Interface) (nonos.IPInfo, error) {
	info, err := d.radio.IPInfo(itf)
	if err != nil {
		return nonos.IPInfo{}, err
	}
	if !info.IP.IsValid() || info.IP.IsUnspecified() {
		return nonos.IPInfo{}, ErrNoAddress
	}
	return info, nil
}

// StationRSSI reports the signal strength of the current association in
// dBm. Returns 0 when not associated.
func (d *Device) StationRSSI() int {
	rssi := d.radio.StationRSSI()
	if rssi >= 0 {
		return 0
	}
	return rssi
}

// StationDefaultDNS reports the primary DNS server the station acquired
// via DHCP. ok is false when none is known.
func (d *Device) StationDefaultDNS() (addr netip.Addr, ok bool) {
	addr = d.radio.DNSServer(0)
	if !addr.IsValid() || addr.IsUnspecified() {
		return netip.Addr{}, false
	}
	return addr, true
}

// DroppedEvents reports how many vendor events were discarded because
// the inbound queue was full.
func (d *Device) DroppedEvents() uint32 {
	return d.dropped.Load()
}

// clamp bounds v to [lo,hi]. Zero or negative v selects lo.
func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
