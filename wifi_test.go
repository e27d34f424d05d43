package wifi

import (
	"net/netip"
	"testing"

	"github.com/ALLTERCO/wifi/internal/simradio"
	"github.com/ALLTERCO/wifi/nonos"
)

func newTestDevice(t *testing.T, cfg Config) (*Device, *simradio.Radio) {
	t.Helper()
	radio := &simradio.Radio{FailOn: make(map[string]error)}
	d := New(radio, cfg)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Deinit() })
	return d, radio
}

func TestInitDeinit(t *testing.T) {
	radio := &simradio.Radio{}
	d := New(radio, DefaultConfig())
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if radio.Opmode() != nonos.NULL_MODE {
		t.Error("radio not disabled after init")
	}
	if err := d.Init(); err == nil {
		t.Error("double init did not fail")
	}
	if err := d.Deinit(); err != nil {
		t.Fatal(err)
	}
	// The handler must be unregistered; delivery after deinit would
	// panic on the closed stop channel otherwise.
	radio.PushEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	if err := d.Deinit(); err != nil {
		t.Error("deinit is not idempotent:", err)
	}
}

func TestIPInfo(t *testing.T) {
	d, radio := newTestDevice(t, DefaultConfig())

	_, err := d.IPInfo(nonos.STATION_IF)
	if err != ErrNoAddress {
		t.Errorf("got %v, want ErrNoAddress", err)
	}

	want := nonos.IPInfo{
		IP:      netip.MustParseAddr("192.168.1.2"),
		Netmask: netip.MustParseAddr("255.255.255.0"),
		GW:      netip.MustParseAddr("192.168.1.1"),
	}
	if err := radio.SetIPInfo(nonos.STATION_IF, want); err != nil {
		t.Fatal(err)
	}
	info, err := d.IPInfo(nonos.STATION_IF)
	if err != nil {
		t.Fatal(err)
	}
	if info != want {
		t.Errorf("got %+v, want %+v", info, want)
	}
}

func TestStationRSSI(t *testing.T) {
	d, radio := newTestDevice(t, DefaultConfig())
	radio.RSSI = -52
	if got := d.StationRSSI(); got != -52 {
		t.Errorf("got %d, want -52", got)
	}
	// The SDK returns 31 when not associated.
	radio.RSSI = 31
	if got := d.StationRSSI(); got != 0 {
		t.Errorf("got %d, want 0 when not associated", got)
	}
}

func TestStationDefaultDNS(t *testing.T) {
	d, radio := newTestDevice(t, DefaultConfig())
	if _, ok := d.StationDefaultDNS(); ok {
		t.Error("DNS reported before DHCP configured one")
	}
	radio.DNS = map[int]netip.Addr{0: netip.MustParseAddr("8.8.8.8")}
	addr, ok := d.StationDefaultDNS()
	if !ok || addr != netip.MustParseAddr("8.8.8.8") {
		t.Errorf("got %v ok=%v", addr, ok)
	}
}
