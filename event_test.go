package wifi

import (
	"testing"
	"time"

	"github.com/ALLTERCO/wifi/internal/simradio"
	"github.com/ALLTERCO/wifi/nonos"
)

func TestTranslate(t *testing.T) {
	bssid := [6]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	mac := [6]byte{0x02, 0x00, 0x00, 0x11, 0x22, 0x33}
	cases := []struct {
		in   nonos.Event
		want Event
		ok   bool
	}{
		{
			in:   nonos.Event{Type: nonos.EVENT_STAMODE_DISCONNECTED, Reason: 8},
			want: Event{Type: EventSTADisconnected, Reason: 8},
			ok:   true,
		},
		{
			in:   nonos.Event{Type: nonos.EVENT_STAMODE_CONNECTED, BSSID: bssid, Channel: 6},
			want: Event{Type: EventSTAConnected, BSSID: bssid, Channel: 6},
			ok:   true,
		},
		{
			in:   nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP},
			want: Event{Type: EventSTAGotIP},
			ok:   true,
		},
		{
			in:   nonos.Event{Type: nonos.EVENT_SOFTAPMODE_STACONNECTED, MAC: mac},
			want: Event{Type: EventAPSTAConnected, MAC: mac},
			ok:   true,
		},
		{
			in:   nonos.Event{Type: nonos.EVENT_SOFTAPMODE_STADISCONNECTED, MAC: mac},
			want: Event{Type: EventAPSTADisconnected, MAC: mac},
			ok:   true,
		},
		{in: nonos.Event{Type: nonos.EVENT_STAMODE_AUTHMODE_CHANGE}},
		{in: nonos.Event{Type: nonos.EVENT_STAMODE_DHCP_TIMEOUT}},
		{in: nonos.Event{Type: nonos.EVENT_SOFTAPMODE_PROBEREQRECVED}},
	}
	for _, tc := range cases {
		got, ok := Translate(tc.in)
		if ok != tc.ok {
			t.Errorf("%v: ok=%v, want %v", tc.in.Type, ok, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %+v, want %+v", tc.in.Type, got, tc.want)
		}
	}
}

func TestDispatcherDelivery(t *testing.T) {
	got := make(chan Event, 1)
	_, radio := newTestDevice(t, Config{OnEvent: func(ev Event) { got <- ev }})

	radio.PushEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	select {
	case ev := <-got:
		if ev.Type != EventSTAGotIP {
			t.Errorf("got %v", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestDispatcherIgnoresUnhandled(t *testing.T) {
	got := make(chan Event, 1)
	_, radio := newTestDevice(t, Config{OnEvent: func(ev Event) { got <- ev }})

	radio.PushEvent(nonos.Event{Type: nonos.EVENT_SOFTAPMODE_PROBEREQRECVED})
	radio.PushEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	select {
	case ev := <-got:
		if ev.Type != EventSTAGotIP {
			t.Errorf("got %v, probe request was not ignored", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestAuthDowngradeForcesDisconnect(t *testing.T) {
	got := make(chan Event, 1)
	_, radio := newTestDevice(t, Config{OnEvent: func(ev Event) { got <- ev }})

	radio.PushEvent(nonos.Event{
		Type:    nonos.EVENT_STAMODE_AUTHMODE_CHANGE,
		OldMode: nonos.AUTH_WPA2_PSK,
		NewMode: nonos.AUTH_OPEN,
	})
	deadline := time.Now().Add(time.Second)
	for radio.CallCount("StationDisconnect") == 0 {
		if time.Now().After(deadline) {
			t.Fatal("downgrade did not force a disconnect")
		}
		time.Sleep(time.Millisecond)
	}
	select {
	case ev := <-got:
		t.Errorf("downgrade produced portable event %v", ev.Type)
	default:
	}
}

func TestAuthUpgradeIgnored(t *testing.T) {
	_, radio := newTestDevice(t, DefaultConfig())

	radio.PushEvent(nonos.Event{
		Type:    nonos.EVENT_STAMODE_AUTHMODE_CHANGE,
		OldMode: nonos.AUTH_OPEN,
		NewMode: nonos.AUTH_WPA2_PSK,
	})
	// Flush the dispatcher with a benign event before checking.
	radio.PushEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	time.Sleep(10 * time.Millisecond)
	if radio.CallCount("StationDisconnect") != 0 {
		t.Error("auth mode change to a stronger mode forced a disconnect")
	}
}

func TestEventQueueOverflow(t *testing.T) {
	// No dispatcher draining the queue here; overflow must be counted,
	// never blocked on.
	d := New(&simradio.Radio{}, DefaultConfig())
	d.events = make(chan nonos.Event, 1)
	d.enqueueVendorEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	d.enqueueVendorEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	d.enqueueVendorEvent(nonos.Event{Type: nonos.EVENT_STAMODE_GOT_IP})
	if got := d.DroppedEvents(); got != 2 {
		t.Errorf("dropped %d, want 2", got)
	}
}
