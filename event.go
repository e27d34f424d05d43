package wifi

import (
	"log/slog"

	"github.com/ALLTERCO/wifi/nonos"
)

// EventType identifies a portable event delivered through Config.OnEvent.
type EventType uint8

const (
	eventNone EventType = iota
	// EventSTADisconnected is emitted when the station loses its
	// association. Reason carries the vendor disconnect reason code.
	EventSTADisconnected
	// EventSTAConnected is emitted when the station associates. BSSID
	// and Channel identify the AP.
	EventSTAConnected
	// EventSTAGotIP is emitted when the station acquires an IP address.
	EventSTAGotIP
	// EventAPSTAConnected is emitted when a client joins our AP. MAC
	// identifies the client.
	EventAPSTAConnected
	// EventAPSTADisconnected is emitted when a client leaves our AP.
	EventAPSTADisconnected
)

func (e EventType) String() string {
	switch e {
	case EventSTADisconnected:
		return "sta-disconnected"
	case EventSTAConnected:
		return "sta-connected"
	case EventSTAGotIP:
		return "sta-got-ip"
	case EventAPSTAConnected:
		return "ap-sta-connected"
	case EventAPSTADisconnected:
		return "ap-sta-disconnected"
	}
	return "???"
}

// Event is a translated vendor event. Only the fields relevant to Type
// are set: Reason for EventSTADisconnected, BSSID and Channel for
// EventSTAConnected, MAC for the AP client events.
type Event struct {
	Type    EventType
	Reason  uint8
	BSSID   [6]byte
	Channel uint8
	MAC     [6]byte
}

// Translate maps a vendor event to its portable form. ok is false for
// vendor events with no portable representation; those are dropped by
// the dispatcher.
func Translate(vev nonos.Event) (ev Event, ok bool) {
	switch vev.Type {
	case nonos.EVENT_STAMODE_DISCONNECTED:
		ev.Type = EventSTADisconnected
		ev.Reason = vev.Reason
	case nonos.EVENT_STAMODE_CONNECTED:
		ev.Type = EventSTAConnected
		ev.BSSID = vev.BSSID
		ev.Channel = vev.Channel
	case nonos.EVENT_STAMODE_GOT_IP:
		ev.Type = EventSTAGotIP
	case nonos.EVENT_SOFTAPMODE_STACONNECTED:
		ev.Type = EventAPSTAConnected
		ev.MAC = vev.MAC
	case nonos.EVENT_SOFTAPMODE_STADISCONNECTED:
		ev.Type = EventAPSTADisconnected
		ev.MAC = vev.MAC
	default:
		return Event{}, false
	}
	return ev, true
}

// enqueueVendorEvent is the handler registered with the radio. It is
// called from the vendor SDK's dispatch context and must not block, so
// events are dropped (and counted) when the queue is full.
func (d *Device) enqueueVendorEvent(vev nonos.Event) {
	select {
	case d.events <- vev:
	default:
		d.dropped.Add(1)
	}
}

// dispatch is the single event dispatcher goroutine. It owns all
// translation and delivery so OnEvent callbacks never run concurrently
// with each other.
func (d *Device) dispatch(events <-chan nonos.Event, stop <-chan struct{}) {
	for {
		select {
		case vev := <-events:
			d.translateAndDeliver(vev)
		case <-stop:
			return
		}
	}
}

func (d *Device) translateAndDeliver(vev nonos.Event) {
	if vev.Type == nonos.EVENT_STAMODE_AUTHMODE_CHANGE {
		// CVE-2020-12638: a forged beacon can downgrade the AP's
		// advertised auth mode to open and hijack the association.
		// Drop the link instead of following the downgrade.
		if vev.OldMode != nonos.AUTH_OPEN && vev.NewMode == nonos.AUTH_OPEN {
			d.logerr("auth downgrade detected, disconnecting")
			_ = d.radio.StationDisconnect()
		}
		return
	}

	ev, ok := Translate(vev)
	if !ok {
		return
	}
	d.debug("event", slog.String("type", ev.Type.String()))
	d.notifyNetlink(ev)
	if d.cfg.OnEvent != nil {
		d.cfg.OnEvent(ev)
	}
}
