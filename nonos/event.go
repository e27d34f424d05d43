package nonos

import "errors"

// EVENT_FRAME_LEN is the length of the diagnostic wire encoding of an
// Event produced by Put and consumed by DecodeEvent.
const EVENT_FRAME_LEN = 20

// Event is an asynchronous vendor event record. Which fields carry data
// depends on Type:
//
//	EVENT_STAMODE_CONNECTED        BSSID, Channel
//	EVENT_STAMODE_DISCONNECTED     Reason
//	EVENT_STAMODE_AUTHMODE_CHANGE  OldMode, NewMode
//	EVENT_SOFTAPMODE_STACONNECTED  MAC
//	EVENT_SOFTAPMODE_STADISCONNECTED  MAC
type Event struct {
	Type    EventType
	Reason  uint8
	Channel uint8
	OldMode AuthMode
	NewMode AuthMode
	BSSID   [6]byte
	MAC     [6]byte
}

// Put encodes ev into dst. Panics if dst is shorter than EVENT_FRAME_LEN.
func (ev *Event) Put(dst []byte) {
	_ = dst[EVENT_FRAME_LEN-1]
	dst[0] = byte(ev.Type)
	dst[1] = ev.Reason
	dst[2] = ev.Channel
	dst[3] = byte(ev.OldMode)
	dst[4] = byte(ev.NewMode)
	copy(dst[5:11], ev.BSSID[:])
	copy(dst[11:17], ev.MAC[:])
	dst[17] = 0
	dst[18] = 0
	dst[19] = 0
}

// DecodeEvent decodes an event frame previously encoded with Put.
func DecodeEvent(buf []byte) (ev Event, err error) {
	if len(buf) < EVENT_FRAME_LEN {
		return ev, errors.New("buffer too small to decode event frame")
	}
	ev.Type = EventType(buf[0])
	if ev.Type >= EVENT_MAX {
		return ev, errors.New("event frame type out of range")
	}
	ev.Reason = buf[1]
	ev.Channel = buf[2]
	ev.OldMode = AuthMode(buf[3])
	ev.NewMode = AuthMode(buf[4])
	copy(ev.BSSID[:], buf[5:11])
	copy(ev.MAC[:], buf[11:17])
	return ev, nil
}
