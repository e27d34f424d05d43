package wifi

import (
	"log/slog"

	"github.com/ALLTERCO/wifi/nonos"
)

// setMode applies mode to the radio. The stored mode is only updated
// after the vendor call succeeds; on failure it is left untouched.
func (d *Device) setMode(mode nonos.Opmode) error {
	d.info("wifi mode", slog.String("mode", mode.String()))
	if err := d.radio.SetOpmode(mode); err != nil {
		d.logerr("failed to set wifi mode",
			slog.String("mode", mode.String()),
			slog.String("err", err.Error()))
		return err
	}
	d.mode = mode
	if mode == nonos.STATION_MODE {
		// Modem sleep loses disconnect events and stalls
		// connections on these radios; keep it off while STA-only
		// is active. When AP is active it is not in effect anyway.
		_ = d.radio.SetSleepType(nonos.NONE_SLEEP_T)
	}
	return nil
}

// addMode enables mode alongside whatever is already active. Enabling
// the complement of the current single mode selects the combined
// AP+STA mode instead of replacing it.
func (d *Device) addMode(mode nonos.Opmode) error {
	if d.mode == mode || d.mode == nonos.STATIONAP_MODE {
		return nil
	}

	if (d.mode == nonos.SOFTAP_MODE && mode == nonos.STATION_MODE) ||
		(d.mode == nonos.STATION_MODE && mode == nonos.SOFTAP_MODE) {
		mode = nonos.STATIONAP_MODE
	}

	return d.setMode(mode)
}

// removeMode disables mode, downgrading the combined mode to whichever
// single mode remains, or to off when nothing remains.
func (d *Device) removeMode(mode nonos.Opmode) error {
	if (mode == nonos.STATION_MODE && d.mode == nonos.SOFTAP_MODE) ||
		(mode == nonos.SOFTAP_MODE && d.mode == nonos.STATION_MODE) ||
		d.mode == nonos.NULL_MODE {
		// Nothing to do.
		return nil
	}
	if mode == nonos.STATIONAP_MODE ||
		(mode == nonos.STATION_MODE && d.mode == nonos.STATION_MODE) ||
		(mode == nonos.SOFTAP_MODE && d.mode == nonos.SOFTAP_MODE) {
		mode = nonos.NULL_MODE
	} else if mode == nonos.STATION_MODE {
		mode = nonos.SOFTAP_MODE
	} else {
		mode = nonos.STATION_MODE
	}
	return d.setMode(mode)
}

// Mode reports the currently active opmode.
func (d *Device) Mode() nonos.Opmode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}
