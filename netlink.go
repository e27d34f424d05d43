// Netlink bridge for TinyGo network stacks.

package wifi

import (
	"net"

	"github.com/ALLTERCO/wifi/nonos"
	"tinygo.org/x/drivers/netlink"
)

// NetNotify registers cb to receive link up/down notifications derived
// from the portable event stream. Only one callback is kept; passing nil
// unregisters it.
func (d *Device) NetNotify(cb func(netlink.Event)) {
	d.netlinkCb.Store(cb)
}

func (d *Device) notifyNetlink(ev Event) {
	cb, _ := d.netlinkCb.Load().(func(netlink.Event))
	if cb == nil {
		return
	}
	switch ev.Type {
	case EventSTAGotIP:
		cb(netlink.EventNetUp)
	case EventSTADisconnected:
		cb(netlink.EventNetDown)
	}
}

// GetHardwareAddr reports the station interface MAC address.
func (d *Device) GetHardwareAddr() (net.HardwareAddr, error) {
	mac, err := d.radio.MACAddress(nonos.STATION_IF)
	if err != nil {
		return nil, err
	}
	return net.HardwareAddr(mac[:]), nil
}

// GetIPAddr reports the station interface IP address, or an error when
// no address is assigned yet.
func (d *Device) GetIPAddr() (net.IP, error) {
	info, err := d.IPInfo(nonos.STATION_IF)
	if err != nil {
		return nil, err
	}
	return net.IP(info.IP.AsSlice()), nil
}
