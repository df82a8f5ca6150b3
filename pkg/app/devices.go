package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// DevicesPanel shows this device's identity and the current room state.
type DevicesPanel struct {
	BasePanel
	deviceName string
	relayURL   string
	roomCode   string
	joinedRoom string
	originY    int
}

func NewDevicesPanel(g *gocui.Gui, deviceName, relayURL string) *DevicesPanel {
	return &DevicesPanel{
		BasePanel:  NewBasePanel(ViewDevices, g),
		deviceName: deviceName,
		relayURL:   relayURL,
	}
}

func (d *DevicesPanel) Draw(dim boxlayout.Dimensions) error {
	v, err := d.g.SetView(d.id, dim.X0, dim.Y0, dim.X1, dim.Y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	d.SetupView(v, "Device")
	v.Wrap = false

	fmt.Fprintf(v, " %s %s\n", Gray("name "), d.deviceName)
	fmt.Fprintf(v, " %s %s\n", Gray("relay"), d.relayURL)

	if d.roomCode != "" {
		fmt.Fprintf(v, " %s %s\n", Gray("room "), Green(d.roomCode))
	} else {
		fmt.Fprintf(v, " %s %s\n", Gray("room "), Gray("none, press g"))
	}

	if d.joinedRoom != "" {
		fmt.Fprintf(v, " %s %s\n", Gray("peer "), Cyan(d.joinedRoom))
	}

	AdjustOrigin(v, &d.originY)
	v.SetOrigin(0, d.originY)

	return nil
}

// SetRoomCode records the room this device is offering.
func (d *DevicesPanel) SetRoomCode(code string) {
	d.roomCode = code
}

// SetJoinedRoom records the room this device joined as receiver.
func (d *DevicesPanel) SetJoinedRoom(code string) {
	d.joinedRoom = code
}

func (d *DevicesPanel) ScrollUp() {
	if d.originY > 0 {
		d.originY--
	}
}

func (d *DevicesPanel) ScrollDown() {
	d.originY++
	// AdjustOrigin clamps on the next draw
}

func (d *DevicesPanel) ScrollUpByWheel() {
	if d.originY > 0 {
		d.originY -= 2
		if d.originY < 0 {
			d.originY = 0
		}
	}
}

func (d *DevicesPanel) ScrollDownByWheel() {
	d.originY += 2
}
