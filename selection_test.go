package qfu

import "testing"

func TestNewDeviceSelectionSingleScheme(t *testing.T) {
	cases := []struct {
		name   string
		cdcWdm string
		tty    string
		busDev BusDevID
		vidPid VidPidID
		scheme SelectionScheme
	}{
		{name: "cdc-wdm path", cdcWdm: "/dev/cdc-wdm0", scheme: SchemeCdcWdm},
		{name: "tty path", tty: "/dev/ttyUSB2", scheme: SchemeTTY},
		{name: "bus dev", busDev: BusDevID{Bus: 1, Dev: 2}, scheme: SchemeBusDev},
		{name: "dev only", busDev: BusDevID{Dev: 2}, scheme: SchemeBusDev},
		{name: "vid pid", vidPid: VidPidID{Vid: 0x1199, Pid: 0x68c0}, scheme: SchemeVidPid},
		{name: "vid only", vidPid: VidPidID{Vid: 0x1199}, scheme: SchemeVidPid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := NewDeviceSelection(tc.cdcWdm, tc.tty, tc.busDev, tc.vidPid)
			if err != nil {
				t.Fatalf("NewDeviceSelection returned error: %v", err)
			}
			if sel.Scheme() != tc.scheme {
				t.Fatalf("scheme = %q, want %q", sel.Scheme(), tc.scheme)
			}
		})
	}
}

// The documented tie-break order is cdc-wdm > tty > bus/dev > vid/pid.
func TestNewDeviceSelectionPriority(t *testing.T) {
	busDev := BusDevID{Bus: 1, Dev: 2}
	vidPid := VidPidID{Vid: 0x1199}

	sel, err := NewDeviceSelection("/dev/cdc-wdm0", "/dev/ttyUSB2", busDev, vidPid)
	if err != nil {
		t.Fatalf("NewDeviceSelection returned error: %v", err)
	}
	if sel.Scheme() != SchemeCdcWdm {
		t.Fatalf("scheme = %q, want %q", sel.Scheme(), SchemeCdcWdm)
	}

	sel, err = NewDeviceSelection("", "/dev/ttyUSB2", busDev, vidPid)
	if err != nil {
		t.Fatalf("NewDeviceSelection returned error: %v", err)
	}
	if sel.Scheme() != SchemeTTY {
		t.Fatalf("scheme = %q, want %q", sel.Scheme(), SchemeTTY)
	}

	sel, err = NewDeviceSelection("", "", busDev, vidPid)
	if err != nil {
		t.Fatalf("NewDeviceSelection returned error: %v", err)
	}
	if sel.Scheme() != SchemeBusDev {
		t.Fatalf("scheme = %q, want %q", sel.Scheme(), SchemeBusDev)
	}
}

func TestNewDeviceSelectionNoHints(t *testing.T) {
	_, err := NewDeviceSelection("", "", BusDevID{}, VidPidID{})
	if err == nil {
		t.Fatal("NewDeviceSelection succeeded with no hints")
	}
	if KindOf(err) != KindSelection {
		t.Fatalf("kind = %q, want %q", KindOf(err), KindSelection)
	}
	if err.Error() != "no device specified" {
		t.Fatalf("error = %q, want %q", err.Error(), "no device specified")
	}
}
