package qfu

// SelectionScheme names the single criterion a DeviceSelection was built
// from.
type SelectionScheme string

const (
	// SchemeCdcWdm selects by explicit cdc-wdm device path.
	SchemeCdcWdm SelectionScheme = "cdc-wdm"
	// SchemeTTY selects by explicit serial device path.
	SchemeTTY SelectionScheme = "tty"
	// SchemeBusDev selects by USB bus and device number.
	SchemeBusDev SelectionScheme = "busnum-devnum"
	// SchemeVidPid selects by USB vendor and product id.
	SchemeVidPid SelectionScheme = "vid-pid"
)

// DeviceSelection is the canonical device-selection criterion for one
// invocation. It is built once from the raw hints, is immutable afterwards,
// and is handed unmodified to the device resolver at dispatch time.
type DeviceSelection struct {
	scheme SelectionScheme
	path   string
	busDev BusDevID
	vidPid VidPidID
}

// NewDeviceSelection picks exactly one selection scheme from the supplied
// hints. When several hints are present the most specific one wins, in the
// fixed order cdc-wdm path, tty path, bus/dev, vid/pid. With no hints at all
// it fails with a selection error; callers invoke it only for actions that
// need a device.
func NewDeviceSelection(cdcWdmPath, ttyPath string, busDev BusDevID, vidPid VidPidID) (*DeviceSelection, error) {
	switch {
	case cdcWdmPath != "":
		return &DeviceSelection{scheme: SchemeCdcWdm, path: cdcWdmPath}, nil
	case ttyPath != "":
		return &DeviceSelection{scheme: SchemeTTY, path: ttyPath}, nil
	case !busDev.IsZero():
		return &DeviceSelection{scheme: SchemeBusDev, busDev: busDev}, nil
	case !vidPid.IsZero():
		return &DeviceSelection{scheme: SchemeVidPid, vidPid: vidPid}, nil
	default:
		return nil, newErrorf(KindSelection, "no device specified")
	}
}

// Scheme returns which criterion the selection was built from.
func (s *DeviceSelection) Scheme() SelectionScheme {
	return s.scheme
}

// Path returns the device path for path-based schemes, otherwise "".
func (s *DeviceSelection) Path() string {
	return s.path
}

// BusDev returns the bus/dev identifier; zero unless the scheme is
// SchemeBusDev.
func (s *DeviceSelection) BusDev() BusDevID {
	return s.busDev
}

// VidPid returns the vid/pid identifier; zero unless the scheme is
// SchemeVidPid.
func (s *DeviceSelection) VidPid() VidPidID {
	return s.vidPid
}

func (s *DeviceSelection) String() string {
	switch s.scheme {
	case SchemeCdcWdm, SchemeTTY:
		return string(s.scheme) + " " + s.path
	case SchemeBusDev:
		return string(s.scheme) + " " + s.busDev.String()
	case SchemeVidPid:
		return string(s.scheme) + " " + s.vidPid.String()
	default:
		return "unselected"
	}
}
