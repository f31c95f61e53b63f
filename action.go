// Package qfu implements the decision engine of the firmware-update CLI:
// identifier parsing, device-selection resolution, open-policy merging,
// action selection and dispatch. Device I/O and the QDL/QMI protocol
// exchanges live behind the DeviceResolver and Operations interfaces.
package qfu

import "math"

// Config carries the raw, already-tokenized flag values of one invocation.
// It is assembled once by the CLI layer and read-only from then on; all
// validation happens in SelectAction.
type Config struct {
	// Device selection hints; zero values mean "not supplied".
	CdcWdmPath string
	TTYPath    string
	BusDev     BusDevID
	VidPid     VidPidID

	// Action flags; exactly one must be set.
	Update    bool
	UpdateQdl bool
	Reset     bool
	Verify    bool

	// Update modifiers.
	FirmwareVersion     string
	ConfigVersion       string
	Carrier             string
	IgnoreVersionErrors bool
	OverrideDownload    bool
	ModemStorageIndex   int
	SkipValidation      bool

	// Device-open mode flags.
	OpenProxy bool
	OpenQMI   bool
	OpenMBIM  bool
	OpenAuto  bool

	// Positional firmware image paths, in command-line order.
	Images []string
}

// ActionRequest is the closed set of dispatchable actions. Exactly one
// variant is ever constructed per invocation; SelectAction refuses to build
// anything when zero or several action flags are set.
type ActionRequest interface {
	action()
}

// UpdateRequest runs the full firmware update through a normally-running
// modem.
type UpdateRequest struct {
	Images              []string
	Selection           *DeviceSelection
	FirmwareVersion     string
	ConfigVersion       string
	Carrier             string
	OpenFlags           DeviceOpenFlags
	IgnoreVersionErrors bool
	OverrideDownload    bool
	StorageIndex        uint8
	SkipValidation      bool
}

// UpdateQdlRequest flashes images into a device already sitting in QDL
// download mode.
type UpdateQdlRequest struct {
	Images    []string
	Selection *DeviceSelection
}

// ResetRequest reboots the device into QDL download mode.
type ResetRequest struct {
	Selection *DeviceSelection
	OpenFlags DeviceOpenFlags
}

// VerifyRequest analyzes firmware image files without touching any device.
type VerifyRequest struct {
	Images []string
}

func (*UpdateRequest) action()    {}
func (*UpdateQdlRequest) action() {}
func (*ResetRequest) action()     {}
func (*VerifyRequest) action()    {}

// SelectAction validates the configuration and builds the single action
// request it describes. Checks run in the same order the original tool
// applied them: action cardinality, image list, device selection, open
// flags, storage index.
func SelectAction(cfg Config) (ActionRequest, error) {
	actions := 0
	for _, set := range []bool{cfg.Update, cfg.UpdateQdl, cfg.Reset, cfg.Verify} {
		if set {
			actions++
		}
	}
	if actions == 0 {
		return nil, newErrorf(KindUsage, "no actions specified")
	}
	if actions > 1 {
		return nil, newErrorf(KindUsage, "too many actions specified")
	}

	if (cfg.Verify || cfg.Update || cfg.UpdateQdl) && len(cfg.Images) == 0 {
		return nil, newErrorf(KindUsage, "no firmware images specified")
	}

	var selection *DeviceSelection
	if cfg.Update || cfg.UpdateQdl || cfg.Reset {
		var err error
		selection, err = NewDeviceSelection(cfg.CdcWdmPath, cfg.TTYPath, cfg.BusDev, cfg.VidPid)
		if err != nil {
			return nil, err
		}
	}

	var openFlags DeviceOpenFlags
	if cfg.Update || cfg.Reset {
		var err error
		openFlags, err = ResolveOpenFlags(cfg.OpenProxy, cfg.OpenQMI, cfg.OpenMBIM, cfg.OpenAuto)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case cfg.Update:
		// Index 0 flags "no specific slot requested"; the valid explicit
		// range is 1..255.
		if cfg.ModemStorageIndex < 0 || cfg.ModemStorageIndex > math.MaxUint8 {
			return nil, newErrorf(KindRange, "invalid modem storage index")
		}
		return &UpdateRequest{
			Images:              cfg.Images,
			Selection:           selection,
			FirmwareVersion:     cfg.FirmwareVersion,
			ConfigVersion:       cfg.ConfigVersion,
			Carrier:             cfg.Carrier,
			OpenFlags:           openFlags,
			IgnoreVersionErrors: cfg.IgnoreVersionErrors,
			OverrideDownload:    cfg.OverrideDownload,
			StorageIndex:        uint8(cfg.ModemStorageIndex),
			SkipValidation:      cfg.SkipValidation,
		}, nil
	case cfg.UpdateQdl:
		return &UpdateQdlRequest{Images: cfg.Images, Selection: selection}, nil
	case cfg.Reset:
		return &ResetRequest{Selection: selection, OpenFlags: openFlags}, nil
	default:
		return &VerifyRequest{Images: cfg.Images}, nil
	}
}
