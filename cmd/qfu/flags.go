package main

import (
	"github.com/spf13/pflag"

	qfu "github.com/modem-tools/qfu"
)

var (
	_ pflag.Value = busDevValue{}
	_ pflag.Value = vidPidValue{}
)

// busDevValue binds --busnum-devnum to a parsed BusDevID so malformed
// tokens fail during flag parsing, before any action logic runs.
type busDevValue struct {
	id *qfu.BusDevID
}

func (v busDevValue) String() string {
	if v.id == nil || v.id.IsZero() {
		return ""
	}
	return v.id.String()
}

func (v busDevValue) Set(text string) error {
	id, err := qfu.ParseBusDev(text)
	if err != nil {
		return err
	}
	*v.id = id
	return nil
}

func (v busDevValue) Type() string {
	return "[BUS:]DEV"
}

// vidPidValue binds --vid-pid to a parsed VidPidID.
type vidPidValue struct {
	id *qfu.VidPidID
}

func (v vidPidValue) String() string {
	if v.id == nil || v.id.IsZero() {
		return ""
	}
	return v.id.String()
}

func (v vidPidValue) Set(text string) error {
	id, err := qfu.ParseVidPid(text)
	if err != nil {
		return err
	}
	*v.id = id
	return nil
}

func (v vidPidValue) Type() string {
	return "VID[:PID]"
}
