package qfu

import "strings"

// DeviceOpenFlags is the merged open policy for the QMI/MBIM session. The
// zero value opens the port in plain QMI mode.
type DeviceOpenFlags uint8

const (
	// OpenProxy routes the session through the qmi-proxy daemon.
	OpenProxy DeviceOpenFlags = 1 << iota
	// OpenMBIM opens the cdc-wdm port explicitly in MBIM mode.
	OpenMBIM
	// OpenAuto probes the port and picks QMI or MBIM automatically.
	OpenAuto
)

// Has reports whether every bit in mask is set.
func (f DeviceOpenFlags) Has(mask DeviceOpenFlags) bool {
	return f&mask == mask
}

func (f DeviceOpenFlags) String() string {
	parts := make([]string, 0, 3)
	if f.Has(OpenProxy) {
		parts = append(parts, "proxy")
	}
	switch {
	case f.Has(OpenMBIM):
		parts = append(parts, "mbim")
	case f.Has(OpenAuto):
		parts = append(parts, "auto")
	default:
		parts = append(parts, "qmi")
	}
	return strings.Join(parts, ",")
}

// ResolveOpenFlags merges the four independent open-mode booleans into one
// policy. At most one of qmi/mbim/auto may be requested; requesting none of
// them defaults to auto. Proxy combines with any mode.
func ResolveOpenFlags(proxy, qmi, mbim, auto bool) (DeviceOpenFlags, error) {
	modes := 0
	for _, set := range []bool{qmi, mbim, auto} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return 0, newErrorf(KindConfig, "cannot specify multiple mode flags to open device")
	}

	var flags DeviceOpenFlags
	if proxy {
		flags |= OpenProxy
	}
	if mbim {
		flags |= OpenMBIM
	}
	if auto || (!qmi && !mbim) {
		flags |= OpenAuto
	}
	return flags, nil
}
