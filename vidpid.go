package qfu

import (
	"fmt"
	"strconv"
	"strings"
)

// VidPidID identifies a device by its USB vendor and product ids, both in
// hexadecimal. Pid 0 means "any product"; Vid is always set on a valid
// identifier.
type VidPidID struct {
	Vid uint16
	Pid uint16
}

// IsZero reports whether no vid/pid identifier was supplied.
func (id VidPidID) IsZero() bool {
	return id.Vid == 0 && id.Pid == 0
}

func (id VidPidID) String() string {
	if id.Pid == 0 {
		return fmt.Sprintf("%04x", id.Vid)
	}
	return fmt.Sprintf("%04x:%04x", id.Vid, id.Pid)
}

// ParseVidPid parses a "VID[:PID]" token. A single field is taken as the
// vendor id alone. Values are base-16, must be non-zero and fit in 16 bits.
func ParseVidPid(text string) (VidPidID, error) {
	fields := strings.Split(text, ":")
	if len(fields) > 2 {
		return VidPidID{}, newErrorf(KindFormat, "invalid vid-pid string: too many fields")
	}

	var id VidPidID
	if len(fields) == 2 {
		pid, err := parseHex16(fields[1])
		if err != nil || pid == 0 {
			return VidPidID{}, wrapErrorf(KindFormat, err, "invalid product id: %s", fields[1])
		}
		id.Pid = pid
	}

	vid, err := parseHex16(fields[0])
	if err != nil || vid == 0 {
		return VidPidID{}, wrapErrorf(KindFormat, err, "invalid vendor id: %s", fields[0])
	}
	id.Vid = vid
	return id, nil
}

func parseHex16(field string) (uint16, error) {
	val, err := strconv.ParseUint(field, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(val), nil
}
