package qfu

import (
	"math"
	"strconv"
	"strings"
)

// BusDevID identifies a device by its USB bus and device numbers, both in
// decimal. Bus 0 means "any bus"; Dev is always set on a valid identifier.
type BusDevID struct {
	Bus uint32
	Dev uint32
}

// IsZero reports whether no bus/dev identifier was supplied.
func (id BusDevID) IsZero() bool {
	return id.Bus == 0 && id.Dev == 0
}

func (id BusDevID) String() string {
	if id.Bus == 0 {
		return strconv.FormatUint(uint64(id.Dev), 10)
	}
	return strconv.FormatUint(uint64(id.Bus), 10) + ":" + strconv.FormatUint(uint64(id.Dev), 10)
}

// ParseBusDev parses a "[BUS:]DEV" token. A single field is taken as the
// device number alone; two fields are bus then device. Values are base-10,
// must be non-zero and fit in 32 bits.
func ParseBusDev(text string) (BusDevID, error) {
	fields := strings.Split(text, ":")
	if len(fields) > 2 {
		return BusDevID{}, newErrorf(KindFormat, "invalid busnum-devnum string: too many fields")
	}

	var id BusDevID
	devField := fields[0]
	if len(fields) == 2 {
		bus, err := parseDecimal(fields[0])
		if err != nil || bus == 0 {
			return BusDevID{}, wrapErrorf(KindFormat, err, "invalid bus number: %s", fields[0])
		}
		id.Bus = bus
		devField = fields[1]
	}

	dev, err := parseDecimal(devField)
	if err != nil || dev == 0 {
		return BusDevID{}, wrapErrorf(KindFormat, err, "invalid dev number: %s", devField)
	}
	id.Dev = dev
	return id, nil
}

func parseDecimal(field string) (uint32, error) {
	val, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, err
	}
	if val > math.MaxUint32 {
		return 0, strconv.ErrRange
	}
	return uint32(val), nil
}
