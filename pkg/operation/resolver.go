package operation

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	qfu "github.com/modem-tools/qfu"
)

// Resolver is the default qfu.DeviceResolver. Path-based selections are
// checked for existence up front; bus/dev and vid/pid matching is deferred
// to the transport, which probes the USB tree once the operation starts.
type Resolver struct{}

// ResolveDeviceSelection validates the criteria and wraps them in a handle
// owned by the dispatcher until the operation returns.
func (Resolver) ResolveDeviceSelection(ctx context.Context, sel *qfu.DeviceSelection) (qfu.DeviceHandle, error) {
	switch sel.Scheme() {
	case qfu.SchemeCdcWdm, qfu.SchemeTTY:
		if _, err := os.Stat(sel.Path()); err != nil {
			return nil, errors.Wrapf(err, "device path %s", sel.Path())
		}
	}
	log.Debug().Stringer("selection", sel).Msg("device selection resolved")
	return &handle{sel: sel}, nil
}

type handle struct {
	sel    *qfu.DeviceSelection
	closed bool
}

func (h *handle) Selection() *qfu.DeviceSelection {
	return h.sel
}

func (h *handle) Close() error {
	if h.closed {
		return errors.New("device handle already closed")
	}
	h.closed = true
	log.Debug().Stringer("selection", h.sel).Msg("device selection released")
	return nil
}
