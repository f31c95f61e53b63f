package qfu

import (
	"context"

	"github.com/pkg/errors"
)

// DeviceHandle is a resolved device-selection resource. It stays owned by
// the dispatcher for the duration of the operation and is closed exactly
// once when the operation returns.
type DeviceHandle interface {
	Selection() *DeviceSelection
	Close() error
}

// DeviceResolver turns selection criteria into a device handle. Resolution
// failures surface as selection errors.
type DeviceResolver interface {
	ResolveDeviceSelection(ctx context.Context, sel *DeviceSelection) (DeviceHandle, error)
}

// Operations groups the four long-running entry points this front end
// dispatches to. Implementations own all device I/O and protocol exchanges;
// a nil return means success.
type Operations interface {
	RunUpdate(ctx context.Context, req *UpdateRequest, dev DeviceHandle) error
	RunUpdateQdl(ctx context.Context, req *UpdateQdlRequest, dev DeviceHandle) error
	RunReset(ctx context.Context, req *ResetRequest, dev DeviceHandle) error
	RunVerify(ctx context.Context, req *VerifyRequest) error
}

// Dispatcher routes one validated action request to its operation. At most
// one operation runs per invocation.
type Dispatcher struct {
	Resolver DeviceResolver
	Ops      Operations
}

// Dispatch resolves the device selection when the action needs one, invokes
// the matching operation and releases the handle on every path. The
// operation's own failure is passed through untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, req ActionRequest) error {
	switch r := req.(type) {
	case *UpdateRequest:
		dev, err := d.resolve(ctx, r.Selection)
		if err != nil {
			return err
		}
		defer dev.Close()
		return d.Ops.RunUpdate(ctx, r, dev)
	case *UpdateQdlRequest:
		dev, err := d.resolve(ctx, r.Selection)
		if err != nil {
			return err
		}
		defer dev.Close()
		return d.Ops.RunUpdateQdl(ctx, r, dev)
	case *ResetRequest:
		dev, err := d.resolve(ctx, r.Selection)
		if err != nil {
			return err
		}
		defer dev.Close()
		return d.Ops.RunReset(ctx, r, dev)
	case *VerifyRequest:
		return d.Ops.RunVerify(ctx, r)
	default:
		return errors.Errorf("unknown action request %T", req)
	}
}

func (d *Dispatcher) resolve(ctx context.Context, sel *DeviceSelection) (DeviceHandle, error) {
	dev, err := d.Resolver.ResolveDeviceSelection(ctx, sel)
	if err != nil {
		return nil, &Error{Kind: KindSelection, Message: "couldn't select device: " + err.Error(), Cause: err}
	}
	return dev, nil
}
