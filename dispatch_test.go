package qfu

import (
	"context"
	"errors"
	"testing"
)

type stubHandle struct {
	sel    *DeviceSelection
	closed int
}

func (h *stubHandle) Selection() *DeviceSelection { return h.sel }

func (h *stubHandle) Close() error {
	h.closed++
	return nil
}

type stubResolver struct {
	calls  int
	err    error
	handle *stubHandle
}

func (r *stubResolver) ResolveDeviceSelection(ctx context.Context, sel *DeviceSelection) (DeviceHandle, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	r.handle = &stubHandle{sel: sel}
	return r.handle, nil
}

type stubOps struct {
	updates    int
	qdlUpdates int
	resets     int
	verifies   int
	err        error
}

func (o *stubOps) RunUpdate(ctx context.Context, req *UpdateRequest, dev DeviceHandle) error {
	o.updates++
	return o.err
}

func (o *stubOps) RunUpdateQdl(ctx context.Context, req *UpdateQdlRequest, dev DeviceHandle) error {
	o.qdlUpdates++
	return o.err
}

func (o *stubOps) RunReset(ctx context.Context, req *ResetRequest, dev DeviceHandle) error {
	o.resets++
	return o.err
}

func (o *stubOps) RunVerify(ctx context.Context, req *VerifyRequest) error {
	o.verifies++
	return o.err
}

func (o *stubOps) total() int {
	return o.updates + o.qdlUpdates + o.resets + o.verifies
}

func mustSelect(t *testing.T, cfg Config) ActionRequest {
	t.Helper()
	req, err := SelectAction(cfg)
	if err != nil {
		t.Fatalf("SelectAction returned error: %v", err)
	}
	return req
}

// Scenario: --update -d 1199:68c0 file1.cwe file2.nvu dispatches RunUpdate
// exactly once and releases the handle.
func TestDispatchUpdateOnce(t *testing.T) {
	resolver := &stubResolver{}
	ops := &stubOps{}
	d := &Dispatcher{Resolver: resolver, Ops: ops}

	req := mustSelect(t, Config{
		Update: true,
		VidPid: VidPidID{Vid: 0x1199, Pid: 0x68c0},
		Images: []string{"file1.cwe", "file2.nvu"},
	})
	if err := d.Dispatch(context.Background(), req); err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if ops.updates != 1 || ops.total() != 1 {
		t.Fatalf("operation calls = %+v, want exactly one update", ops)
	}
	if resolver.calls != 1 {
		t.Fatalf("resolver calls = %d, want 1", resolver.calls)
	}
	if resolver.handle.closed != 1 {
		t.Fatalf("handle closed %d times, want 1", resolver.handle.closed)
	}
}

func TestDispatchReleasesHandleOnFailure(t *testing.T) {
	resolver := &stubResolver{}
	opErr := errors.New("download failed")
	ops := &stubOps{err: opErr}
	d := &Dispatcher{Resolver: resolver, Ops: ops}

	req := mustSelect(t, Config{Reset: true, BusDev: BusDevID{Bus: 1, Dev: 2}})
	err := d.Dispatch(context.Background(), req)
	if !errors.Is(err, opErr) {
		t.Fatalf("Dispatch error = %v, want operation failure passed through", err)
	}
	if ops.resets != 1 || ops.total() != 1 {
		t.Fatalf("operation calls = %+v, want exactly one reset", ops)
	}
	if resolver.handle.closed != 1 {
		t.Fatalf("handle closed %d times, want 1", resolver.handle.closed)
	}
}

func TestDispatchResolverFailure(t *testing.T) {
	resolver := &stubResolver{err: errors.New("device not found")}
	ops := &stubOps{}
	d := &Dispatcher{Resolver: resolver, Ops: ops}

	req := mustSelect(t, Config{UpdateQdl: true, TTYPath: "/dev/ttyUSB0", Images: []string{"a.cwe"}})
	err := d.Dispatch(context.Background(), req)
	if err == nil {
		t.Fatal("Dispatch succeeded despite resolver failure")
	}
	if KindOf(err) != KindSelection {
		t.Fatalf("kind = %q, want %q", KindOf(err), KindSelection)
	}
	if ops.total() != 0 {
		t.Fatalf("operation calls = %+v, want none", ops)
	}
}

func TestDispatchVerifySkipsResolution(t *testing.T) {
	resolver := &stubResolver{err: errors.New("should not be called")}
	ops := &stubOps{}
	d := &Dispatcher{Resolver: resolver, Ops: ops}

	req := mustSelect(t, Config{Verify: true, Images: []string{"a.cwe"}})
	if err := d.Dispatch(context.Background(), req); err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if resolver.calls != 0 {
		t.Fatalf("resolver calls = %d, want 0", resolver.calls)
	}
	if ops.verifies != 1 || ops.total() != 1 {
		t.Fatalf("operation calls = %+v, want exactly one verify", ops)
	}
}
