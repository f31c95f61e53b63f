// Package operation carries the reference implementation of the qfu
// operation entry points. Verify works entirely on local files; the device
// actions validate their image sets and either print the flashing plan in
// dry-run mode or report that no QDL/QMI transport is built in. Real
// transports plug in by providing their own qfu.Operations.
package operation

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	qfu "github.com/modem-tools/qfu"
)

// ErrNoTransport is returned by the device actions when no flashing backend
// is available and dry-run was not requested.
var ErrNoTransport = errors.New("no device transport built in (use --dry-run to inspect the plan)")

// Runner implements qfu.Operations.
type Runner struct {
	// DryRun makes update, update-qdl and reset log their validated plan
	// and succeed without touching the device.
	DryRun bool
}

// RunVerify stats every image, rejects unreadable or empty files and logs
// name, kind and size for each one.
func (r *Runner) RunVerify(ctx context.Context, req *qfu.VerifyRequest) error {
	for _, image := range req.Images {
		if err := ctx.Err(); err != nil {
			return err
		}
		size, err := checkImage(image)
		if err != nil {
			return err
		}
		log.Info().
			Str("image", image).
			Str("kind", string(KindOfImage(image))).
			Int64("size", size).
			Msg("firmware image verified")
	}
	return nil
}

// RunUpdate validates the image set and runs the full update plan.
func (r *Runner) RunUpdate(ctx context.Context, req *qfu.UpdateRequest, dev qfu.DeviceHandle) error {
	if err := checkImages(ctx, req.Images); err != nil {
		return err
	}
	plan := log.Info().
		Stringer("device", dev.Selection()).
		Strs("images", req.Images).
		Stringer("open_flags", req.OpenFlags).
		Bool("ignore_version_errors", req.IgnoreVersionErrors).
		Bool("override_download", req.OverrideDownload).
		Bool("skip_validation", req.SkipValidation)
	if req.FirmwareVersion != "" {
		plan = plan.Str("firmware_version", req.FirmwareVersion)
	}
	if req.ConfigVersion != "" {
		plan = plan.Str("config_version", req.ConfigVersion)
	}
	if req.Carrier != "" {
		plan = plan.Str("carrier", req.Carrier)
	}
	if req.StorageIndex != 0 {
		plan = plan.Uint8("storage_index", req.StorageIndex)
	}
	plan.Msg("update plan")

	if r.DryRun {
		log.Info().Msg("dry run: skipping firmware download")
		return nil
	}
	return ErrNoTransport
}

// RunUpdateQdl validates the image set and flashes a device already in QDL
// download mode.
func (r *Runner) RunUpdateQdl(ctx context.Context, req *qfu.UpdateQdlRequest, dev qfu.DeviceHandle) error {
	if err := checkImages(ctx, req.Images); err != nil {
		return err
	}
	log.Info().
		Stringer("device", dev.Selection()).
		Strs("images", req.Images).
		Msg("QDL update plan")

	if r.DryRun {
		log.Info().Msg("dry run: skipping QDL download")
		return nil
	}
	return ErrNoTransport
}

// RunReset reboots the device into QDL download mode.
func (r *Runner) RunReset(ctx context.Context, req *qfu.ResetRequest, dev qfu.DeviceHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Info().
		Stringer("device", dev.Selection()).
		Stringer("open_flags", req.OpenFlags).
		Msg("reset plan")

	if r.DryRun {
		log.Info().Msg("dry run: skipping reset")
		return nil
	}
	return ErrNoTransport
}

func checkImages(ctx context.Context, images []string) error {
	for _, image := range images {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := checkImage(image); err != nil {
			return err
		}
	}
	return nil
}

func checkImage(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrapf(err, "firmware image %s", path)
	}
	if !info.Mode().IsRegular() {
		return 0, errors.Errorf("firmware image %s: not a regular file", path)
	}
	if info.Size() == 0 {
		return 0, errors.Errorf("firmware image %s: empty file", path)
	}
	return info.Size(), nil
}
