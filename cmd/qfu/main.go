package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	qfu "github.com/modem-tools/qfu"
	"github.com/modem-tools/qfu/internal/config"
	"github.com/modem-tools/qfu/internal/qfulog"
	"github.com/modem-tools/qfu/pkg/operation"
)

// version is overridden at build time via -ldflags.
var version = "dev"

type options struct {
	cfg qfu.Config

	verbose    bool
	silent     bool
	verboseLog string
	dryRun     bool

	showVersion  bool
	showExamples bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "qfu [flags] FILE1 FILE2...",
		Short:         "Update firmware in QMI devices",
		Long:          "qfu flashes firmware images into cellular modems speaking QMI, or QDL while in download mode. Select the target device, pick exactly one action and pass the firmware image files as arguments.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "qfu %s\n", version)
				return nil
			}
			if opts.showExamples {
				fmt.Fprint(cmd.OutOrStdout(), helpExamples)
				return nil
			}

			shutdown, err := qfulog.Init(opts.verbose, opts.silent, opts.verboseLog)
			if err != nil {
				return err
			}
			defer shutdown()

			opts.cfg.Images = args
			req, err := qfu.SelectAction(opts.cfg)
			if err != nil {
				return err
			}
			dispatcher := &qfu.Dispatcher{
				Resolver: operation.Resolver{},
				Ops:      &operation.Runner{DryRun: opts.dryRun},
			}
			return dispatcher.Dispatch(cmd.Context(), req)
		},
	}

	flags := cmd.Flags()

	// Generic device selection.
	flags.VarP(busDevValue{id: &opts.cfg.BusDev}, "busnum-devnum", "s", "Select device by bus and device number (in decimal)")
	flags.VarP(vidPidValue{id: &opts.cfg.VidPid}, "vid-pid", "d", "Select device by device vendor and product id (in hexadecimal)")
	flags.StringVarP(&opts.cfg.CdcWdmPath, "cdc-wdm", "w", "", "Select device by QMI/MBIM cdc-wdm device path (e.g. /dev/cdc-wdm0)")
	flags.StringVarP(&opts.cfg.TTYPath, "tty", "t", "", "Select device by serial device path (e.g. /dev/ttyUSB2)")

	// Actions.
	flags.BoolVarP(&opts.cfg.Update, "update", "u", false, "Launch firmware update process")
	flags.BoolVarP(&opts.cfg.UpdateQdl, "update-qdl", "U", false, "Launch firmware update process in QDL mode")
	flags.BoolVarP(&opts.cfg.Reset, "reset", "b", false, "Reset device into QDL download mode")
	flags.BoolVarP(&opts.cfg.Verify, "verify", "z", false, "Analyze and verify firmware images")

	// Update modifiers.
	flags.StringVarP(&opts.cfg.FirmwareVersion, "firmware-version", "f", "", "Firmware version (e.g. '05.05.58.00')")
	flags.StringVarP(&opts.cfg.ConfigVersion, "config-version", "c", "", "Config version (e.g. '005.025_002')")
	flags.StringVarP(&opts.cfg.Carrier, "carrier", "C", "", "Carrier name (e.g. 'Generic')")
	flags.BoolVar(&opts.cfg.IgnoreVersionErrors, "ignore-version-errors", false, "Run update operation even with version string errors")
	flags.BoolVar(&opts.cfg.OverrideDownload, "override-download", false, "Download images even if module says it already has them")
	flags.IntVar(&opts.cfg.ModemStorageIndex, "modem-storage-index", 0, "Index storage for the modem image")
	flags.BoolVar(&opts.cfg.SkipValidation, "skip-validation", false, "Don't wait to validate the running firmware after update")

	// Device open mode.
	flags.BoolVarP(&opts.cfg.OpenProxy, "device-open-proxy", "p", config.Bool("QFU_DEVICE_OPEN_PROXY", false), "Request to use the 'qmi-proxy' proxy")
	flags.BoolVar(&opts.cfg.OpenQMI, "device-open-qmi", false, "Open a cdc-wdm device explicitly in QMI mode")
	flags.BoolVar(&opts.cfg.OpenMBIM, "device-open-mbim", false, "Open a cdc-wdm device explicitly in MBIM mode")
	flags.BoolVar(&opts.cfg.OpenAuto, "device-open-auto", false, "Open a cdc-wdm device in either QMI or MBIM mode (default)")

	// Logging and run control.
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Run action with verbose messages in standard output, including the debug ones")
	flags.BoolVarP(&opts.silent, "silent", "S", false, "Run action with no messages in standard output; not even the error ones")
	flags.StringVarP(&opts.verboseLog, "verbose-log", "L", config.String("QFU_VERBOSE_LOG", ""), "Write verbose messages to an output file")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", config.Bool("QFU_DRY_RUN", false), "Validate and print the plan without touching the device")
	flags.BoolVarP(&opts.showVersion, "version", "V", false, "Print version")
	flags.BoolVarP(&opts.showExamples, "help-examples", "H", false, "Show help examples")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
