package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kiki-couriers/courier-sim/sim"
	"github.com/kiki-couriers/courier-sim/sim/manifest"
	"github.com/kiki-couriers/courier-sim/sim/trace"
)

var (
	logLevel     string // Log verbosity level
	envFile      string // Path to a .env file
	offersPath   string // Offers catalog YAML; empty means built-in offers
	manifestPath string // Manifest YAML replacing positional arguments
	traceLevel   string // Trip trace level: none, trips
	showSummary  bool   // Print the run summary to stderr
	summaryJSON  string // Write the run summary as JSON to this path
)

// runOptions carries the resolved flag values into a single command run.
type runOptions struct {
	OffersPath   string
	ManifestPath string
	TraceLevel   string
	ShowSummary  bool
	SummaryJSON  string
}

func currentOptions() runOptions {
	return runOptions{
		OffersPath:   offersPath,
		ManifestPath: manifestPath,
		TraceLevel:   traceLevel,
		ShowSummary:  showSummary,
		SummaryJSON:  summaryJSON,
	}
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "courier-sim",
	Short: "Delivery cost estimator and dispatch simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := loadEnvFile(envFile); err != nil {
			logrus.Fatalf("%v", err)
		}
		applyEnvDefaults(cmd)

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// costCmd prices packages without dispatching them
var costCmd = &cobra.Command{
	Use:   "cost BASE_COST N [ID WEIGHT DISTANCE OFFER]...",
	Short: "Estimate discount and delivery cost for each package",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCost(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, currentOptions()); err != nil {
			logrus.Fatalf("cost: %v", err)
		}
	},
}

// deliverCmd prices packages and simulates their dispatch
var deliverCmd = &cobra.Command{
	Use:   "deliver BASE_COST N [ID WEIGHT DISTANCE OFFER]... VEHICLES MAX_SPEED MAX_LOAD",
	Short: "Estimate cost and delivery time for each package",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDeliver(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, currentOptions()); err != nil {
			logrus.Fatalf("deliver: %v", err)
		}
	},
}

// runCost prints `ID DISCOUNT COST` for each package in input order.
func runCost(out, diag io.Writer, args []string, opts runOptions) error {
	log := logrus.WithField("run", uuid.NewString())

	in, err := resolveInput(args, false, opts.ManifestPath)
	if err != nil {
		return err
	}
	catalog, err := resolveOfferCatalog(opts.OffersPath)
	if err != nil {
		return err
	}
	log.Infof("estimating %d packages, base cost %d, %d offers", len(in.Packages), in.BaseDeliveryCost, catalog.Len())

	priced, metrics, err := sim.Estimate(in.BaseDeliveryCost, in.Packages, catalog)
	if err != nil {
		return err
	}
	for _, p := range priced {
		fmt.Fprintf(out, "%s %d %d\n", p.ID, p.DiscountAmount, p.DeliveryCost)
	}
	return reportMetrics(diag, metrics, opts)
}

// runDeliver prints `ID DISCOUNT COST TIME` for each package in input order.
func runDeliver(out, diag io.Writer, args []string, opts runOptions) error {
	log := logrus.WithField("run", uuid.NewString())

	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: %s, %s", opts.TraceLevel, trace.TraceLevelNone, trace.TraceLevelTrips)
	}
	in, err := resolveInput(args, true, opts.ManifestPath)
	if err != nil {
		return err
	}
	catalog, err := resolveOfferCatalog(opts.OffersPath)
	if err != nil {
		return err
	}
	log.Infof("dispatching %d packages on %d vehicles (speed %d, max load %d)",
		len(in.Packages), in.Fleet.NumVehicles, in.Fleet.MaxSpeed, in.Fleet.MaxCarriableWeight)

	res, err := sim.Run(sim.RunInput{
		BaseDeliveryCost: in.BaseDeliveryCost,
		Packages:         in.Packages,
		Catalog:          catalog,
		Fleet:            *in.Fleet,
		Trace:            trace.TraceConfig{Level: trace.TraceLevel(opts.TraceLevel)},
	})
	if err != nil {
		return err
	}
	for _, p := range res.Packages {
		fmt.Fprintf(out, "%s %d %d %.2f\n", p.ID, p.DiscountAmount, p.DeliveryCost, p.DeliveredAt)
	}
	if res.Trace != nil {
		printTrace(diag, res.Trace)
	}
	return reportMetrics(diag, res.Metrics, opts)
}

// resolveInput reads packages (and the fleet when withFleet is set) from the
// manifest if one is given, otherwise from positional arguments.
func resolveInput(args []string, withFleet bool, manifestFile string) (*packageArgs, error) {
	if manifestFile == "" {
		if withFleet {
			return parseDeliverArgs(args)
		}
		return parseCostArgs(args)
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("--manifest cannot be combined with positional arguments")
	}

	m, err := manifest.Load(manifestFile)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", manifestFile, err)
	}
	in := &packageArgs{BaseDeliveryCost: m.BaseDeliveryCost, Packages: m.SimPackages()}
	if withFleet {
		if m.Fleet == nil {
			return nil, fmt.Errorf("manifest %s has no fleet section", manifestFile)
		}
		fleet := m.FleetConfig()
		in.Fleet = &fleet
	}
	return in, nil
}

func reportMetrics(diag io.Writer, metrics *sim.Metrics, opts runOptions) error {
	if opts.ShowSummary {
		metrics.Print(diag)
	}
	if opts.SummaryJSON != "" {
		if err := metrics.SaveJSON(opts.SummaryJSON); err != nil {
			return err
		}
		logrus.Infof("run summary written to %s", opts.SummaryJSON)
	}
	return nil
}

func printTrace(w io.Writer, dt *trace.DispatchTrace) {
	for _, r := range dt.Trips {
		fmt.Fprintf(w, "trip %03d  vehicle %02d  %6.2fh -> %6.2fh  %4dkg  %v\n",
			r.Trip, r.Vehicle, r.DepartAt, r.ReturnAt, r.Load, r.PackageIDs)
	}
	s := trace.Summarize(dt)
	fmt.Fprintf(w, "trips=%d packages=%d max_load=%dkg mean_load=%.1fkg last_return=%.2fh\n",
		s.TotalTrips, s.TotalPackages, s.MaxLoad, s.MeanLoad, s.LastReturn)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File of KEY=VALUE pairs loaded into the environment")
	rootCmd.PersistentFlags().StringVar(&offersPath, "offers", "", "Offers catalog YAML (default: built-in offers)")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "Manifest YAML used instead of positional arguments")
	rootCmd.PersistentFlags().BoolVar(&showSummary, "summary", false, "Print the run summary to stderr")
	rootCmd.PersistentFlags().StringVar(&summaryJSON, "summary-json", "", "Write the run summary as JSON to this file")

	deliverCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Trip trace level (none, trips); trips are printed to stderr")

	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(deliverCmd)
}
