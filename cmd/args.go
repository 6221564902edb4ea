package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kiki-couriers/courier-sim/sim"
)

var (
	// errMissingBaseCost is returned when the first argument is absent or not an integer.
	errMissingBaseCost = errors.New("base delivery cost must be an integer")
	// errNoPackages is returned when the package count is absent, non-numeric or zero.
	errNoPackages = errors.New("at least one package is required")
	// errArgCount is returned when the argument list does not match the declared package count.
	errArgCount = errors.New("argument count does not match number of packages")
)

// argsPerPackage is the number of positional fields describing one package:
// id, weight, distance, offer code.
const argsPerPackage = 4

// fleetArgs is the number of trailing positional fields for the deliver command:
// vehicles, max speed, max carriable weight.
const fleetArgs = 3

// noOfferTokens are the placeholders accepted for "no offer code".
var noOfferTokens = map[string]bool{"NA": true, "-": true}

// packageArgs is the result of parsing the positional package list.
type packageArgs struct {
	BaseDeliveryCost int
	Packages         []sim.Package
	Fleet            *sim.FleetConfig // nil unless fleet fields were parsed
}

// parseCostArgs parses `BASE N [ID WEIGHT DISTANCE OFFER]...`.
func parseCostArgs(args []string) (*packageArgs, error) {
	return parsePositional(args, false)
}

// parseDeliverArgs parses `BASE N [ID WEIGHT DISTANCE OFFER]... VEHICLES SPEED MAXLOAD`.
func parseDeliverArgs(args []string) (*packageArgs, error) {
	return parsePositional(args, true)
}

func parsePositional(args []string, withFleet bool) (*packageArgs, error) {
	if len(args) < 1 {
		return nil, errMissingBaseCost
	}
	base, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w, got %q", errMissingBaseCost, args[0])
	}
	if len(args) < 2 {
		return nil, errNoPackages
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w, got %q", errNoPackages, args[1])
	}

	want := 2 + n*argsPerPackage
	if withFleet {
		want += fleetArgs
	}
	if len(args) != want {
		return nil, fmt.Errorf("%w: %d packages need %d arguments, got %d", errArgCount, n, want, len(args))
	}

	out := &packageArgs{BaseDeliveryCost: base, Packages: make([]sim.Package, 0, n)}
	for i := 0; i < n; i++ {
		fields := args[2+i*argsPerPackage : 2+(i+1)*argsPerPackage]
		p, err := parsePackage(fields, i)
		if err != nil {
			return nil, err
		}
		out.Packages = append(out.Packages, p)
	}

	if withFleet {
		fleet, err := parseFleet(args[len(args)-fleetArgs:])
		if err != nil {
			return nil, err
		}
		out.Fleet = &fleet
	}
	return out, nil
}

func parsePackage(fields []string, idx int) (sim.Package, error) {
	prefix := fmt.Sprintf("package[%d] (%s)", idx, fields[0])
	weight, err := strconv.Atoi(fields[1])
	if err != nil || weight <= 0 {
		return sim.Package{}, fmt.Errorf("%s: weight must be a positive integer, got %q", prefix, fields[1])
	}
	distance, err := strconv.Atoi(fields[2])
	if err != nil || distance < 0 {
		return sim.Package{}, fmt.Errorf("%s: distance must be a non-negative integer, got %q", prefix, fields[2])
	}
	code := fields[3]
	if noOfferTokens[code] {
		code = ""
	}
	return sim.NewPackage(fields[0], weight, distance, code), nil
}

func parseFleet(fields []string) (sim.FleetConfig, error) {
	names := [fleetArgs]string{"vehicles", "max speed", "max carriable weight"}
	var vals [fleetArgs]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return sim.FleetConfig{}, fmt.Errorf("%s must be an integer, got %q", names[i], f)
		}
		vals[i] = v
	}
	fleet := sim.NewFleetConfig(vals[0], vals[1], vals[2])
	if err := fleet.Validate(); err != nil {
		return sim.FleetConfig{}, err
	}
	return fleet, nil
}
