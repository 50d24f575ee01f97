// Command cmcrun drives the constrained Monte Carlo integrator from the
// command line: parse flags, build a driver, run K sweeps, report counters.
// SIGINT cancels every in-flight replica between sweeps and each reports
// whatever it completed.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/sarat-asymmetrica/cmcspin/internal/cmc"
	"github.com/sarat-asymmetrica/cmcspin/internal/cmcerr"
	"github.com/sarat-asymmetrica/cmcspin/internal/energy"
	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

var (
	n           = flag.Int("n", 1000, "number of spin sites")
	phi         = flag.Float64("phi", 0, "constraint polar angle, degrees")
	theta       = flag.Float64("theta", 0, "constraint azimuthal angle, degrees")
	temperature = flag.Float64("temp", 300, "temperature, kelvin")
	sweeps      = flag.Int("sweeps", 100, "number of sweeps to run")
	seed        = flag.Int64("seed", 42, "RNG seed")
	replicas    = flag.Int("replicas", 1, "number of independent replicas to run concurrently")
	exchangeJ   = flag.Float64("exchange", 0, "exchange constant J, joules")
	anisotropyK = flag.Float64("anisotropy", 0, "uniaxial anisotropy constant, joules")
	muS         = flag.Float64("mu_s", 9.27400915e-24, "per-site magnetic moment, joules/tesla")
	debug       = flag.Bool("debug", false, "log per-sweep acceptance ratio")
)

// Report is the JSON shape emitted to stdout for one replica.
type Report struct {
	Replica         int     `json:"replica"`
	Successes       int     `json:"successes"`
	EnergyRejects   int     `json:"energy_rejects"`
	SphereRejects   int     `json:"sphere_rejects"`
	Total           int     `json:"total_trials"`
	AcceptanceRatio float64 `json:"acceptance_ratio"`
	Mx              float64 `json:"mx"`
	My              float64 `json:"my"`
	Mz              float64 `json:"mz"`
	Cancelled       bool    `json:"cancelled,omitempty"`
}

func buildReport(replica int, driver *cmc.Driver) Report {
	stats := driver.Stats()
	mx, my, mz := driver.Magnetization()
	return Report{
		Replica:         replica,
		Successes:       stats.Successes,
		EnergyRejects:   stats.EnergyRejects,
		SphereRejects:   stats.SphereRejects,
		Total:           stats.Total,
		AcceptanceRatio: stats.AcceptanceRatio,
		Mx:              mx,
		My:              my,
		Mz:              mz,
	}
}

func main() {
	flag.Parse()

	if *replicas < 1 {
		log.Fatalf("replicas must be >= 1, got %d", *replicas)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports := make([]Report, *replicas)
	var wg sync.WaitGroup
	errs := make([]error, *replicas)

	for r := 0; r < *replicas; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			report, err := runReplica(ctx, r, *seed+int64(r))
			reports[r] = report
			errs[r] = err
		}(r)
	}
	wg.Wait()

	for r, err := range errs {
		if err != nil {
			log.Fatalf("replica %d: %v", r, err)
		}
	}
	if ctx.Err() != nil {
		log.Printf("interrupted: reporting %d replica(s) as completed so far", *replicas)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func runReplica(ctx context.Context, replica int, replicaSeed int64) (Report, error) {
	materials := make([]uint16, *n)
	field, err := spin.NewField(*n, materials)
	if err != nil {
		return Report{}, fmt.Errorf("replica %d: %w", replica, err)
	}

	table, err := spin.NewMaterialTable([]float64{*muS})
	if err != nil {
		return Report{}, fmt.Errorf("replica %d: %w", replica, err)
	}

	positions := make([]energy.Position, *n)
	for i := range positions {
		positions[i] = energy.Position{X: float64(i), Y: 0, Z: 0}
	}
	oracle := energy.NewHeisenberg(field, table, positions, energy.HeisenbergConfig{
		ExchangeJ:      *exchangeJ,
		NeighborRadius: 1.5,
		AnisotropyK:    *anisotropyK,
		EasyAxis:       spin.Vector3{X: 0, Y: 0, Z: 1},
	})

	cfg := cmc.Config{Phi: *phi, Theta: *theta, Temperature: *temperature}
	driver, err := cmc.NewDriver(cfg, field, oracle, table, replicaSeed)
	if err != nil {
		return Report{}, fmt.Errorf("replica %d: %w", replica, err)
	}

	for s := 0; s < *sweeps; s++ {
		delta, err := driver.Run(ctx, 1)
		if err != nil {
			if errors.Is(err, cmcerr.Cancelled) {
				report := buildReport(replica, driver)
				report.Cancelled = true
				return report, nil
			}
			return Report{}, fmt.Errorf("replica %d sweep %d: %w", replica, s, err)
		}
		if *debug {
			stats := driver.Stats()
			log.Printf("replica %d sweep %d: delta=%+v cumulative_ratio=%.4f",
				replica, s, delta, stats.AcceptanceRatio)
		}
	}

	return buildReport(replica, driver), nil
}
