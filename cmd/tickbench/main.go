// Command tickbench reports the clock backend cputimer selects on this host
// and what it costs to read each available clock.
//
// Usage:
//
//	go run ./cmd/tickbench -n 10000000 -samples 10000
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/klauspost/cpuid/v2"

	"github.com/randomizedcoder/cputimer"
	"github.com/randomizedcoder/cputimer/internal/tick"
)

type clockInfo struct {
	name string
	read func() uint64
}

var percentiles = []int{10, 25, 50, 75, 90, 95, 99, 100}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of reads per clock")
	samples := flag.Int("samples", 10_000, "number of start/stop samples for the distribution")
	calibrate := flag.Duration("calibrate", tick.DefaultCalibrationInterval, "hardware counter calibration interval")
	useClock := flag.Bool("clock", false, "force the monotonic clock backend")
	flag.Parse()

	if *iterations < 1 || *samples < 1 {
		fmt.Fprintln(os.Stderr, "tickbench: -n and -samples must be positive")
		os.Exit(2)
	}

	bold := color.New(color.Bold)
	name := color.New(color.FgCyan).SprintFunc()

	opts := []cputimer.Option{cputimer.WithCalibration(*calibrate, 0)}
	if *useClock {
		opts = append(opts, cputimer.WithFallback())
	}
	src := cputimer.NewTimeSource(opts...)

	bold.Printf("Benchmarking clock reads (%s iterations)\n", humanize.Comma(int64(*iterations)))
	fmt.Printf("Architecture: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CPU:          %s\n", cpuDescription())
	fmt.Printf("Hardware:     %v (%s)\n", cputimer.HardwareAvailable(), tick.Name())
	fmt.Printf("Time source:  %v\n", src)
	fmt.Printf("Rate:         %s ticks/s\n", humanize.Comma(int64(src.TicksPerSecond())))
	fmt.Println("─────────────────────────────────────────────────")

	// Build list of clocks to test
	clocks := []clockInfo{
		{"TimeSource.Now", func() uint64 { return uint64(src.Now()) }},
		{"tick.Nanotime", tick.Nanotime},
		{"time.Now", func() uint64 { return uint64(time.Now().UnixNano()) }},
	}

	// Add the raw counter only where there is one
	if tick.Available() {
		clocks = append(clocks, clockInfo{"tick.Read", tick.Read})
	}

	wall := cputimer.NewTimeSource(cputimer.WithFallback())
	results := make([]float64, len(clocks))

	for i, info := range clocks {
		t := cputimer.NewElapsedTimer(wall, info.name)
		t.Start()
		for j := 0; j < *iterations; j++ {
			_ = info.read()
		}
		t.Stop()
		results[i] = t.ElapsedSeconds()
	}

	// Print results
	fmt.Printf("\nResults:\n")
	baseline := results[0]

	for i, info := range clocks {
		perOp := results[i] / float64(*iterations) * 1e9
		relative := 0.0
		if baseline > 0 {
			relative = results[i] / baseline
		}

		fmt.Printf("  %-24s %10.3fs  %8.2f ns/op  %6.2fx\n",
			name(info.name), results[i], perOp, relative)
	}

	printDistribution(src, *samples)
}

// printDistribution times empty start/stop pairs, showing the granularity
// of the clock and the cost of a measurement in ticks.
func printDistribution(src *cputimer.TimeSource, samples int) {
	cpu, unpin, err := pinThread()
	defer unpin()
	if err != nil {
		color.Yellow("\nNot pinned to a CPU: %v", err)
	} else {
		fmt.Printf("\nPinned to CPU %d\n", cpu)
	}

	counting := cputimer.NewCountingTimer(src, "start/stop")
	deltas := make([]cputimer.Ticks, samples)

	for i := range deltas {
		counting.Start()
		deltas[i] = counting.Stop()
	}
	slices.Sort(deltas)

	fmt.Printf("Distribution of %s back-to-back start/stop deltas:\n", humanize.Comma(int64(samples)))
	for _, p := range percentiles {
		idx := (p*len(deltas)+99)/100 - 1
		idx = max(0, min(idx, len(deltas)-1))
		fmt.Printf("  %3d%%  %12v ticks\n", p, deltas[idx])
	}

	fmt.Printf("\nAverage of fastest 95%%: %v ticks\n", fastestAverage(deltas))
	fmt.Printf("Overall: %v\n", counting)
}

// fastestAverage returns the mean of the fastest 95% of sorted deltas.
// Beyond the 95th percentile the outliers are interrupts and migrations.
func fastestAverage(sorted []cputimer.Ticks) cputimer.Ticks {
	if len(sorted) == 0 {
		return 0
	}
	fastest := sorted[:max(1, len(sorted)*95/100)]
	var sum cputimer.Ticks
	for _, d := range fastest {
		sum = sum.Add(d)
	}
	return sum / cputimer.Ticks(len(fastest))
}

func cpuDescription() string {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown"
	}
	if cpuid.CPU.Hz > 0 {
		brand = fmt.Sprintf("%s, nominal %s", brand, humanize.SIWithDigits(float64(cpuid.CPU.Hz), 2, "Hz"))
	}
	if cpuid.CPU.VM() {
		// Hypervisors may trap or scale the counter
		brand += ", virtualized"
	}
	return brand
}
