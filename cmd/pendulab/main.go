package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pendulab/internal/config"
	"github.com/san-kum/pendulab/internal/physics"
	"github.com/san-kum/pendulab/internal/sim"
	"github.com/san-kum/pendulab/internal/tui"
	"github.com/san-kum/pendulab/internal/viz"
)

const paletteSize = 8

var (
	configFile string
	preset     string
	pendulums  int
	showTrails bool
	frameRate  int
	substeps   int
	trailCap   int
	maxPend    int
	seed       int64
	theme      string
	length1    float64
	length2    float64
	mass1      float64
	mass2      float64
	gravity    float64
	// run command
	duration float64
	csvPath  string
	// bench command
	benchTicks int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendulab",
		Short: "chaotic double-pendulum playground",
		Long: "pendulab simulates double pendulums under gravity and renders\n" +
			"their fading trails in the terminal. Keys: c create, r reset,\n" +
			"t toggle trails, space pause, q quit.",
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	rootCmd.PersistentFlags().IntVar(&pendulums, "pendulums", 1, "initial pendulum count")
	rootCmd.PersistentFlags().BoolVar(&showTrails, "trails", true, "show trails at startup")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "ticks per second")
	rootCmd.PersistentFlags().IntVar(&substeps, "substeps", config.DefaultSubsteps, "integrator substeps per tick")
	rootCmd.PersistentFlags().IntVar(&trailCap, "trail-capacity", config.DefaultTrailCapacity, "max points per trail")
	rootCmd.PersistentFlags().IntVar(&maxPend, "max-pendulums", config.DefaultMaxPendulums, "pendulum cap (0 = unlimited)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyan", "ui theme")
	rootCmd.PersistentFlags().Float64Var(&length1, "length1", 1.0, "inner rod length")
	rootCmd.PersistentFlags().Float64Var(&length2, "length2", 1.0, "outer rod length")
	rootCmd.PersistentFlags().Float64Var(&mass1, "mass1", 1.0, "inner bob mass")
	rootCmd.PersistentFlags().Float64Var(&mass2, "mass2", 1.0, "outer bob mass")
	rootCmd.PersistentFlags().Float64Var(&gravity, "gravity", 9.81, "gravitational acceleration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless simulation with trace plots and energy report",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated seconds")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write first pendulum trajectory to CSV")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure tick throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 10000, "ticks to execute")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, preset, config file, and explicit
// flags, in increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("pendulums") {
		cfg.Pendulums = pendulums
	}
	if flags.Changed("trails") {
		cfg.ShowTrails = showTrails
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("substeps") {
		cfg.Substeps = substeps
	}
	if flags.Changed("trail-capacity") {
		cfg.TrailCapacity = trailCap
	}
	if flags.Changed("max-pendulums") {
		cfg.MaxPendulums = maxPend
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("length1") {
		cfg.Physics.Length1 = length1
	}
	if flags.Changed("length2") {
		cfg.Physics.Length2 = length2
	}
	if flags.Changed("mass1") {
		cfg.Physics.Mass1 = mass1
	}
	if flags.Changed("mass2") {
		cfg.Physics.Mass2 = mass2
	}
	if flags.Changed("gravity") {
		cfg.Physics.Gravity = gravity
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSim(cfg *config.Config) (*sim.Simulation, error) {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	opts := sim.Options{
		Params: physics.Params{
			Length1: cfg.Physics.Length1,
			Length2: cfg.Physics.Length2,
			Mass1:   cfg.Physics.Mass1,
			Mass2:   cfg.Physics.Mass2,
			Gravity: cfg.Physics.Gravity,
		},
		Substeps:      cfg.Substeps,
		TrailCapacity: cfg.TrailCapacity,
		MaxPendulums:  cfg.MaxPendulums,
		ShowTrails:    cfg.ShowTrails,
		Palette:       viz.Palette(paletteSize),
	}

	simulation, err := sim.New(opts, rand.New(rand.NewSource(s)))
	if err != nil {
		return nil, err
	}
	for i := 1; i < cfg.Pendulums; i++ {
		simulation.CreatePendulum()
	}
	return simulation, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	simulation, err := buildSim(cfg)
	if err != nil {
		return err
	}
	return tui.Run(simulation, cfg.FrameRate, viz.GetTheme(cfg.Theme))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if duration <= 0 {
		return fmt.Errorf("time must be positive, got %g", duration)
	}
	simulation, err := buildSim(cfg)
	if err != nil {
		return err
	}

	var writer *csv.Writer
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = csv.NewWriter(f)
		defer writer.Flush()
		if err := writer.Write([]string{"t", "theta1", "omega1", "theta2", "omega2", "x2", "y2"}); err != nil {
			return err
		}
	}

	dt := 1.0 / float64(cfg.FrameRate)
	ticks := int(duration * float64(cfg.FrameRate))

	first := simulation.Snapshot().Pendulums[0]
	e0 := first.Energy
	theta1Trace := make([]float64, 0, ticks)
	theta2Trace := make([]float64, 0, ticks)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		simulation.Tick(dt)

		pv := simulation.Snapshot().Pendulums[0]
		theta1Trace = append(theta1Trace, pv.State[0])
		theta2Trace = append(theta2Trace, pv.State[2])

		if writer != nil {
			t := float64(i+1) * dt
			if err := writer.Write([]string{
				formatFloat(t),
				formatFloat(pv.State[0]),
				formatFloat(pv.State[1]),
				formatFloat(pv.State[2]),
				formatFloat(pv.State[3]),
				formatFloat(pv.Bob2.X),
				formatFloat(pv.Bob2.Y),
			}); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	snap := simulation.Snapshot()
	e1 := snap.Pendulums[0].Energy
	drift := 0.0
	if e0 != 0 {
		drift = math.Abs(e1-e0) / math.Abs(e0)
	}

	fmt.Printf("simulated %.1fs (%d ticks, %d pendulums) in %v\n",
		duration, ticks, len(snap.Pendulums), elapsed)
	fmt.Printf("energy drift (pendulum 0): %.3e relative\n\n", drift)

	for _, trace := range []struct {
		name string
		data []float64
	}{
		{"theta1 (rad)", theta1Trace},
		{"theta2 (rad)", theta2Trace},
	} {
		graph := asciigraph.Plot(downsample(trace.data, 160),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(trace.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if csvPath != "" {
		fmt.Printf("trajectory written to %s\n", csvPath)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	simulation, err := buildSim(cfg)
	if err != nil {
		return err
	}

	dt := 1.0 / float64(cfg.FrameRate)

	start := time.Now()
	for i := 0; i < benchTicks; i++ {
		simulation.Tick(dt)
	}
	elapsed := time.Since(start)

	perTick := elapsed / time.Duration(benchTicks)
	fmt.Printf("%d ticks x %d pendulums in %v\n", benchTicks, simulation.Count(), elapsed)
	fmt.Printf("%v per tick (%.0f ticks/sec)\n", perTick, float64(benchTicks)/elapsed.Seconds())
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// downsample keeps plots readable for long runs; asciigraph renders
// every sample otherwise.
func downsample(data []float64, max int) []float64 {
	if len(data) <= max {
		return data
	}
	out := make([]float64, max)
	step := float64(len(data)) / float64(max)
	for i := range out {
		out[i] = data[int(float64(i)*step)]
	}
	return out
}
