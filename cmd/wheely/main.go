package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wheely/internal/config"
	"github.com/san-kum/wheely/internal/storage"
	"github.com/san-kum/wheely/internal/viz"
	"github.com/san-kum/wheely/internal/wheel"
)

var (
	dataDir string
	// Run parameters
	cups       int
	radius     float64
	gravity    float64
	damping    float64
	leakRate   float64
	inflowRate float64
	inertia    float64
	omega0     float64
	tStart     float64
	tEnd       float64
	frames     int
	steps      int
	// Config sources
	configFile string
	jsonConfig string
	preset     string
	// Live view
	frameRate int
	// Plot
	maxCups int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wheely",
		Short: "lorenz water wheel simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wheely", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the trajectory",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&maxCups, "max-cups", 4, "cup mass series to plot")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate and replay in the terminal",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 25, "replay frame rate")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored trajectory to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, liveCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().IntVar(&cups, "cups", d.Cups, "number of cups")
	cmd.Flags().Float64Var(&radius, "radius", d.Radius, "wheel radius")
	cmd.Flags().Float64Var(&gravity, "gravity", d.Gravity, "gravitational acceleration")
	cmd.Flags().Float64Var(&damping, "damping", d.Damping, "viscous damping coefficient")
	cmd.Flags().Float64Var(&leakRate, "leak", d.LeakRate, "per-cup leak rate")
	cmd.Flags().Float64Var(&inflowRate, "inflow", d.InflowRate, "inflow rate at the spout")
	cmd.Flags().Float64Var(&inertia, "inertia", d.Inertia, "moment of inertia")
	cmd.Flags().Float64Var(&omega0, "omega0", d.Omega0, "initial angular velocity")
	cmd.Flags().Float64Var(&tStart, "t-start", d.TStart, "start time")
	cmd.Flags().Float64Var(&tEnd, "t-end", d.TEnd, "end time")
	cmd.Flags().IntVar(&frames, "frames", d.Frames, "sampled output frames")
	cmd.Flags().IntVar(&steps, "steps", d.StepsPerFrame, "integration sub-steps per frame")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&jsonConfig, "json-config", "", "parameter file path (json, uppercase keys)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves preset, config files, and flags into an engine
// config. Precedence, lowest first: defaults, preset, yaml config, json
// config, explicitly set flags.
func buildConfig(cmd *cobra.Command) (wheel.Config, error) {
	fileCfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return wheel.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		fileCfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return wheel.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = loaded
	}

	cfg := fileCfg.Wheel()

	if jsonConfig != "" {
		loaded, err := config.LoadJSON(jsonConfig, steps)
		if err != nil {
			return wheel.Config{}, fmt.Errorf("failed to load json config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("cups") {
		cfg.CupCount = cups
	}
	if cmd.Flags().Changed("radius") {
		cfg.Radius = radius
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}
	if cmd.Flags().Changed("damping") {
		cfg.Damping = damping
	}
	if cmd.Flags().Changed("leak") {
		cfg.LeakRate = leakRate
	}
	if cmd.Flags().Changed("inflow") {
		cfg.InflowRate = inflowRate
	}
	if cmd.Flags().Changed("inertia") {
		cfg.Inertia = inertia
	}
	if cmd.Flags().Changed("omega0") {
		cfg.Omega0 = omega0
	}
	if cmd.Flags().Changed("t-start") {
		cfg.TStart = tStart
	}
	if cmd.Flags().Changed("t-end") {
		cfg.TEnd = tEnd
	}
	if cmd.Flags().Changed("frames") {
		cfg.FrameCount = frames
	}
	if cmd.Flags().Changed("steps") {
		cfg.StepsPerFrame = steps
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("simulating %d cups over [%.2f, %.2f]...\n", cfg.CupCount, cfg.TStart, cfg.TEnd)
	start := time.Now()

	result, err := wheel.Simulate(cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	last := result.FrameCount - 1
	totalMass := 0.0
	for cup := 0; cup < result.CupCount; cup++ {
		totalMass += result.Mass(cup, last)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d (x%d sub-steps)\n", result.FrameCount, cfg.StepsPerFrame)
	fmt.Printf("final theta: %.6f rad\n", result.Theta[last])
	fmt.Printf("final total mass: %.6f\n", totalMass)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCUPS\tWINDOW\tFRAMES\tFINAL_THETA")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t[%.1f, %.1f]\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Cups,
			run.TStart,
			run.TEnd,
			run.Frames,
			run.FinalTheta,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("cups: %d, frames: %d\n\n", meta.Cups, meta.Frames)

	graph := asciigraph.Plot(result.Theta,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("theta (wheel angle)"),
	)
	fmt.Println(graph)
	fmt.Println()

	n := result.CupCount
	if n > maxCups {
		n = maxCups
	}
	for cup := 0; cup < n; cup++ {
		graph := asciigraph.Plot(result.CupSeries(cup),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("cup %d mass", cup)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	if result.CupCount > maxCups {
		fmt.Printf("(%d more cups, raise --max-cups to plot them)\n", result.CupCount-maxCups)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	result, err := wheel.Simulate(cfg)
	if err != nil {
		return err
	}

	return viz.Run(cfg, result, frameRate)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	fmt.Print("time,theta")
	for cup := 0; cup < result.CupCount; cup++ {
		fmt.Printf(",m%d", cup)
	}
	fmt.Println()

	for frame := 0; frame < result.FrameCount; frame++ {
		fmt.Printf("%g,%g", result.Times[frame], result.Theta[frame])
		for cup := 0; cup < result.CupCount; cup++ {
			fmt.Printf(",%g", result.Mass(cup, frame))
		}
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, result)
}
