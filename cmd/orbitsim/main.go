package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrator"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/units"
	"github.com/san-kum/orbitsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	steps      int
	sampleEvry int
	integName  string
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "gravitational n-body simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// default to the live view of the default scenario
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "inner", "preset scenario")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a batch simulation and record it",
		RunE:  runBatch,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 3600, "timestep in seconds")
	runCmd.Flags().IntVar(&steps, "steps", 8766, "number of steps")
	runCmd.Flags().IntVar(&sampleEvry, "sample", 24, "record every n steps")
	runCmd.Flags().StringVar(&integName, "integrator", "leapfrog", "integrator (leapfrog, euler)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live visualization",
		RunE:  runLive,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot body distances over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run positions to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and positions to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output path (default <run_id>.json)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping throughput",
		RunE:  benchScenario,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare integrators on the same scenario",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 3600, "timestep in seconds")
	compareCmd.Flags().IntVar(&steps, "steps", 8766, "number of steps")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION\tBODIES")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, cfg.Name, len(cfg.Bodies))
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, benchCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the scenario: an explicit file wins over the
// preset name.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	return cfg, nil
}

func buildIntegrator(name string) (integrator.Stepper, error) {
	switch name {
	case "", "leapfrog":
		return integrator.NewLeapfrog(), nil
	case "euler":
		return integrator.NewSemiImplicitEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func buildSimulator(cfg *config.Config, integName string) (*sim.Simulator, error) {
	system, err := cfg.BuildSystem()
	if err != nil {
		return nil, err
	}
	step, err := buildIntegrator(integName)
	if err != nil {
		return nil, err
	}
	eval := gravity.NewEvaluator(units.Solar().G, cfg.Softening)
	return sim.New(system, eval, sim.WithStepper(step)), nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := buildSimulator(cfg, integName)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %q for %d steps of %gs...\n", cfg.Name, steps, dt)
	start := time.Now()

	result, err := s.Run(context.Background(), steps, dt, sampleEvry)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(scenarioName(cfg), dt, integName, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("simulated time: %.3f yr\n", float64(result.Steps)*dt/units.SecondsPerYear)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Printf("momentum drift: %.3e\n", result.MomentumDrift)

	return nil
}

// scenarioName gives the run a filesystem-friendly label.
func scenarioName(cfg *config.Config) string {
	if configFile != "" {
		return "custom"
	}
	return preset
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSTEPS\tDT\tINTEG\tE-DRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0fs\t%s\t%.2e\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Integrator,
			run.EnergyDrift,
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

	positions, _, err := st.LoadPositions(runID)
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(positions))

	maxPlots := 6
	for idx, name := range meta.Bodies {
		if idx >= maxPlots {
			break
		}

		data := make([]float64, len(positions))
		for i := range positions {
			col := idx * 3
			if col+2 >= len(positions[i]) {
				continue
			}
			x, y, z := positions[i][col], positions[i][col+1], positions[i][col+2]
			data[i] = math.Sqrt(x*x + y*y + z*z)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s distance from origin (AU)", name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	positions, times, err := st.LoadPositions(runID)
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range meta.Bodies {
		header = append(header, name+"_x", name+"_y", name+"_z")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range positions {
		row := []string{strconv.FormatFloat(times[i], 'g', 10, 64)}
		for _, val := range positions[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	path := outPath
	if path == "" {
		path = runID + ".json"
	}

	st := storage.New(dataDir)
	if err := st.ExportJSON(runID, path); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func benchScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stepCounts := []int{1000, 10000, 100000}
	dts := []float64{600, 3600, 86400}

	fmt.Printf("benchmarking %q (%d bodies)\n\n", cfg.Name, len(cfg.Bodies))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tDT\tTIME\tSTEPS/SEC\tE-DRIFT")

	for _, n := range stepCounts {
		for _, d := range dts {
			s, err := buildSimulator(cfg, "leapfrog")
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := s.Run(context.Background(), n, d, n)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%.0fs\t%v\t%.0f\t%.2e\n",
				n, d, elapsed.Round(time.Microsecond),
				float64(result.Steps)/elapsed.Seconds(),
				result.EnergyDrift)
		}
	}

	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names := []string{"leapfrog", "euler"}
	if len(args) > 0 {
		names = args
	}

	fmt.Printf("comparing integrators on %q (dt=%gs, steps=%d)\n\n", cfg.Name, dt, steps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tE-DRIFT\tP-DRIFT\tTIME")

	for _, name := range names {
		s, err := buildSimulator(cfg, name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := s.Run(context.Background(), steps, dt, steps)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%v\n", name, result.EnergyDrift, result.MomentumDrift, elapsed.Round(time.Millisecond))
	}

	return w.Flush()
}
