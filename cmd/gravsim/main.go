package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/store"
	"github.com/san-kum/gravsim/internal/viz"
	"github.com/san-kum/gravsim/internal/world"
)

var (
	dataDir    string
	configFile string
	ticks      int
	stepMS     int64
	warp       float64
	sample     int
	outFormat  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "arbitrary-precision n-body gravitation simulator",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario headless and store the trajectory",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks")
	runCmd.Flags().Int64Var(&stepMS, "dt", 0, "tick step in ms (0 = use scenario value)")
	runCmd.Flags().Float64Var(&warp, "warp", 0, "time-warp factor (0 = use scenario value)")
	runCmd.Flags().IntVar(&sample, "sample", 1, "record every Nth tick")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scenario with live terminal visualization",
		RunE:  runLive,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a stored run to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFormat, "out", "json", "output format: json (metadata) or csv (trajectory)")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if stepMS > 0 {
		cfg.StepMillis = stepMS
	}
	if warp > 0 {
		cfg.TimeWarp = warp
	}

	w, err := world.FromConfig(cfg)
	if err != nil {
		return err
	}

	elapsed := time.Duration(float64(cfg.Step()) * cfg.TimeWarp)
	mets := []metrics.Metric{
		metrics.NewMomentum(),
		metrics.NewMomentumDrift(),
		metrics.NewSeparation(),
	}

	if sample < 1 {
		sample = 1
	}

	records := make([]store.TickRecord, 0, ticks/sample+1)

	for i := 0; i < ticks; i++ {
		if err := w.Execute(elapsed); err != nil {
			return err
		}

		objs := body.NewCollection()
		for _, b := range w.Bodies() {
			objs.Append(b)
		}
		for _, m := range mets {
			m.Observe(objs)
		}

		if (i+1)%sample == 0 {
			records = append(records, record(w, i+1, elapsed))
		}
	}

	vals := make(map[string]float64, len(mets))
	for _, m := range mets {
		vals[m.Name()] = m.Value()
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Scenario, cfg.StepMillis, cfg.TimeWarp, records, vals)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d ticks of %v simulated time\n", runID, ticks, elapsed)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range mets {
		fmt.Fprintf(tw, "  %s\t%.6e\n", m.Name(), m.Value())
	}
	return tw.Flush()
}

func record(w *world.SpaceWorld, tick int, elapsed time.Duration) store.TickRecord {
	rec := store.TickRecord{
		Tick:    tick,
		Seconds: float64(tick) * elapsed.Seconds(),
	}
	for _, b := range w.Bodies() {
		a := b.Snapshot()
		rec.Bodies = append(rec.Bodies, store.BodyState{
			Name: b.Name(),
			X:    a.Center.X.String(),
			Y:    a.Center.Y.String(),
			Z:    a.Center.Z.String(),
			VX:   a.Velocity.X.String(),
			VY:   a.Velocity.Y.String(),
			VZ:   a.Velocity.Z.String(),
		})
	}
	return rec
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	factory := func() (world.World, error) {
		return world.FromConfig(cfg)
	}

	runner, err := world.NewRunner(factory)
	if err != nil {
		return err
	}
	runner.SetTimeWarp(cfg.TimeWarp)

	p := tea.NewProgram(viz.NewModel(runner, cfg.Scenario), tea.WithAltScreen())
	_, err = p.Run()
	runner.Stop()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCENARIO\tTICKS\tSTEP\tWARP\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%dms\t%g\t%s\n",
			r.ID, r.Scenario, r.Ticks, r.StepMillis, r.TimeWarp,
			r.Timestamp.Format(time.RFC3339))
	}
	return tw.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	switch outFormat {
	case "json":
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)

	case "csv":
		records, err := st.LoadStates(args[0])
		if err != nil {
			return err
		}
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"tick", "time", "name", "x", "y", "z", "vx", "vy", "vz"}); err != nil {
			return err
		}
		for _, rec := range records {
			secs := strconv.FormatFloat(rec.Seconds, 'f', 6, 64)
			for _, b := range rec.Bodies {
				row := []string{
					strconv.Itoa(rec.Tick), secs, b.Name,
					b.X, b.Y, b.Z, b.VX, b.VY, b.VZ,
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q", outFormat)
	}
}
