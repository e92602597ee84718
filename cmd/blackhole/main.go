package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ashudevcodes/blackHole/internal/config"
	"github.com/ashudevcodes/blackHole/internal/gui"
	"github.com/ashudevcodes/blackHole/internal/physics"
	"github.com/ashudevcodes/blackHole/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64

	// dilation sweep
	sweepRadius  float64
	sweepMin     float64
	sweepMax     float64
	sweepSamples int
	sweepFormat  string
)

// main wires the CLI; the bare command opens the interactive GUI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "blackhole",
		Short: "interactive Schwarzschild black hole visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "starfield seed (0 = from clock)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the raylib visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "run the terminal preview (no GPU required)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	dilationCmd := &cobra.Command{
		Use:   "dilation",
		Short: "tabulate gravitational time dilation over a distance sweep",
		RunE:  runDilation,
	}
	dilationCmd.Flags().Float64Var(&sweepRadius, "rs", config.DefaultRadius, "schwarzschild radius")
	dilationCmd.Flags().Float64Var(&sweepMin, "min", config.DefaultRadius, "sweep start distance")
	dilationCmd.Flags().Float64Var(&sweepMax, "max", 100, "sweep end distance")
	dilationCmd.Flags().IntVar(&sweepSamples, "samples", 50, "sample count")
	dilationCmd.Flags().StringVar(&sweepFormat, "format", "table", "output format: table, csv, json")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, previewCmd, dilationCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, then config file, then defaults. The seed
// flag wins over both so runs are reproducible from the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Stars.Seed = seed
	}
	return cfg, nil
}

type dilationSample struct {
	Distance float64 `json:"distance"`
	Dilation float64 `json:"dilation"`
}

func runDilation(cmd *cobra.Command, args []string) error {
	if sweepRadius <= 0 {
		return fmt.Errorf("schwarzschild radius must be positive")
	}
	if sweepMax <= sweepMin || sweepSamples < 2 {
		return fmt.Errorf("need max > min and at least 2 samples")
	}

	center := physics.Vec3{}
	samples := make([]dilationSample, sweepSamples)
	for i := range samples {
		d := sweepMin + (sweepMax-sweepMin)*float64(i)/float64(sweepSamples-1)
		samples[i] = dilationSample{
			Distance: d,
			Dilation: physics.TimeDilation(physics.Vec3{X: d}, center, sweepRadius),
		}
	}

	switch sweepFormat {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"distance", "dilation"}); err != nil {
			return err
		}
		for _, s := range samples {
			row := []string{
				strconv.FormatFloat(s.Distance, 'f', 6, 64),
				strconv.FormatFloat(s.Dilation, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	case "table":
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = s.Dilation
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("sqrt(1 - %.2f/r), r in [%.1f, %.1f]", sweepRadius, sweepMin, sweepMax)),
		)
		fmt.Println(graph)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DISTANCE\tDILATION")
		for _, s := range samples {
			fmt.Fprintf(w, "%.2f\t%.4f\n", s.Distance, s.Dilation)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format: %s", sweepFormat)
	}
}
