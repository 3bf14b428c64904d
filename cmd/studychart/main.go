// Command studychart composes and renders study statistics charts.
//
// Statistics come from a JSON fixture (--fixture) or are synthesized.
//
//	studychart render review-count -o review-count.png
//	studychart all --period year --dir charts
//	studychart describe hourly-breakdown
//	studychart dump > fixture.json
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vdobler/studychart"
	"github.com/vdobler/studychart/data"
	"github.com/vdobler/studychart/render"
)

var (
	width       int
	height      int
	textSize    float64
	periodName  string
	fixturePath string
	seed        int
	verbose     bool

	outputPath string
	outputDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "studychart",
		Short:         "Compose and render study statistics charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&width, "width", 800, "Canvas width in pixels")
	pf.IntVar(&height, "height", 400, "Canvas height in pixels")
	pf.Float64Var(&textSize, "text-size", 16, "Standard text size in pixels")
	pf.StringVar(&periodName, "period", "month", "Period: month, year or all-time")
	pf.StringVar(&fixturePath, "fixture", "", "JSON statistics fixture (default: synthesized data)")
	pf.IntVar(&seed, "seed", 1, "Seed of the synthesized data")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log layout decisions")

	renderCmd := &cobra.Command{
		Use:   "render KIND",
		Short: "Render one chart kind to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: KIND.png)")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Render every chart kind to PNG",
		Args:  cobra.NoArgs,
		RunE:  runAll,
	}
	allCmd.Flags().StringVar(&outputDir, "dir", ".", "Output directory")

	describeCmd := &cobra.Command{
		Use:   "describe KIND",
		Short: "Print the drawables of one chart kind",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the synthesized statistics of all kinds as JSON fixture",
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}

	rootCmd.AddCommand(renderCmd, allCmd, describeCmd, dumpCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "studychart:", err)
		os.Exit(1)
	}
}

func setup() (*studychart.Composer, studychart.Source, studychart.Period, error) {
	period, err := studychart.ParsePeriod(periodName)
	if err != nil {
		return nil, nil, 0, err
	}

	var src studychart.Source = data.Sample{Seed: seed}
	if fixturePath != "" {
		fx, err := data.ReadFixture(fixturePath)
		if err != nil {
			return nil, nil, 0, err
		}
		src = fx
	}

	comp := studychart.NewComposer(textSize)
	if verbose {
		comp.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return comp, src, period, nil
}

func compose(kindName string) (*studychart.Composer, *studychart.Sheet, error) {
	kind, err := studychart.ParseKind(kindName)
	if err != nil {
		return nil, nil, err
	}
	comp, src, period, err := setup()
	if err != nil {
		return nil, nil, err
	}
	stats, err := src.Stats(kind, period)
	if err != nil {
		return nil, nil, err
	}
	sheet, err := comp.Compose(kind, stats, width, height)
	if err != nil {
		return nil, nil, err
	}
	if sheet == nil {
		return nil, nil, fmt.Errorf("canvas %dx%d is empty", width, height)
	}
	return comp, sheet, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	comp, sheet, err := compose(args[0])
	if err != nil {
		return err
	}
	path := outputPath
	if path == "" {
		path = args[0] + ".png"
	}
	return writePNG(path, sheet, comp.Style)
}

func runAll(cmd *cobra.Command, args []string) error {
	comp, src, period, err := setup()
	if err != nil {
		return err
	}
	sheets, err := comp.ComposeAll(context.Background(), src, period, width, height)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	for kind, sheet := range sheets {
		path := filepath.Join(outputDir, kind.String()+".png")
		if err := writePNG(path, sheet, comp.Style); err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	_, sheet, err := compose(args[0])
	if err != nil {
		return err
	}
	return describe(cmd.OutOrStdout(), sheet, studychart.DefaultTable())
}

func runDump(cmd *cobra.Command, args []string) error {
	fx := data.NewFixture()
	src := data.Sample{Seed: seed}
	for _, period := range []studychart.Period{studychart.Month, studychart.Year, studychart.AllTime} {
		for _, kind := range studychart.Kinds() {
			stats, err := src.Stats(kind, period)
			if err != nil {
				return err
			}
			fx.Put(kind, period, stats)
		}
	}
	_, err := fx.WriteTo(cmd.OutOrStdout())
	return err
}

func writePNG(path string, sheet *studychart.Sheet, sty studychart.Style) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.PNG(f, sheet, studychart.DefaultTable(), sty, width, height); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
