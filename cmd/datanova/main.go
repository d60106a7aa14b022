package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"datanova/adapters/loader"
	"datanova/adapters/xlsxout"
	"datanova/domain/eda"
	"datanova/internal"
	"datanova/internal/config"
	"datanova/internal/profile"
	"datanova/internal/render"
	"datanova/internal/report"
)

var (
	cfg    *config.Config
	logger *internal.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datanova",
		Short: "Exploratory data analysis for tabular files",
		Long: `datanova loads CSV, Excel, or Parquet files and produces data-quality
profiles, per-column summaries, chart workbooks, and HTML reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env for DATANOVA_* and LOG_LEVEL overrides.
			_ = godotenv.Load()

			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger = internal.NewDefaultLogger().Tagged("datanova")
			return nil
		},
	}

	rootCmd.AddCommand(
		newProfileCmd(),
		newBarCmd(),
		newHistCmd(),
		newEDACmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProfileCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "profile [file]",
		Short: "Print the per-column data-quality profile",
		Long: `Compute the data-quality profile of a dataset: one row per column with
missing counts, unique values, the modal value, and descriptive statistics.

Example: datanova profile sales.csv --out sales_profile.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			logger.Info("loaded %s (%d rows, %d columns)", args[0], t.NumRows(), t.NumCols())

			prof := profile.Build(t)
			printTable(cmd.OutOrStdout(), prof.Header(), prof.Records())

			if out != "" {
				if err := xlsxout.WriteProfile(prof, out); err != nil {
					return fmt.Errorf("failed to write profile workbook: %w", err)
				}
				logger.Info("profile written to %s", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Also write the profile as an Excel workbook")

	return cmd
}

func newBarCmd() *cobra.Command {
	var (
		topN  int
		color string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "bar [file] [column]",
		Short: "Render a bar-chart workbook for a categorical column",
		Long: `Count the most frequent values of a column, missing cells included under
the "N/A" category, and write a workbook with the frequency table and a
horizontal bar chart.

Example: datanova bar sales.csv region --top-n 8`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			barCfg := cfg.BarConfig()
			if cmd.Flags().Changed("top-n") {
				barCfg.TopN = topN
			}
			if color != "" {
				barCfg.BarColor = color
			}

			fig, err := render.Bar(t, args[1], barCfg)
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), fig.Frequencies.Header(), fig.Frequencies.Records())

			path := outputPath(out, args[1]+"_bar.xlsx")
			if err := xlsxout.WriteBarFigure(fig, path); err != nil {
				return fmt.Errorf("failed to write bar workbook: %w", err)
			}
			logger.Info("bar figure written to %s", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top-n", eda.DefaultTopN, "Number of categories to keep")
	cmd.Flags().StringVar(&color, "color", "", "Bar color as a hex code")
	cmd.Flags().StringVar(&out, "out", "", "Output workbook path")

	return cmd
}

func newHistCmd() *cobra.Command {
	var (
		bins       int
		color      string
		out        string
		xmin, xmax float64
	)

	cmd := &cobra.Command{
		Use:   "hist [file] [column]",
		Short: "Render a histogram workbook for a numeric column",
		Long: `Bin a numeric column, compute its ten-statistic summary, and write a
workbook with the bins, the summary table, and a column chart.

Example: datanova hist sales.csv amount --bins 30 --xmin 0 --xmax 500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("xmin") != cmd.Flags().Changed("xmax") {
				return fmt.Errorf("--xmin and --xmax must be used together")
			}
			if cmd.Flags().Changed("xmin") && xmin >= xmax {
				return fmt.Errorf("--xmin (%g) must be below --xmax (%g)", xmin, xmax)
			}

			t, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			histCfg := cfg.HistConfig()
			if cmd.Flags().Changed("bins") {
				histCfg.Bins = bins
			}
			if color != "" {
				histCfg.BarColor = color
			}
			if cmd.Flags().Changed("xmin") {
				histCfg.XLim = &eda.Range{Min: xmin, Max: xmax}
			}

			fig, err := render.Hist(t, args[1], histCfg)
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), fig.Stats.Header(), fig.Stats.Records())

			path := outputPath(out, args[1]+"_hist.xlsx")
			if err := xlsxout.WriteHistFigure(fig, path); err != nil {
				return fmt.Errorf("failed to write histogram workbook: %w", err)
			}
			logger.Info("histogram figure written to %s", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&bins, "bins", eda.DefaultBins, "Number of histogram bins")
	cmd.Flags().StringVar(&color, "color", "", "Bar color as a hex code")
	cmd.Flags().StringVar(&out, "out", "", "Output workbook path")
	cmd.Flags().Float64Var(&xmin, "xmin", 0, "Lower x-axis limit")
	cmd.Flags().Float64Var(&xmax, "xmax", 0, "Upper x-axis limit")

	return cmd
}

func newEDACmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "eda [file]",
		Short: "Render one figure per column of a dataset",
		Long: `Sweep every column: histograms for numeric columns, bar charts for text
and boolean columns. Entirely blank and datetime columns are skipped. One
workbook per figure is written to the output directory.

Example: datanova eda sales.csv --out-dir figures/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			logger.Info("loaded %s (%d rows, %d columns)", args[0], t.NumRows(), t.NumCols())

			figs, err := render.EDA(t, render.SweepOptions{
				Bar:  cfg.BarConfig(),
				Hist: cfg.HistConfig(),
			})
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = cfg.Output.Dir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			for _, fig := range figs {
				var path string
				switch f := fig.(type) {
				case *eda.BarFigure:
					path = filepath.Join(dir, sanitize(f.ColumnName)+"_bar.xlsx")
					err = xlsxout.WriteBarFigure(f, path)
				case *eda.HistFigure:
					path = filepath.Join(dir, sanitize(f.ColumnName)+"_hist.xlsx")
					err = xlsxout.WriteHistFigure(f, path)
				}
				if err != nil {
					return fmt.Errorf("failed to write figure for %s: %w", fig.Column(), err)
				}
				logger.Info("figure written to %s", path)
			}
			logger.Info("EDA sweep complete: %d figures", len(figs))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for figure workbooks")

	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		out   string
		title string
		topN  int
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Write a full EDA report as HTML",
		Long: `Generate an HTML report with the data-quality profile and a per-column
aggregate view for the whole dataset.

Example: datanova report sales.csv --out sales_report.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			rep, err := report.Generate(t, report.Options{Title: title, TopN: topN})
			if err != nil {
				return err
			}

			path := outputPath(out, strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))+"_report.html")
			if err := os.WriteFile(path, rep.HTML, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			logger.Info("report %s written to %s", rep.ID, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output HTML path")
	cmd.Flags().StringVar(&title, "title", "", "Report title")
	cmd.Flags().IntVar(&topN, "top-n", eda.DefaultTopN, "Categories per frequency table")

	return cmd
}

func outputPath(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(cfg.Output.Dir, fallback)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}

func printTable(w interface{ Write([]byte) (int, error) }, header []string, records [][]string) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, rec := range records {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	tw.Flush()
}
