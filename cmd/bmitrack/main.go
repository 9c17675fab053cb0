package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/hahmed/bmitrack/internal/config"
	"github.com/hahmed/bmitrack/internal/metrics"
	"github.com/hahmed/bmitrack/internal/service"
	"github.com/hahmed/bmitrack/internal/storage"
	"github.com/hahmed/bmitrack/internal/storage/jsonfile"
	"github.com/hahmed/bmitrack/internal/storage/sqlite"
	"github.com/hahmed/bmitrack/pkg/logging"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: bmitrack <command> [flags]

Commands:
  calc     compute and record a BMI (-weight, -height, -weight-unit, -height-unit)
  history  print all recorded calculations
  stats    print summary statistics over the history
  export   write the history to a file (-o, -format xlsx|json)
  import   load a JSON history document into the sqlite backend (-from)
  clear    delete the entire history

Environment: BMI_HISTORY_PATH, BMI_STORE (json|sqlite), BMI_DB_PATH, LOG_LEVEL
(also read from a .env file in the working directory).
`)
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open history store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	m := metrics.New()
	svc := service.NewBMIService(store, m)
	ctx := context.Background()

	var runErr error
	switch os.Args[1] {
	case "calc":
		runErr = runCalc(ctx, svc, os.Args[2:])
	case "history":
		runErr = runHistory(ctx, svc)
	case "stats":
		runErr = runStats(ctx, svc)
	case "export":
		runErr = runExport(ctx, svc, os.Args[2:])
	case "import":
		runErr = runImport(ctx, store, os.Args[2:])
	case "clear":
		if runErr = svc.Clear(ctx); runErr == nil {
			fmt.Println("History cleared successfully")
		}
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		if errors.Is(runErr, service.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, "Please enter valid numbers for weight and height.")
			fmt.Fprintf(os.Stderr, "(%v)\n", runErr)
			os.Exit(1)
		}
		slog.Error("command failed", "error", runErr)
		os.Exit(1)
	}

	logMetrics(m)
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Store {
	case "sqlite":
		return sqlite.New(cfg.DBPath)
	case "json":
		return jsonfile.New(cfg.HistoryPath)
	}
	return nil, fmt.Errorf("unknown BMI_STORE %q (want json or sqlite)", cfg.Store)
}

func runCalc(ctx context.Context, svc *service.BMIService, args []string) error {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	weight := fs.String("weight", "", "weight value")
	height := fs.String("height", "", "height value")
	weightUnit := fs.String("weight-unit", "kg", "weight unit (kg or lbs)")
	heightUnit := fs.String("height-unit", "cm", "height unit (cm or in)")
	fs.Parse(args)

	res, err := svc.Calculate(ctx, service.Input{
		Weight:     *weight,
		Height:     *height,
		WeightUnit: *weightUnit,
		HeightUnit: *heightUnit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("BMI: %.1f\n", res.Record.BMI)
	fmt.Printf("Category: %s (%s)\n", res.Category.Label, res.Category.Color)
	fmt.Println("Recommendations:")
	for _, rec := range res.Category.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	return nil
}

func runHistory(ctx context.Context, svc *service.BMIService) error {
	history, err := svc.History(ctx)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No data available")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tWEIGHT\tHEIGHT\tBMI\tCATEGORY")
	for _, rec := range history {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%s\n",
			rec.Date, rec.Weight, rec.Height, rec.BMI, rec.Category)
	}
	return w.Flush()
}

func runStats(ctx context.Context, svc *service.BMIService) error {
	sum, trend, err := svc.Statistics(ctx)
	if err != nil {
		return err
	}
	if sum.Count == 0 {
		fmt.Println("No data available")
		return nil
	}

	fmt.Printf("Average BMI: %.1f\n", sum.Mean)
	fmt.Printf("Lowest BMI:  %.1f\n", sum.Min)
	fmt.Printf("Highest BMI: %.1f\n", sum.Max)
	fmt.Printf("Total Records: %d\n", sum.Count)
	if len(trend) >= 2 {
		first, last := trend[0], trend[len(trend)-1]
		fmt.Printf("Trend: %.1f (%s) -> %.1f (%s)\n",
			first.BMI, first.Time.Format("2006-01-02"),
			last.BMI, last.Time.Format("2006-01-02"))
	}
	fmt.Println("Run 'bmitrack export' for the full trend chart.")
	return nil
}

func runExport(ctx context.Context, svc *service.BMIService, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "bmi_history.xlsx", "output file")
	format := fs.String("format", "xlsx", "output format (xlsx or json)")
	fs.Parse(args)

	switch *format {
	case "xlsx":
		if err := svc.ExportXLSX(ctx, *out); err != nil {
			return err
		}
	case "json":
		if err := svc.ExportJSON(ctx, *out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q (want xlsx or json)", *format)
	}
	fmt.Printf("Exported history to %s\n", *out)
	return nil
}

func runImport(ctx context.Context, store storage.Store, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	from := fs.String("from", "bmi_history.json", "JSON history document to import")
	fs.Parse(args)

	db, ok := store.(*sqlite.SQLiteStore)
	if !ok {
		return fmt.Errorf("import requires the sqlite backend (set BMI_STORE=sqlite)")
	}
	n, err := db.ImportJSON(ctx, *from)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d records from %s\n", n, *from)
	return nil
}

// logMetrics reports the session counters at debug level.
func logMetrics(m *metrics.Metrics) {
	families, err := m.Gatherer().Gather()
	if err != nil {
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			args := []any{"value", metric.GetCounter().GetValue()}
			for _, label := range metric.GetLabel() {
				args = append(args, label.GetName(), label.GetValue())
			}
			slog.Debug(mf.GetName(), args...)
		}
	}
}
