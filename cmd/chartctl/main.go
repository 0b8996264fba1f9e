package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/server"
	"finance-dashboard/internal/validation"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// chartArgs is the flag set of the chart command, validated like the HTTP query string
type chartArgs struct {
	ChartType string `json:"type" validate:"required,chart_type"`
	Output    string `json:"output" validate:"oneof=table json"`
	dto.ChartQuery
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "types":
		runTypes()
	case "chart":
		runChart(os.Args[2:])
	case "summary":
		runSummary(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Finance Dashboard chart CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  chartctl <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  types     List chart types and the parameters they accept")
	fmt.Println("  chart     Render a chart against the configured database")
	fmt.Println("  summary   Render the dashboard summary cards")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'chartctl <command> -h' for more information on a command.")
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// connect wires the services against the database from the environment.
// Metrics go to a private registry since nothing scrapes a CLI.
func connect() *server.Services {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg := config.Load()
	db, err := database.Initialize(cfg)
	if err != nil {
		fail("Failed to connect to database", err)
	}

	svc, err := server.NewServices(cfg, db, prometheus.NewRegistry(), slog.Default())
	if err != nil {
		fail("Failed to wire services", err)
	}
	return svc
}

func runTypes() {
	svc := connect()
	defer svc.Close()

	renderChartTypes(os.Stdout, svc.Charts.ListTypes())
}

func runChart(argv []string) {
	var args chartArgs
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	fs.StringVar(&args.ChartType, "type", "", "Chart type: line, bar, pie, table or kpi")
	fs.StringVar(&args.Output, "output", "table", "Output format: table or json")
	fs.StringVar(&args.Start, "start", "", "First day of the range (YYYY-MM-DD)")
	fs.StringVar(&args.End, "end", "", "Last day of the range (YYYY-MM-DD)")
	fs.StringVar(&args.Metric, "metric", "", "Metric to aggregate")
	fs.StringVar(&args.GroupBy, "group-by", "", "Time bucket or dimension to group by")
	fs.StringVar(&args.Dimension, "dimension", "", "Series dimension for bar charts")
	fs.IntVar(&args.TopN, "top", 0, "Keep the N largest pie slices")
	fs.IntVar(&args.Limit, "limit", 0, "Table page size")
	fs.StringVar(&args.Cursor, "cursor", "", "Table page cursor")
	fs.StringVar(&args.Region, "region", "", "Filter by customer region")
	_ = fs.Parse(argv)

	if err := validation.GetValidator().Struct(args); err != nil {
		fail("Invalid arguments", fmt.Errorf("%v", validation.FormatErrors(err)))
	}

	req, err := args.ToChartRequest(models.ChartType(args.ChartType))
	if err != nil {
		fail("Invalid arguments", err)
	}

	svc := connect()
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := svc.Charts.GetChart(ctx, req)
	if err != nil {
		fail("Failed to build chart", err)
	}

	if args.Output == "json" {
		if err := writeJSON(os.Stdout, result.Response); err != nil {
			fail("Failed to encode chart", err)
		}
		return
	}
	if err := renderChart(os.Stdout, result.Response); err != nil {
		fail("Failed to render chart", err)
	}
}

func runSummary(argv []string) {
	var query dto.DashboardQuery
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	fs.StringVar(&query.Start, "start", "", "First day of the range (YYYY-MM-DD)")
	fs.StringVar(&query.End, "end", "", "Last day of the range (YYYY-MM-DD)")
	fs.StringVar(&query.Region, "region", "", "Filter by customer region")
	_ = fs.Parse(argv)

	if err := validation.GetValidator().Struct(query); err != nil {
		fail("Invalid arguments", fmt.Errorf("%v", validation.FormatErrors(err)))
	}

	req, err := query.ToDashboardRequest()
	if err != nil {
		fail("Invalid arguments", err)
	}

	svc := connect()
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	summary, err := svc.Dashboard.GetSummary(ctx, req)
	if err != nil {
		fail("Failed to build summary", err)
	}
	renderSummary(os.Stdout, summary)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
