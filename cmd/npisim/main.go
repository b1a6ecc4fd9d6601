package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/srmorales/npi-sourcing/pkg/interfaces/cli/commands"
)

func main() {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	// Command line flags
	var (
		configFile = flag.String("config", "", "Path to YAML config file (optional)")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "Random seed for the session")

		project      = flag.String("project", "", "Project name")
		designFreeze = flag.String("design-freeze", today.Format("2006-01-02"),
			"Design freeze date (YYYY-MM-DD)")
		mcs = flag.String("mcs", today.AddDate(0, 0, 45).Format("2006-01-02"),
			"Manufacturing confidence sample date (YYYY-MM-DD)")
		pilot = flag.String("pilot", today.AddDate(0, 0, 80).Format("2006-01-02"),
			"Pilot build date (YYYY-MM-DD)")
		sop = flag.String("sop", today.AddDate(0, 0, 120).Format("2006-01-02"),
			"Start of production date (YYYY-MM-DD)")

		suppliers     = flag.Int("suppliers", 5, "Supplier pool size")
		newSuppliers  = flag.Int("new-suppliers", 1, "Suppliers without delivery history")
		suppliersFile = flag.String("suppliers-file", "", "CSV supplier roster (optional)")
		ecns          = flag.Int("ecns", 10, "Number of ECNs to generate")
		evalDate      = flag.String("eval-date", "", "Evaluation date (default: each quote's date)")

		format    = flag.String("format", "text", "Output format: text, json, html")
		outputDir = flag.String("output", "", "Output directory for html reports (optional)")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile:    *configFile,
		Seed:          *seed,
		ProjectName:   *project,
		DesignFreeze:  *designFreeze,
		MCS:           *mcs,
		Pilot:         *pilot,
		SOP:           *sop,
		Suppliers:     *suppliers,
		NewSuppliers:  *newSuppliers,
		SuppliersFile: *suppliersFile,
		ECNs:          *ecns,
		EvalDate:      *evalDate,
		Format:        *format,
		OutputDir:     *outputDir,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewSimulateCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
