package output

import (
	"encoding/json"
	"fmt"

	"github.com/srmorales/npi-sourcing/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a simulation report in the specified format
func Generate(report *dto.SimulationReport, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report)
	case "html":
		return generateHTMLOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *dto.SimulationReport, config Config) error {
	fmt.Printf("📊 Sourcing Session Summary\n")
	fmt.Printf("===========================\n\n")

	fmt.Printf("Project: %s (SOP %s)\n", report.ProjectName, report.SOP.Format("2006-01-02"))
	fmt.Printf("Seed: %d\n", report.Seed)
	fmt.Printf("Suppliers: %d\n", len(report.Suppliers))
	fmt.Printf("ECNs: %d\n\n", len(report.ECNs))

	if len(report.Suppliers) > 0 {
		fmt.Printf("🏭 Supplier Pool:\n")
		fmt.Printf("%-10s %-26s %-6s %-10s %-8s\n",
			"ID", "Name", "New", "On-Time", "Quotes")
		fmt.Printf("%-10s %-26s %-6s %-10s %-8s\n",
			"----------", "--------------------------", "------", "----------", "--------")
		for _, s := range report.Suppliers {
			fmt.Printf("%-10s %-26s %-6s %-10.2f %-8d\n",
				s.SupplierID, s.Name, yesNo(s.NewSupplier), s.OnTimeRatio, s.QuoteCount)
		}
		fmt.Println()
	}

	if config.Verbose && len(report.ECNs) > 0 {
		fmt.Printf("📋 Engineering Change Notices:\n")
		fmt.Printf("%-10s %-12s %-7s %-9s %-12s\n",
			"ID", "Release", "Parts", "EAU", "Status")
		fmt.Printf("%-10s %-12s %-7s %-9s %-12s\n",
			"----------", "------------", "-------", "---------", "------------")
		for _, e := range report.ECNs {
			fmt.Printf("%-10s %-12s %-7d %-9d %-12s\n",
				e.ECNID, e.ReleaseDate.Format("2006-01-02"), e.PartCount, e.TotalEAU, e.Status)
		}
		fmt.Println()
	}

	if len(report.Evaluations) > 0 {
		fmt.Printf("⚖️  Evaluations:\n")
		fmt.Printf("%-10s %-10s %-8s %-8s %-11s %-10s\n",
			"Supplier", "ECN", "Score", "Wait", "Implement", "Action")
		fmt.Printf("%-10s %-10s %-8s %-8s %-11s %-10s\n",
			"----------", "----------", "--------", "--------", "-----------", "----------")
		for _, eval := range report.Evaluations {
			fmt.Printf("%-10s %-10s %-8.3f %-8.3f %-11.3f %-10s\n",
				eval.SupplierID, eval.ECNID, eval.Score, eval.Wait, eval.Implement, eval.Action)
		}
		fmt.Println()
	}

	if len(report.Classifications) > 0 {
		fmt.Printf("🏷️  Spend-Priority Ratings:\n")
		fmt.Printf("%-10s %-26s %-8s %-10s\n",
			"Supplier", "Name", "Score", "Rating")
		fmt.Printf("%-10s %-26s %-8s %-10s\n",
			"----------", "--------------------------", "--------", "----------")
		for _, cls := range report.Classifications {
			fmt.Printf("%-10s %-26s %-8.3f %-10s\n",
				cls.SupplierID, cls.SupplierName, cls.Score, cls.Rating)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *dto.SimulationReport) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
