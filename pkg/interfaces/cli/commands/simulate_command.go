package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/srmorales/npi-sourcing/pkg/application/dto"
	"github.com/srmorales/npi-sourcing/pkg/application/services/simulation"
	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/repositories/csv"
	"github.com/srmorales/npi-sourcing/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command
type Config struct {
	ConfigFile string
	Seed       int64

	ProjectName  string
	DesignFreeze string
	MCS          string
	Pilot        string
	SOP          string

	Suppliers     int
	NewSuppliers  int
	SuppliersFile string
	ECNs          int
	EvalDate      string

	Format    string
	OutputDir string
	Verbose   bool
	Help      bool
}

// SimulateCommand runs one full sourcing session: register a project and a
// supplier pool, generate and quote ECNs, then evaluate and classify every
// supplier against every ECN.
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given
// configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{
		config: config,
	}
}

// supplierPresets cycles generation profiles across the pool so a session
// always mixes cheap, slow, punctual, and unremarkable bidders.
var supplierPresets = []struct {
	name    string
	profile entities.Profile
}{
	{"Altamira Metalworks", entities.Profile{
		Price: entities.LowProfile, Delivery: entities.RegularProfile,
		Punctuality: entities.RegularProfile, Quotation: entities.RegularProfile,
	}},
	{"Borealis Tube & Fitting", entities.Profile{
		Price: entities.HighProfile, Delivery: entities.HighProfile,
		Punctuality: entities.HighProfile, Quotation: entities.HighProfile,
	}},
	{"Cobre del Norte", entities.DefaultProfile()},
	{"Danube Precision Piping", entities.Profile{
		Price: entities.RegularProfile, Delivery: entities.LowProfile,
		Punctuality: entities.LowProfile, Quotation: entities.LowProfile,
	}},
	{"Estrella Components", entities.Profile{
		Price: entities.LowProfile, Delivery: entities.HighProfile,
		Punctuality: entities.RegularProfile, Quotation: entities.RegularProfile,
	}},
}

// Execute runs the simulate command
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	milestones, err := c.parseMilestones()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if c.config.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
	}

	env, err := simulation.NewEnvironment(cfg, c.config.Seed, logger)
	if err != nil {
		return err
	}

	project, err := env.CreateProject(c.config.ProjectName,
		milestones[0], milestones[1], milestones[2], milestones[3])
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	if err := c.registerSuppliers(env); err != nil {
		return err
	}

	if _, err := env.GenECNs(c.config.ProjectName, c.config.ECNs); err != nil {
		return fmt.Errorf("generate ecns: %w", err)
	}
	if err := env.QuoteAllECNsAllSuppliers(c.config.ProjectName); err != nil {
		return fmt.Errorf("quoting round: %w", err)
	}

	evalDate, err := c.parseEvalDate()
	if err != nil {
		return err
	}

	report, err := c.buildReport(env, project, evalDate)
	if err != nil {
		return err
	}
	return output.Generate(report, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

// registerSuppliers fills the pool from a roster file when one is given,
// from the built-in presets otherwise.
func (c *SimulateCommand) registerSuppliers(env *simulation.Environment) error {
	if c.config.SuppliersFile != "" {
		roster, err := csv.NewLoader().LoadSuppliers(c.config.SuppliersFile)
		if err != nil {
			return fmt.Errorf("load supplier roster: %w", err)
		}
		for _, spec := range roster {
			if _, err := env.CreateSupplier(spec.Name, spec.Profile, spec.NewSupplier); err != nil {
				return fmt.Errorf("create supplier %q: %w", spec.Name, err)
			}
		}
		return nil
	}

	for i := 0; i < c.config.Suppliers; i++ {
		preset := supplierPresets[i%len(supplierPresets)]
		name := preset.name
		if i >= len(supplierPresets) {
			name = fmt.Sprintf("%s %d", preset.name, i/len(supplierPresets)+1)
		}
		isNew := i < c.config.NewSuppliers
		if _, err := env.CreateSupplier(name, preset.profile, isNew); err != nil {
			return fmt.Errorf("create supplier %q: %w", name, err)
		}
	}
	return nil
}

func (c *SimulateCommand) buildReport(
	env *simulation.Environment,
	project *entities.Project,
	evalDate time.Time,
) (*dto.SimulationReport, error) {
	report := &dto.SimulationReport{
		Seed:         env.Seed(),
		ProjectName:  project.Name,
		DesignFreeze: project.Date(entities.DesignFreeze),
		MCS:          project.Date(entities.MCS),
		Pilot:        project.Date(entities.Pilot),
		SOP:          project.Date(entities.SOP),
	}

	ecns, err := env.ProjectECNs(project.Name)
	if err != nil {
		return nil, err
	}

	for _, supplier := range env.Suppliers() {
		report.Suppliers = append(report.Suppliers, dto.SupplierSummary{
			SupplierID:  supplier.ID,
			Name:        supplier.Name,
			NewSupplier: supplier.NewSupplier,
			OnTimeRatio: supplier.OnTimeRatio(),
			QuoteCount:  supplier.QuoteCount(),
		})

		for _, ecn := range ecns {
			if quote, ok := supplier.QuoteFor(ecn.ID); ok {
				report.Quotes = append(report.Quotes, dto.QuoteSummary{
					SupplierID:   quote.SupplierID,
					ECNID:        quote.ECNID,
					QuoteDate:    quote.QuoteDate,
					LeadTimeDays: quote.LeadTimeDays,
					OnTimeRatio:  quote.OnTimeRatio,
					FYSpend:      quote.FYSpend.StringFixed(2),
				})
			}
			result, err := env.Evaluate(supplier.ID, ecn.ID, evalDate)
			if err != nil {
				return nil, fmt.Errorf("evaluate %s/%s: %w", supplier.ID, ecn.ID, err)
			}
			report.Evaluations = append(report.Evaluations, *result)
		}

		rating, err := env.ClassifySupplier(supplier.ID, project.Name)
		if err != nil {
			return nil, fmt.Errorf("classify %s: %w", supplier.ID, err)
		}
		report.Classifications = append(report.Classifications, *rating)
	}

	if err := awardBest(env, report); err != nil {
		return nil, err
	}

	for _, ecn := range ecns {
		report.ECNs = append(report.ECNs, dto.ECNSummary{
			ECNID:         ecn.ID,
			ProjectName:   ecn.ProjectName,
			ReleaseDate:   ecn.ReleaseDate,
			PartCount:     len(ecn.Parts),
			TotalEAU:      ecn.TotalEAU(),
			Status:        ecn.Status.String(),
			ImplementedBy: ecn.ImplementedBy,
		})
	}
	return report, nil
}

// awardBest implements each ECN with its highest-scoring supplier among
// those the evaluation recommends implementing. ECNs where every supplier
// scores a Wait stay Quoted.
func awardBest(env *simulation.Environment, report *dto.SimulationReport) error {
	best := make(map[string]dto.EvaluationResult)
	var order []string
	for _, eval := range report.Evaluations {
		if eval.Action != "Implement" {
			continue
		}
		current, ok := best[eval.ECNID]
		if !ok {
			order = append(order, eval.ECNID)
		}
		if !ok || eval.Score > current.Score {
			best[eval.ECNID] = eval
		}
	}
	for _, ecnID := range order {
		winner := best[ecnID]
		if err := env.ImplementECN(ecnID, winner.SupplierID); err != nil {
			return fmt.Errorf("award %s to %s: %w", ecnID, winner.SupplierID, err)
		}
	}
	return nil
}

func (c *SimulateCommand) loadConfig() (config.Config, error) {
	if c.config.ConfigFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c *SimulateCommand) parseMilestones() ([4]time.Time, error) {
	var out [4]time.Time
	for i, spec := range []struct {
		name  string
		value string
	}{
		{"design-freeze", c.config.DesignFreeze},
		{"mcs", c.config.MCS},
		{"pilot", c.config.Pilot},
		{"sop", c.config.SOP},
	} {
		parsed, err := time.Parse("2006-01-02", spec.value)
		if err != nil {
			return out, fmt.Errorf("invalid %s date %q: use YYYY-MM-DD", spec.name, spec.value)
		}
		out[i] = parsed
	}
	return out, nil
}

func (c *SimulateCommand) parseEvalDate() (time.Time, error) {
	if c.config.EvalDate == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", c.config.EvalDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid eval date %q: use YYYY-MM-DD", c.config.EvalDate)
	}
	return parsed, nil
}

func (c *SimulateCommand) validateInputs() error {
	if c.config.ProjectName == "" {
		return fmt.Errorf("project name is required")
	}
	if c.config.Suppliers < 1 {
		return fmt.Errorf("at least one supplier is required")
	}
	if c.config.NewSuppliers < 0 || c.config.NewSuppliers > c.config.Suppliers {
		return fmt.Errorf("new supplier count must be between 0 and %d", c.config.Suppliers)
	}
	if c.config.ECNs < 1 {
		return fmt.Errorf("at least one ECN is required")
	}
	switch c.config.Format {
	case "text", "json", "html":
	default:
		return fmt.Errorf("unsupported format: %s (use text, json, or html)", c.config.Format)
	}
	return nil
}

func (c *SimulateCommand) showHelp() {
	fmt.Println("NPI Sourcing Simulator")
	fmt.Println("======================")
	fmt.Println()
	fmt.Println("Runs a supplier qualification session for a new product introduction:")
	fmt.Println("generates engineering change notices, collects quotes from a supplier")
	fmt.Println("pool, and scores each supplier with a fuzzy implement/wait evaluation.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  npisim -project <name> -sop <date> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config <path>          YAML config overlaying the built-in defaults")
	fmt.Println("  -seed <n>               Random seed (default: current time)")
	fmt.Println("  -project <name>         Project name (required)")
	fmt.Println("  -design-freeze <date>   Design freeze milestone, YYYY-MM-DD")
	fmt.Println("  -mcs <date>             Manufacturing confidence sample milestone")
	fmt.Println("  -pilot <date>           Pilot build milestone")
	fmt.Println("  -sop <date>             Start of production milestone")
	fmt.Println("  -suppliers <n>          Supplier pool size (default: 5)")
	fmt.Println("  -new-suppliers <n>      Suppliers without delivery history (default: 1)")
	fmt.Println("  -suppliers-file <path>  CSV supplier roster overriding the built-in pool")
	fmt.Println("  -ecns <n>               ECNs to generate (default: 10)")
	fmt.Println("  -eval-date <date>       Evaluation date (default: each quote's date)")
	fmt.Println("  -format <fmt>           Output format: text, json, html (default: text)")
	fmt.Println("  -output <dir>           Directory for html reports (default: stdout)")
	fmt.Println("  -verbose                Enable verbose output")
	fmt.Println("  -help                   Show this help message")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println("  npisim -project falcon -design-freeze 2025-03-01 -mcs 2025-04-15 \\")
	fmt.Println("         -pilot 2025-05-20 -sop 2025-07-01 -suppliers 6 -ecns 12")
}
