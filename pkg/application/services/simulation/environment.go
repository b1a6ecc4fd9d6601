package simulation

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srmorales/npi-sourcing/pkg/application/dto"
	"github.com/srmorales/npi-sourcing/pkg/application/services/evaluation"
	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/domain/repositories"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/events"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/repositories/memory"
)

// Environment is the session-wide registry and orchestrator of a sourcing
// simulation: it owns every project, ECN, part, and supplier created during
// the session, the shared random source, and the evaluation engine. One
// environment serves one single-threaded session.
type Environment struct {
	cfg    config.Config
	seed   int64
	rng    *rand.Rand
	logger *zap.Logger

	projects  repositories.ProjectRepository
	ecns      repositories.ECNRepository
	suppliers repositories.SupplierRepository

	generator *QuoteGenerator
	engine    *evaluation.Engine
	log       *events.InMemoryEventStore

	supplierSeq int
	ecnSeq      int
}

// NewEnvironment creates a simulation environment. The seed is recorded as
// run provenance; identical seeds and call sequences reproduce a session.
func NewEnvironment(cfg config.Config, seed int64, logger *zap.Logger) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	engine, err := evaluation.NewEngine(cfg.Fuzzy)
	if err != nil {
		return nil, fmt.Errorf("build evaluation engine: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	env := &Environment{
		cfg:       cfg,
		seed:      seed,
		rng:       rng,
		logger:    logger,
		projects:  memory.NewProjectRepository(),
		ecns:      memory.NewECNRepository(),
		suppliers: memory.NewSupplierRepository(),
		generator: NewQuoteGenerator(cfg.Simulation, rng),
		engine:    engine,
		log:       events.NewInMemoryEventStore(),
	}
	logger.Info("simulation environment ready", zap.Int64("seed", seed))
	return env, nil
}

// Seed returns the random seed this session runs under.
func (e *Environment) Seed() int64 {
	return e.seed
}

// Events returns the session's lifecycle log in append order.
func (e *Environment) Events() []events.Event {
	return e.log.ReadAllEvents()
}

// CreateProject validates and registers a project.
func (e *Environment) CreateProject(name string, designFreeze, mcs, pilot, sop time.Time) (*entities.Project, error) {
	project, err := entities.NewProject(name, designFreeze, mcs, pilot, sop)
	if err != nil {
		return nil, err
	}
	if err := e.projects.AddProject(project); err != nil {
		return nil, err
	}
	e.logger.Info("project created",
		zap.String("project", name),
		zap.Time("sop", project.Date(entities.SOP)))
	return project, nil
}

// GetProject returns a registered project by name.
func (e *Environment) GetProject(name string) (*entities.Project, error) {
	return e.projects.GetProject(name)
}

// CreateSupplier registers a supplier under a unique name. Non-new
// suppliers receive a synthetic delivery history sampled from their
// punctuality profile, which seeds the on-time ratio their quotes snapshot.
func (e *Environment) CreateSupplier(name string, profile entities.Profile, newSupplier bool) (*entities.Supplier, error) {
	e.supplierSeq++
	supplier, err := entities.NewSupplier(
		fmt.Sprintf("SUP%05d", e.supplierSeq),
		name,
		profile,
		newSupplier,
	)
	if err != nil {
		return nil, err
	}

	if !newSupplier {
		trial := Bernoulli{P: e.cfg.Simulation.PunctualityRate[profile.Punctuality.String()]}
		deliveries := intBetween(e.rng, e.cfg.Simulation.HistoryDeliveries)
		for i := 0; i < deliveries; i++ {
			supplier.RecordDelivery(trial.Sample(e.rng) == 1)
		}
	}

	if err := e.suppliers.AddSupplier(supplier); err != nil {
		e.supplierSeq--
		return nil, err
	}
	e.log.AppendEvent(supplier.ID, events.NewEvent(events.SupplierCreatedEvent, supplier.ID,
		events.SupplierCreated{SupplierID: supplier.ID, Name: name, NewSupplier: newSupplier}))
	e.logger.Info("supplier created",
		zap.String("supplier", supplier.ID),
		zap.String("name", name),
		zap.Bool("new", newSupplier),
		zap.Float64("on_time_ratio", supplier.OnTimeRatio()))
	return supplier, nil
}

// GetSupplier scans registered suppliers by attribute and returns the first
// match in insertion order.
func (e *Environment) GetSupplier(field, value string) (*entities.Supplier, error) {
	return e.suppliers.FindSupplier(field, value)
}

// Suppliers returns every registered supplier in insertion order.
func (e *Environment) Suppliers() []*entities.Supplier {
	all, _ := e.suppliers.GetAllSuppliers()
	return all
}

// GenECNs produces qty ECNs with randomized parts bound to a project. Part
// count, complexity tier, and annual use are sampled within configured
// bounds; release dates fall within a month of design freeze.
func (e *Environment) GenECNs(projectName string, qty int) ([]*entities.ECN, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: ecn quantity must be positive, got %d", entities.ErrValidation, qty)
	}
	project, err := e.projects.GetProject(projectName)
	if err != nil {
		return nil, err
	}

	generated := make([]*entities.ECN, 0, qty)
	for i := 0; i < qty; i++ {
		partCount := intBetween(e.rng, e.cfg.Simulation.PartsPerECN)
		parts := make([]*entities.Part, 0, partCount)
		for j := 0; j < partCount; j++ {
			part, err := entities.NewPart(
				"PN-"+shortID(),
				entities.Complexity(e.rng.Intn(3)),
				intBetween(e.rng, e.cfg.Simulation.EAU),
			)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}

		e.ecnSeq++
		release := project.Date(entities.DesignFreeze).AddDate(0, 0, e.rng.Intn(31))
		ecn, err := entities.NewECN(fmt.Sprintf("ECN-%04d", e.ecnSeq), projectName, release, parts)
		if err != nil {
			return nil, err
		}
		if err := e.ecns.AddECN(ecn); err != nil {
			return nil, err
		}
		generated = append(generated, ecn)
		e.log.AppendEvent(ecn.ID, events.NewEvent(events.ECNGeneratedEvent, ecn.ID,
			events.ECNGenerated{ECNID: ecn.ID, ProjectName: projectName, ReleaseDate: release, PartCount: partCount}))
	}
	e.logger.Info("ecns generated", zap.String("project", projectName), zap.Int("count", qty))
	return generated, nil
}

// GetECN returns a registered ECN by id.
func (e *Environment) GetECN(id string) (*entities.ECN, error) {
	return e.ecns.GetECN(id)
}

// ProjectECNs returns the ECNs bound to a project in insertion order.
func (e *Environment) ProjectECNs(projectName string) ([]*entities.ECN, error) {
	if _, err := e.projects.GetProject(projectName); err != nil {
		return nil, err
	}
	return e.ecns.GetProjectECNs(projectName)
}

// QuoteAllECNsAllSuppliers runs the quote generator for every ECN of a
// project against every registered supplier, advancing quoted ECNs from
// Open to Quoted. Re-invocation regenerates quotes per (supplier, ECN)
// pair; it never appends duplicates.
func (e *Environment) QuoteAllECNsAllSuppliers(projectName string) error {
	ecns, err := e.ProjectECNs(projectName)
	if err != nil {
		return err
	}
	suppliers, err := e.suppliers.GetAllSuppliers()
	if err != nil {
		return err
	}

	for _, ecn := range ecns {
		if ecn.Status == entities.Implemented {
			continue
		}
		quoted := 0
		for _, supplier := range suppliers {
			quote, err := e.generator.Generate(supplier, ecn, ecn.ReleaseDate)
			if err != nil {
				return fmt.Errorf("quote %s for %s: %w", ecn.ID, supplier.ID, err)
			}
			quoted++
			e.log.AppendEvent(ecn.ID, events.NewEvent(events.QuoteIssuedEvent, ecn.ID,
				events.QuoteIssued{
					ECNID:        ecn.ID,
					SupplierID:   supplier.ID,
					QuoteDate:    quote.QuoteDate,
					LeadTimeDays: quote.LeadTimeDays,
					FYSpend:      quote.FYSpend.StringFixed(2),
				}))
		}
		if quoted > 0 && ecn.Status == entities.Open {
			if err := ecn.MarkQuoted(); err != nil {
				return err
			}
			e.log.AppendEvent(ecn.ID, events.NewEvent(events.ECNQuotedEvent, ecn.ID,
				events.ECNQuoted{ECNID: ecn.ID, QuoteCount: quoted}))
		}
	}
	e.logger.Info("quoting round complete",
		zap.String("project", projectName),
		zap.Int("ecns", len(ecns)),
		zap.Int("suppliers", len(suppliers)))
	return nil
}

// ImplementECN awards an ECN to a supplier. The ECN must be Quoted and the
// supplier must hold a quote for it; the transition is terminal and a
// second award never mutates state.
func (e *Environment) ImplementECN(ecnID, supplierID string) error {
	ecn, err := e.ecns.GetECN(ecnID)
	if err != nil {
		return err
	}
	supplier, err := e.suppliers.GetSupplier(supplierID)
	if err != nil {
		return err
	}
	if ecn.Status == entities.Quoted {
		if _, ok := supplier.QuoteFor(ecnID); !ok {
			return fmt.Errorf("%w: supplier %s never quoted ecn %s", entities.ErrNotQuoted, supplierID, ecnID)
		}
	}
	if err := ecn.Implement(supplierID); err != nil {
		return err
	}
	e.log.AppendEvent(ecnID, events.NewEvent(events.ECNImplementedEvent, ecnID,
		events.ECNImplemented{ECNID: ecnID, SupplierID: supplierID}))
	e.logger.Info("ecn implemented", zap.String("ecn", ecnID), zap.String("supplier", supplierID))
	return nil
}

// Evaluate scores one supplier against one ECN with the fuzzy engine. The
// due time is measured from at to the owning project's SOP milestone; a
// zero at falls back to the quote date. Evaluation reads registry state and
// writes nothing.
func (e *Environment) Evaluate(supplierID, ecnID string, at time.Time) (*dto.EvaluationResult, error) {
	supplier, err := e.suppliers.GetSupplier(supplierID)
	if err != nil {
		return nil, err
	}
	ecn, err := e.ecns.GetECN(ecnID)
	if err != nil {
		return nil, err
	}
	project, err := e.projects.GetProject(ecn.ProjectName)
	if err != nil {
		return nil, err
	}

	quote, ok := supplier.QuoteFor(ecnID)
	if !ok {
		return nil, fmt.Errorf("%w: supplier %s, ecn %s", ErrMissingQuote, supplierID, ecnID)
	}
	if at.IsZero() {
		at = quote.QuoteDate
	}

	decision, err := e.engine.Evaluate(evaluation.Inputs{
		DeliveryTimeDays: float64(quote.LeadTimeDays),
		SpendHundreds:    spendHundreds(quote.FYSpend),
		OnTimeRatio:      quote.OnTimeRatio,
		DueTimeDays:      float64(project.DaysToSOP(at)),
		NewSupplier:      supplier.NewSupplier,
	})
	if err != nil {
		return nil, err
	}

	e.log.AppendEvent(ecnID, events.NewEvent(events.EvaluationCompletedEvent, ecnID,
		events.EvaluationCompleted{
			ECNID:      ecnID,
			SupplierID: supplierID,
			Score:      decision.Score,
			Action:     decision.Action.String(),
		}))
	return &dto.EvaluationResult{
		SupplierID:    supplier.ID,
		SupplierName:  supplier.Name,
		ECNID:         ecnID,
		NewSupplier:   supplier.NewSupplier,
		Score:         decision.Score,
		Wait:          decision.Wait,
		Implement:     decision.Implement,
		Action:        decision.Action.String(),
		RuleStrengths: decision.RuleStrengths,
	}, nil
}

// ClassifySupplier rates a supplier low/regular/high across every ECN it
// quoted for a project, weighing aggregate spend against the mean quoted
// lead time.
func (e *Environment) ClassifySupplier(supplierID, projectName string) (*dto.ClassificationResult, error) {
	supplier, err := e.suppliers.GetSupplier(supplierID)
	if err != nil {
		return nil, err
	}
	ecns, err := e.ProjectECNs(projectName)
	if err != nil {
		return nil, err
	}

	spend := decimal.Zero
	leadSum, quoted := 0, 0
	for _, ecn := range ecns {
		quote, ok := supplier.QuoteFor(ecn.ID)
		if !ok {
			continue
		}
		spend = spend.Add(quote.FYSpend)
		leadSum += quote.LeadTimeDays
		quoted++
	}
	if quoted == 0 {
		return nil, fmt.Errorf("%w: supplier %s, project %s", ErrMissingQuote, supplierID, projectName)
	}

	classification, err := e.engine.Classify(evaluation.Inputs{
		DeliveryTimeDays: float64(leadSum) / float64(quoted),
		SpendHundreds:    spendHundreds(spend),
		OnTimeRatio:      supplier.OnTimeRatio(),
		NewSupplier:      supplier.NewSupplier,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ClassificationResult{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		ProjectName:  projectName,
		NewSupplier:  supplier.NewSupplier,
		Score:        classification.Score,
		Low:          classification.Low,
		Regular:      classification.Regular,
		High:         classification.High,
		Rating:       classification.Rating,
	}, nil
}

// spendHundreds converts a decimal spend to the engine's hundreds-of-
// currency-units scale.
func spendHundreds(spend decimal.Decimal) float64 {
	return spend.Div(decimal.NewFromInt(100)).InexactFloat64()
}

func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
