package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
)

// QuoteGenerator samples quote records from profile-conditioned
// distributions. A supplier's profile biases the distributions but never
// fixes an outcome: a high-delivery supplier merely tends to quote shorter
// lead times.
type QuoteGenerator struct {
	cfg config.SimulationConfig
	rng *rand.Rand
}

// NewQuoteGenerator creates a quote generator over a shared random source
func NewQuoteGenerator(cfg config.SimulationConfig, rng *rand.Rand) *QuoteGenerator {
	return &QuoteGenerator{cfg: cfg, rng: rng}
}

// Generate samples a quote for one (supplier, ECN) pair and attaches it to
// the supplier, replacing any earlier quote for the same ECN. Guarantees:
// prices are non-negative, the lead time is non-negative, and the on-time
// snapshot stays within [0,1].
func (g *QuoteGenerator) Generate(
	supplier *entities.Supplier,
	ecn *entities.ECN,
	rfqDate time.Time,
) (*entities.Quote, error) {
	turnaround := g.quotationDays(supplier.Profile.Quotation)
	leadTime := g.leadTimeDays(supplier.Profile.Delivery)

	lines := make([]entities.QuoteLine, 0, len(ecn.Parts))
	for _, part := range ecn.Parts {
		price, err := g.unitPrice(part.Complexity, supplier.Profile.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entities.QuoteLine{
			PartID:     part.ID,
			Complexity: part.Complexity,
			EAU:        part.EAU,
			UnitPrice:  price,
		})
	}

	quote, err := entities.NewQuote(
		supplier.ID,
		ecn.ID,
		rfqDate.AddDate(0, 0, turnaround),
		leadTime,
		supplier.OnTimeRatio(),
		lines,
	)
	if err != nil {
		return nil, fmt.Errorf("generate quote for %s/%s: %w", supplier.ID, ecn.ID, err)
	}
	if err := supplier.SetQuote(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (g *QuoteGenerator) quotationDays(level entities.ProfileLevel) int {
	stat := g.cfg.QuotationTime[level.String()]
	s := Normal{Mean: stat.Mean, StdDev: stat.StdDev, Min: float64(g.cfg.MinimumQuotationDays)}
	return int(math.Round(s.Sample(g.rng)))
}

func (g *QuoteGenerator) leadTimeDays(level entities.ProfileLevel) int {
	factor := g.cfg.DeliveryFactors[level.String()]
	s := scaled(g.cfg.DeliveryTime, factor, float64(g.cfg.MinimumDeliveryDays))
	return int(math.Round(s.Sample(g.rng)))
}

func (g *QuoteGenerator) unitPrice(tier entities.Complexity, level entities.ProfileLevel) (decimal.Decimal, error) {
	base, ok := g.cfg.PriceByComplexity[tier.String()]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price distribution for complexity %s", tier)
	}
	factor := g.cfg.PriceFactors[level.String()]
	s := scaled(base, factor, g.cfg.MinimumPrice)
	return decimal.NewFromFloat(s.Sample(g.rng)).Round(2), nil
}
