package evaluation

// Linguistic variable names shared by the rule bases and the engine.
const (
	VarDueTime      = "due_time"
	VarDeliveryTime = "delivery_time"
	VarPunctuality  = "punctuality"
	VarSpend        = "spend"
)

// Clause is one antecedent condition: the variable's degree in any of the
// listed terms, combined with maximum (fuzzy OR).
type Clause struct {
	Var   string
	AnyOf []string
}

// Rule maps an antecedent to one consequent term of the output variable.
// The firing strength is the minimum (fuzzy AND) across clauses.
type Rule struct {
	When []Clause
	Then string
}

func is(v, term string) Clause { return Clause{Var: v, AnyOf: []string{term}} }
func either(v string, terms ...string) Clause { return Clause{Var: v, AnyOf: terms} }

// decisionRules is the implement/wait rule base for suppliers with delivery
// history. Due time is read against start of production: close means SOP is
// imminent, far means there is still room to onboard.
var decisionRules = []Rule{
	{When: []Clause{is(VarDueTime, "close"), is(VarDeliveryTime, "fast"), is(VarPunctuality, "bad")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "close"), is(VarDeliveryTime, "fast"), is(VarPunctuality, "regular"), is(VarSpend, "high")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "close"), either(VarDeliveryTime, "moderate", "slow"), either(VarPunctuality, "bad", "regular")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "close"), is(VarDeliveryTime, "moderate"), is(VarPunctuality, "good")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "close"), is(VarDeliveryTime, "fast"), is(VarPunctuality, "regular"), either(VarSpend, "low", "regular")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "close"), is(VarDeliveryTime, "fast"), is(VarPunctuality, "good")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "near"), either(VarDeliveryTime, "fast", "moderate"), is(VarPunctuality, "bad")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "near"), either(VarDeliveryTime, "fast", "moderate"), either(VarPunctuality, "regular", "good"), either(VarSpend, "low", "regular")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "near"), either(VarDeliveryTime, "fast", "moderate"), either(VarPunctuality, "regular", "good"), is(VarSpend, "high")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "near"), is(VarDeliveryTime, "slow")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "far"), is(VarDeliveryTime, "fast"), is(VarSpend, "low")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "far"), is(VarDeliveryTime, "fast"), is(VarPunctuality, "good"), is(VarSpend, "regular")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "far"), is(VarDeliveryTime, "fast"), either(VarPunctuality, "bad", "regular"), either(VarSpend, "regular", "high")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "far"), is(VarDeliveryTime, "fast"), is(VarPunctuality, "good"), is(VarSpend, "high")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "far"), either(VarDeliveryTime, "moderate", "slow"), is(VarPunctuality, "bad"), is(VarSpend, "regular")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "far"), either(VarDeliveryTime, "moderate", "slow"), is(VarSpend, "high")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "far"), either(VarDeliveryTime, "moderate", "slow"), is(VarPunctuality, "bad"), is(VarSpend, "low")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "far"), either(VarDeliveryTime, "moderate", "slow"), either(VarPunctuality, "regular", "good"), either(VarSpend, "low", "regular")}, Then: "implement"},
}

// newSupplierDecisionRules is the implement/wait rule base for suppliers
// without delivery history: punctuality carries no signal and is omitted.
var newSupplierDecisionRules = []Rule{
	{When: []Clause{is(VarDeliveryTime, "slow")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "close"), either(VarDeliveryTime, "fast", "moderate"), is(VarSpend, "high")}, Then: "wait"},
	{When: []Clause{either(VarDueTime, "close", "near"), either(VarDeliveryTime, "fast", "moderate"), either(VarSpend, "low", "regular")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "near"), is(VarSpend, "high")}, Then: "wait"},
	{When: []Clause{is(VarDueTime, "far"), either(VarDeliveryTime, "fast", "moderate"), is(VarSpend, "low")}, Then: "implement"},
	{When: []Clause{is(VarDueTime, "far"), either(VarDeliveryTime, "moderate", "slow"), either(VarSpend, "regular", "high")}, Then: "wait"},
}

// classificationRules rates suppliers low/regular/high when the evaluation
// objective is cost reduction rather than implementation time.
var classificationRules = []Rule{
	{When: []Clause{is(VarDeliveryTime, "fast"), either(VarSpend, "low", "regular"), is(VarPunctuality, "bad")}, Then: "regular"},
	{When: []Clause{is(VarDeliveryTime, "fast"), either(VarSpend, "low", "regular"), either(VarPunctuality, "regular", "good")}, Then: "high"},
	{When: []Clause{is(VarDeliveryTime, "fast"), is(VarSpend, "high"), is(VarPunctuality, "bad")}, Then: "low"},
	{When: []Clause{is(VarDeliveryTime, "fast"), is(VarSpend, "high"), either(VarPunctuality, "regular", "good")}, Then: "regular"},
	{When: []Clause{is(VarDeliveryTime, "moderate"), is(VarSpend, "low"), is(VarPunctuality, "bad")}, Then: "regular"},
	{When: []Clause{either(VarDeliveryTime, "moderate", "slow"), either(VarSpend, "low", "regular"), is(VarPunctuality, "regular")}, Then: "regular"},
	{When: []Clause{either(VarDeliveryTime, "moderate", "slow"), either(VarSpend, "low", "regular"), is(VarPunctuality, "good")}, Then: "high"},
	{When: []Clause{is(VarDeliveryTime, "moderate"), either(VarSpend, "regular", "high"), is(VarPunctuality, "bad")}, Then: "low"},
	{When: []Clause{either(VarDeliveryTime, "moderate", "slow"), is(VarSpend, "high"), is(VarPunctuality, "regular")}, Then: "low"},
	{When: []Clause{either(VarDeliveryTime, "moderate", "slow"), is(VarSpend, "high"), is(VarPunctuality, "good")}, Then: "regular"},
	{When: []Clause{is(VarDeliveryTime, "slow"), is(VarPunctuality, "bad")}, Then: "low"},
}

// newSupplierClassificationRules rates history-less suppliers on price and
// quoted lead time alone.
var newSupplierClassificationRules = []Rule{
	{When: []Clause{either(VarSpend, "low", "regular"), is(VarDeliveryTime, "fast")}, Then: "high"},
	{When: []Clause{either(VarSpend, "low", "regular"), is(VarDeliveryTime, "moderate")}, Then: "regular"},
	{When: []Clause{either(VarSpend, "low", "regular"), is(VarDeliveryTime, "slow")}, Then: "low"},
	{When: []Clause{is(VarSpend, "high")}, Then: "low"},
}
