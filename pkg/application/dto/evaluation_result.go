package dto

// EvaluationResult is the boundary record of one supplier/ECN/project
// evaluation.
type EvaluationResult struct {
	SupplierID   string  `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	ECNID        string  `json:"ecn_id"`
	NewSupplier  bool    `json:"new_supplier"`
	Score        float64 `json:"score"`
	Wait         float64 `json:"wait"`
	Implement    float64 `json:"implement"`
	// Action is the argmax of the wait and implement activations; exact
	// ties resolve to "Wait".
	Action string `json:"action"`
	// RuleStrengths records per-rule firing strengths in rule-base order.
	RuleStrengths []float64 `json:"rule_strengths"`
}

// ClassificationResult is the boundary record of a spend-priority rating of
// one supplier across a project's ECNs.
type ClassificationResult struct {
	SupplierID   string  `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	ProjectName  string  `json:"project_name"`
	NewSupplier  bool    `json:"new_supplier"`
	Score        float64 `json:"score"`
	Low          float64 `json:"low"`
	Regular      float64 `json:"regular"`
	High         float64 `json:"high"`
	Rating       string  `json:"rating"`
}
