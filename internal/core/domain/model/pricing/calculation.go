package pricing

// Calculation is the result of resolving pricing rules against a toy's base
// rate. AppliedRuleNames lists every rule that touched the running price,
// regardless of type, so quotes stay auditable. TotalDiscount accumulates
// only the deltas contributed by DISCOUNT rules.
type Calculation struct {
	BasePrice          float64  `json:"basePrice"`
	FinalPrice         float64  `json:"finalPrice"`
	TotalDiscount      float64  `json:"totalDiscount"`
	DiscountPercentage float64  `json:"discountPercentage"`
	AppliedRuleNames   []string `json:"appliedRuleNames"`
	PricingType        Type     `json:"pricingType"`
}
