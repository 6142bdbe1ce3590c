package domain

// DefaultCurrencySymbol is the currency glyph used for never-configured owners.
const DefaultCurrencySymbol = "₹"

// DefaultCostCoefficient is the cost multiplier used for never-configured owners.
const DefaultCostCoefficient = 1.0

// UserSettings holds the per-owner cost-calculation configuration.
// There is exactly one settings document per owner, keyed by owner_email,
// created lazily on first read.
type UserSettings struct {
	// OwnerEmail is the email of the owning user and the unique key.
	OwnerEmail string `json:"owner_email"`

	// CostCoefficient is the multiplier applied to raw ink cost.
	CostCoefficient float64 `json:"cost_coefficient"`

	// CurrencySymbol is the glyph used when displaying costs.
	CurrencySymbol string `json:"currency_symbol"`
}

// DefaultSettings returns the settings a never-configured owner starts with.
func DefaultSettings(ownerEmail string) *UserSettings {
	return &UserSettings{
		OwnerEmail:      ownerEmail,
		CostCoefficient: DefaultCostCoefficient,
		CurrencySymbol:  DefaultCurrencySymbol,
	}
}
