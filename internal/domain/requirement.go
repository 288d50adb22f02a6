package domain

// Town center levels outside this range are rejected with the
// invalid-level card rather than an error.
const (
	MinTCLevel = 2
	MaxTCLevel = 30
)

// RequirementRecord holds the static upgrade requirements for one town
// center level. Fields are display text taken verbatim from the source
// table; resource costs may carry non-numeric formatting ("1.2M").
// Records are immutable once loaded.
type RequirementRecord struct {
	Level         int
	Prerequisites string
	Bread         string
	Wood          string
	Coal          string
	Iron          string
	UpgradeTime   string
}
