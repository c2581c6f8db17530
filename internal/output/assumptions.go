package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Contribution weeks accrue at a flat 52 per year until retirement",
	"UMA held at its published value for the whole projection (no indexing)",
	"Modalidad 40 years past the rate table pay the latest published rate",
	"Age factor never exceeds 100%; deferring past 65 earns no bonus",
	"Cumulative benefit measured over a fixed horizon without discounting",
}
