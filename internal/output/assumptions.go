package output

// DefaultAssumptions lists the estimation assumptions rendered in the HTML timesheet.
var DefaultAssumptions = []string{
	"Weekly pay annualized as gross x 52 (the 52.14-week year is ignored)",
	"Federal withholding: 2026 projected brackets and standard deductions",
	"State withholding: representative tables; unmapped states estimated at 4% of gross",
	"FICA: 6.2% Social Security + 1.45% Medicare, no wage base cap",
	"Contractor (1099) profiles withhold nothing",
}
