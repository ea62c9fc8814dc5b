package domain

// FixOutcome describes one attempted fix.
type FixOutcome struct {
	Validator string           `json:"validator"`
	Attempted bool             `json:"attempted"`
	Converged bool             `json:"converged"`
	Result    ValidationResult `json:"result"`
}

// FixReport holds the outcomes of a fix batch with the report before and after.
type FixReport struct {
	Outcomes []FixOutcome     `json:"outcomes"`
	Before   ValidationReport `json:"before"`
	After    ValidationReport `json:"after"`
	Written  string           `json:"written,omitempty"`
}

// Unconverged returns the names of validators whose fix ran but did not help.
func (r FixReport) Unconverged() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Attempted && !o.Converged {
			names = append(names, o.Validator)
		}
	}
	return names
}

// FixOptions controls a fix batch.
type FixOptions struct {
	DryRun bool   `json:"dry_run"`
	Only   string `json:"only,omitempty"`
}
