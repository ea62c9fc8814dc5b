package domain

// Report statuses.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
	// StatusPending means nothing failed but some validators have not run.
	StatusPending = "pending"
)

// ValidationReport aggregates the current results of a registry.
type ValidationReport struct {
	Status    string            `json:"status"`
	AssetType AssetType         `json:"asset_type,omitempty"`
	Results   []ValidatorResult `json:"results"`
	Warnings  []string          `json:"warnings"`
	Errors    []string          `json:"errors"`
	Pending   []string          `json:"pending,omitempty"`
}

// ValidatorResult pairs a validator with its current result.
type ValidatorResult struct {
	ValidatorInfo
	ValidationResult
	Validated bool `json:"validated"`
}

// Blocking reports whether any error-category validator failed.
func (r ValidationReport) Blocking() bool { return len(r.Errors) > 0 }

// Result returns the entry for the named validator.
func (r ValidationReport) Result(name string) (ValidatorResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return ValidatorResult{}, false
}

// RunEntry is one recorded validation run.
type RunEntry struct {
	Timestamp  string   `json:"timestamp"`
	CommitHash string   `json:"commit_hash,omitempty"`
	SceneFile  string   `json:"scene_file"`
	AssetType  string   `json:"asset_type"`
	Status     string   `json:"status"`
	Errors     []string `json:"errors,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}
