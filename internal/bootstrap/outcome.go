package bootstrap

// Status classifies how a step finished.
type Status string

const (
	StatusOK      Status = "ok"      // Step did its work
	StatusSkipped Status = "skipped" // Nothing to do (already satisfied)
	StatusFailed  Status = "failed"  // Step failed; Fatal decides continuation
)

// Outcome is a step's report to the orchestrator. The Runner uses Status
// and Fatal to decide continuation and the final exit classification.
type Outcome struct {
	Step   string // Step name, stable across runs
	Status Status
	Detail string // Human-readable summary for the final report
	Err    error  // Set when Status is StatusFailed
	Fatal  bool   // True when the failure must abort the pipeline
}

func ok(step, detail string) Outcome {
	return Outcome{Step: step, Status: StatusOK, Detail: detail}
}

func skipped(step, detail string) Outcome {
	return Outcome{Step: step, Status: StatusSkipped, Detail: detail}
}

func failed(step string, err error, fatal bool) Outcome {
	return Outcome{Step: step, Status: StatusFailed, Detail: err.Error(), Err: err, Fatal: fatal}
}
