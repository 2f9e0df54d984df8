// Package bootstrap implements the provisioning pipeline: the ordered
// sequence of steps that turn a validated plan into a project workspace.
// Steps run strictly sequentially; each one reports an Outcome, and a
// fatal failure aborts the remaining steps while leaving every completed
// step's artifacts in place.
package bootstrap

import (
	"context"
	"net/http"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/githubapi"
	"github.com/utkarshg1/pycargo/internal/gitops"
	"github.com/utkarshg1/pycargo/internal/logger"
	"github.com/utkarshg1/pycargo/internal/plan"
	"github.com/utkarshg1/pycargo/internal/uv"
)

// PromptFunc asks the user for a value of the named identity field
// ("name" or "email"). It is supplied by the caller so the pipeline
// itself carries no user-interaction concerns.
type PromptFunc func(field string) (string, error)

// Context carries the immutable plan, the external collaborators, and the
// outcomes of the steps run so far. Steps read from it; only the Runner
// appends to Outcomes.
type Context struct {
	Plan       *plan.Plan
	Fs         afero.Fs
	Git        gitops.Git
	Uv         uv.Tool
	Repos      githubapi.RepoCreator
	Prompt     PromptFunc
	HTTPClient *http.Client // Used for asset downloads; nil means http.DefaultClient

	Outcomes []Outcome
}

// Step is a single unit of work in the bootstrap pipeline.
type Step interface {
	Name() string
	Run(ctx context.Context, bctx *Context) Outcome
}

// Runner executes steps in order, gating each step on the previous one's
// completion. There is no parallelism: later steps depend on filesystem
// and VCS state produced by earlier ones.
type Runner struct {
	Steps []Step
}

// NewRunner returns a Runner with the full provisioning sequence:
// directory, manifest, vcs, assets, packageenv, envsetup, remote.
func NewRunner() *Runner {
	return &Runner{
		Steps: []Step{
			DirectoryStep{},
			ManifestStep{},
			VCSStep{},
			AssetStep{},
			PackageEnvStep{},
			EnvSetupStep{},
			RemoteStep{},
		},
	}
}

// Report is the accumulated result of one pipeline run.
type Report struct {
	Outcomes []Outcome
	Aborted  bool // True when a fatal failure cut the pipeline short
}

// Success reports whether the run counts as successful: every fatal-class
// step succeeded. Non-fatal failures (unset identity, asset download
// errors) do not change the classification.
func (r Report) Success() bool {
	for _, out := range r.Outcomes {
		if out.Status == StatusFailed && out.Fatal {
			return false
		}
	}
	return true
}

// Run executes the steps in order. A fatal failure terminates the
// pipeline immediately after the failing step; completed steps are never
// rolled back, so a re-invocation can resume through the steps'
// idempotency rules.
func (r *Runner) Run(ctx context.Context, bctx *Context) Report {
	var report Report
	for _, step := range r.Steps {
		logger.Debug("[DEBUG] Running step %s\n", step.Name())
		out := step.Run(ctx, bctx)

		switch out.Status {
		case StatusOK:
			logger.Info("[INFO] %s: %s\n", out.Step, out.Detail)
		case StatusSkipped:
			logger.Info("[INFO] %s: skipped (%s)\n", out.Step, out.Detail)
		case StatusFailed:
			if out.Fatal {
				logger.Error("[ERROR] %s: %v\n", out.Step, out.Err)
			} else {
				logger.Warn("[WARN] %s: %v\n", out.Step, out.Err)
			}
		}

		bctx.Outcomes = append(bctx.Outcomes, out)
		report.Outcomes = append(report.Outcomes, out)

		if out.Status == StatusFailed && out.Fatal {
			report.Aborted = true
			break
		}
	}
	return report
}
