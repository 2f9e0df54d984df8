package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/logger"
	"github.com/utkarshg1/pycargo/internal/template"
)

// EnvSetupStep initializes the uv project and virtual environment inside
// the project directory and installs the manifest's packages. Existing
// artifacts (pyproject.toml, .venv) are left alone so a re-run only does
// the remaining work. Failures are fatal: a usable environment is the
// point of the tool.
type EnvSetupStep struct{}

func (EnvSetupStep) Name() string { return "envsetup" }

func (s EnvSetupStep) Run(_ context.Context, bctx *Context) Outcome {
	dir := bctx.Plan.ProjectName
	var done []string

	hasProject, err := afero.Exists(bctx.Fs, filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return failed(s.Name(), fmt.Errorf("failed to check for pyproject.toml: %w", err), true)
	}
	if hasProject {
		logger.Debug("[DEBUG] pyproject.toml present, skipping uv init\n")
	} else {
		if err := bctx.Uv.Init(dir); err != nil {
			return failed(s.Name(), fmt.Errorf("failed to initialize uv project: %w", err), true)
		}
		done = append(done, "initialized project")
	}

	hasVenv, err := afero.DirExists(bctx.Fs, filepath.Join(dir, ".venv"))
	if err != nil {
		return failed(s.Name(), fmt.Errorf("failed to check for .venv: %w", err), true)
	}
	if hasVenv {
		logger.Debug("[DEBUG] .venv present, skipping uv venv\n")
	} else {
		if err := bctx.Uv.Venv(dir); err != nil {
			return failed(s.Name(), fmt.Errorf("failed to create virtual environment: %w", err), true)
		}
		done = append(done, "created virtual environment")
	}

	// A blank setup has no packages to install.
	if bctx.Plan.Setup != template.Blank {
		if err := bctx.Uv.AddRequirements(dir, ManifestFile); err != nil {
			return failed(s.Name(), fmt.Errorf("failed to add requirements: %w", err), true)
		}
		if err := bctx.Uv.Sync(dir); err != nil {
			return failed(s.Name(), fmt.Errorf("failed to sync environment: %w", err), true)
		}
		done = append(done, "installed requirements")
	}

	if len(done) == 0 {
		return skipped(s.Name(), "environment already set up")
	}
	return ok(s.Name(), strings.Join(done, ", "))
}
