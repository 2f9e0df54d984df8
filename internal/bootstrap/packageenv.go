package bootstrap

import (
	"context"
	"fmt"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// PackageEnvStep ensures the uv package manager is available: a no-op
// when it is already on the path, otherwise one install attempt followed
// by a re-check. Still missing after the attempt is fatal, since the
// environment setup that follows depends on it.
type PackageEnvStep struct{}

func (PackageEnvStep) Name() string { return "packageenv" }

func (s PackageEnvStep) Run(_ context.Context, bctx *Context) Outcome {
	if bctx.Uv.IsInstalled() {
		return skipped(s.Name(), "uv is already installed")
	}

	logger.Info("[INFO] uv not found. Installing uv...\n")
	if err := bctx.Uv.Install(); err != nil {
		return failed(s.Name(), fmt.Errorf("%w: install attempt failed: %v", ErrProvisionerUnavailable, err), true)
	}
	if !bctx.Uv.IsInstalled() {
		return failed(s.Name(), fmt.Errorf("%w: uv still not on PATH after install", ErrProvisionerUnavailable), true)
	}
	return ok(s.Name(), "installed uv")
}
