package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/utkarshg1/pycargo/internal/githubapi"
	"github.com/utkarshg1/pycargo/internal/logger"
)

// RemoteName is the remote the created repository is linked as.
const RemoteName = "origin"

// RemoteStep creates the hosted repository and links it as origin. It
// only runs when the plan requests a remote, performs exactly one
// creation attempt (it is the only step mutating state outside the local
// machine, so it is never retried silently), and every failure is fatal:
// an auth failure or name conflict must reach the operator unchanged.
type RemoteStep struct{}

func (RemoteStep) Name() string { return "remote" }

func (s RemoteStep) Run(ctx context.Context, bctx *Context) Outcome {
	remote := bctx.Plan.Remote
	if remote == nil {
		return skipped(s.Name(), "no remote repository requested")
	}

	cloneURL, err := bctx.Repos.CreateRepository(ctx, remote.RepoName, remote.Private)
	if err != nil {
		if errors.Is(err, githubapi.ErrAuthFailed) {
			logger.Error("[ERROR] GitHub rejected the credential. Check that GITHUB_TOKEN is valid, unexpired, and has the repo scope.\n")
		}
		return failed(s.Name(), err, true)
	}

	if err := bctx.Git.AddRemote(bctx.Plan.ProjectName, RemoteName, cloneURL); err != nil {
		return failed(s.Name(), fmt.Errorf("repository created but linking remote failed: %w", err), true)
	}
	return ok(s.Name(), fmt.Sprintf("created %s and linked as %s", strings.TrimSuffix(cloneURL, ".git"), RemoteName))
}
