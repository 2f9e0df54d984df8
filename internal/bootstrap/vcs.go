package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// identityKeys maps the git configuration keys to the field name used
// when prompting the user.
var identityKeys = []struct {
	Key   string
	Field string
}{
	{Key: "user.name", Field: "name"},
	{Key: "user.email", Field: "email"},
}

// VCSStep initializes the local repository and checks the committer
// identity, prompting for and setting any missing value. Every failure
// here is non-fatal: identity is only required for future commits, and
// the remaining steps need the directory, not a working repository.
type VCSStep struct{}

func (VCSStep) Name() string { return "vcs" }

func (s VCSStep) Run(_ context.Context, bctx *Context) Outcome {
	dir := bctx.Plan.ProjectName

	if err := bctx.Git.Init(dir); err != nil {
		return failed(s.Name(), fmt.Errorf("%w: init: %v", ErrVCSConfig, err), false)
	}

	var problems []string
	configured := 0
	for _, id := range identityKeys {
		value, err := bctx.Git.ConfigGet(dir, id.Key)
		if err != nil {
			problems = append(problems, fmt.Sprintf("read %s: %v", id.Key, err))
			continue
		}
		if value != "" {
			logger.Debug("[DEBUG] git %s already configured\n", id.Key)
			continue
		}

		if bctx.Prompt == nil {
			problems = append(problems, fmt.Sprintf("%s is unset and no prompt is available", id.Key))
			continue
		}
		input, err := bctx.Prompt(id.Field)
		if err != nil {
			problems = append(problems, fmt.Sprintf("prompt for %s: %v", id.Field, err))
			continue
		}
		if input == "" {
			problems = append(problems, fmt.Sprintf("%s left unset", id.Key))
			continue
		}
		if err := bctx.Git.ConfigSet(dir, id.Key, input); err != nil {
			problems = append(problems, fmt.Sprintf("set %s: %v", id.Key, err))
			continue
		}
		configured++
	}

	if len(problems) > 0 {
		return failed(s.Name(), fmt.Errorf("%w: %s", ErrVCSConfig, strings.Join(problems, "; ")), false)
	}
	if configured > 0 {
		return ok(s.Name(), fmt.Sprintf("repository initialized, %d identity value(s) configured", configured))
	}
	return ok(s.Name(), "repository initialized, identity already configured")
}
