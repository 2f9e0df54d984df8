// Package plan turns a validated invocation into the immutable bootstrap
// plan the pipeline executes. All input validation and credential
// resolution happens here, before any filesystem mutation.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/utkarshg1/pycargo/internal/template"
)

// TokenEnvVar is the environment variable the GitHub credential is
// resolved from. It is read once at plan-resolution time and never written.
const TokenEnvVar = "GITHUB_TOKEN"

var (
	// ErrInvalidInput indicates an unusable project name or setup kind.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCredential indicates a remote repository was requested but
	// no credential could be resolved from the environment.
	ErrMissingCredential = errors.New("missing credential")
)

// Credential is an opaque API token. It redacts itself when formatted so
// it can never leak into logs by accident.
type Credential string

// String implements fmt.Stringer, hiding the token value.
func (c Credential) String() string {
	if c == "" {
		return ""
	}
	return "[redacted]"
}

// Remote describes the optional hosted repository to create and link.
type Remote struct {
	RepoName string // Repository name on the hosting service
	Private  bool   // Whether the repository is created private
}

// Plan is the validated, immutable description of one bootstrap
// invocation. It is built once by Resolve and never mutated afterwards.
type Plan struct {
	ProjectName string        // Directory name, a single path segment
	Setup       template.Kind // Which dependency template to generate
	Remote      *Remote       // nil when no hosted repository is requested
	Token       Credential    // Resolved credential; empty unless Remote is set
}

// Options is the raw, unvalidated invocation input as collected from the
// command line.
type Options struct {
	Name       string // Project directory name
	Setup      string // Raw setup kind flag value
	GitHubRepo bool   // Whether to create a GitHub repository
	RepoName   string // Custom repository name; empty means use Name
	Private    bool   // Whether the repository should be private
}

// Resolve validates opts and produces the Plan. env supplies environment
// lookups (os.Getenv in production) so credential resolution stays
// testable. The credential check is eager: a missing token fails here,
// before the pipeline touches the filesystem.
func Resolve(opts Options, env func(string) string) (*Plan, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: project name must not be empty", ErrInvalidInput)
	}
	if strings.ContainsAny(opts.Name, `/\`) {
		return nil, fmt.Errorf("%w: project name %q must not contain path separators", ErrInvalidInput, opts.Name)
	}
	// "." and ".." pass the separator check but would target the current
	// or parent directory instead of a new one.
	if opts.Name == "." || opts.Name == ".." {
		return nil, fmt.Errorf("%w: project name %q is not a valid directory name", ErrInvalidInput, opts.Name)
	}

	kind, err := template.ParseKind(opts.Setup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p := &Plan{
		ProjectName: opts.Name,
		Setup:       kind,
	}

	if opts.GitHubRepo {
		repoName := opts.RepoName
		if repoName == "" {
			repoName = opts.Name
		}
		token := env(TokenEnvVar)
		if token == "" {
			return nil, fmt.Errorf("%w: %s environment variable is not set", ErrMissingCredential, TokenEnvVar)
		}
		p.Remote = &Remote{RepoName: repoName, Private: opts.Private}
		p.Token = Credential(token)
	}

	return p, nil
}
