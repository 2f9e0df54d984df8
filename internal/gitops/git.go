// Package gitops exposes the version-control capabilities the bootstrap
// pipeline needs, behind an interface so the pipeline can be tested
// without a git binary.
package gitops

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// Git is the capability surface the pipeline needs from a version-control
// tool: repository creation, identity configuration, and remote linking.
type Git interface {
	// Init initializes a repository rooted at dir. Re-running against an
	// already-initialized repository must be a no-op, not an error.
	Init(dir string) error

	// ConfigGet reads a configuration value as visible from dir (local
	// repository config merged with global). Returns "" without error when
	// the key is unset.
	ConfigGet(dir, key string) (string, error)

	// ConfigSet writes a configuration value scoped to the repository at dir.
	ConfigSet(dir, key, value string) error

	// AddRemote registers url as a tracked remote of the repository at dir.
	AddRemote(dir, name, url string) error
}

// CLI implements Git by shelling out to the git binary.
type CLI struct{}

// run executes git with the given arguments and returns its trimmed
// combined output.
func (CLI) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %v\nOutput: %s", strings.Join(args, " "), err, output)
	}
	return strings.TrimSpace(string(output)), nil
}

// Init runs `git init <dir>`. git itself treats re-initialization of an
// existing repository as a no-op, which gives this step its idempotency.
func (c CLI) Init(dir string) error {
	_, err := c.run("init", dir)
	return err
}

// ConfigGet runs `git config --get` inside dir. git exits with status 1
// for an unset key, which is reported as empty value, not an error.
func (c CLI) ConfigGet(dir, key string) (string, error) {
	cmd := exec.Command("git", "-C", dir, "config", "--get", key)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git config --get %s failed: %w", key, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ConfigSet writes a repository-local configuration value.
func (c CLI) ConfigSet(dir, key, value string) error {
	_, err := c.run("-C", dir, "config", key, value)
	return err
}

// AddRemote registers a tracked remote on the repository at dir.
func (c CLI) AddRemote(dir, name, url string) error {
	_, err := c.run("-C", dir, "remote", "add", name, url)
	return err
}
