// Package uv wraps the uv package manager behind a capability interface:
// presence check, installation, and the project environment commands the
// bootstrap pipeline issues after provisioning.
package uv

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// Tool is the package/environment-manager capability the pipeline needs.
type Tool interface {
	// IsInstalled reports whether the tool is available on the current
	// execution path.
	IsInstalled() bool

	// Install attempts to install the tool.
	Install() error

	// Init initializes a project in dir (pyproject.toml, main.py, README).
	Init(dir string) error

	// Venv creates the .venv virtual environment in dir.
	Venv(dir string) error

	// AddRequirements registers the packages listed in file (relative to
	// dir) as project dependencies.
	AddRequirements(dir, file string) error

	// Sync installs the project dependencies into the environment.
	Sync(dir string) error
}

// CLI implements Tool by shelling out to uv, and to pip for the initial
// install of uv itself.
type CLI struct{}

// run executes a command with its working directory set to dir, so the
// pipeline never changes the process-wide working directory.
func (CLI) run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	logger.Debug("[DEBUG] Running command: %s (in %s)\n", strings.Join(cmd.Args, " "), dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s failed: %v\nOutput: %s", name, strings.Join(args, " "), err, output)
	}
	return nil
}

// IsInstalled checks the execution path for the uv binary.
func (CLI) IsInstalled() bool {
	path, err := exec.LookPath("uv")
	if err != nil {
		logger.Debug("[DEBUG] uv not found on PATH: %v\n", err)
		return false
	}
	logger.Debug("[DEBUG] Found uv at %s\n", path)
	return true
}

// Install installs uv via pip.
func (c CLI) Install() error {
	return c.run("", "pip", "install", "uv")
}

// Init runs `uv init .` in dir.
func (c CLI) Init(dir string) error {
	return c.run(dir, "uv", "init", ".")
}

// Venv runs `uv venv .venv` in dir.
func (c CLI) Venv(dir string) error {
	return c.run(dir, "uv", "venv", ".venv")
}

// AddRequirements runs `uv add -r <file>` in dir.
func (c CLI) AddRequirements(dir, file string) error {
	return c.run(dir, "uv", "add", "-r", file)
}

// Sync runs `uv sync` in dir.
func (c CLI) Sync(dir string) error {
	return c.run(dir, "uv", "sync")
}
