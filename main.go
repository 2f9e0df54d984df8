package main

import (
	"github.com/utkarshg1/pycargo/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// pycargo bootstraps a new Python project workspace in one linear pass:
//   - Creates the project directory and writes requirements.txt from a named
//     setup template (basic, advanced, data-science, or blank)
//   - Initializes a git repository and verifies the user identity is
//     configured, prompting for name/email only when they are missing
//   - Downloads a Python .gitignore and the Apache-2.0 license text
//   - Ensures the uv package manager is installed, then initializes the uv
//     project and virtual environment and installs the requirements
//   - Optionally creates a GitHub repository and adds it as the origin remote
//
// Error handling strategy:
//   - Each pipeline step reports an outcome; fatal failures (unusable target
//     directory, missing package manager, remote API errors) abort the run,
//     while best-effort steps (identity configuration, boilerplate downloads)
//     are reported without changing the exit status
//   - Completed steps are never rolled back: re-invoking the tool makes
//     forward progress through the steps' idempotency rules instead
func main() {
	cmd.Execute()
}
