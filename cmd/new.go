package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/utkarshg1/pycargo/internal/bootstrap"
	"github.com/utkarshg1/pycargo/internal/githubapi"
	"github.com/utkarshg1/pycargo/internal/gitops"
	"github.com/utkarshg1/pycargo/internal/logger"
	"github.com/utkarshg1/pycargo/internal/plan"
	"github.com/utkarshg1/pycargo/internal/uv"
)

// Flags for the `new` command.
var (
	setupKind  string
	githubRepo bool
	repoName   string
	private    bool
)

// newCmd bootstraps a project workspace: directory, manifest, git
// repository, boilerplate files, uv environment, and optionally a linked
// GitHub repository.
var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Bootstrap a new Python project workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Pick up GITHUB_TOKEN from a .env file when present; the process
		// environment still wins.
		if err := godotenv.Load(); err == nil {
			logger.Debug("[DEBUG] Loaded environment from .env\n")
		}

		p, err := plan.Resolve(plan.Options{
			Name:       args[0],
			Setup:      setupKind,
			GitHubRepo: githubRepo,
			RepoName:   repoName,
			Private:    private,
		}, os.Getenv)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return err
		}

		bctx := &bootstrap.Context{
			Plan:   p,
			Fs:     afero.NewOsFs(),
			Git:    gitops.CLI{},
			Uv:     uv.CLI{},
			Repos:  githubapi.NewClient(string(p.Token)),
			Prompt: promptIdentity,
		}

		report := bootstrap.NewRunner().Run(cmd.Context(), bctx)
		printReport(report)

		if !report.Success() {
			return errors.New("bootstrap did not complete")
		}
		return nil
	},
}

// promptIdentity asks the user for a missing git identity value on
// stdin. The bootstrap pipeline invokes it only when the value is unset.
func promptIdentity(field string) (string, error) {
	fmt.Printf("Git user.%s is not configured. Please enter your %s: ", field, field)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// printReport prints the final per-step summary, non-fatal failures
// included, followed by the overall classification.
func printReport(report bootstrap.Report) {
	fmt.Println()
	logger.Info("[INFO] Bootstrap summary:\n")
	for _, out := range report.Outcomes {
		switch out.Status {
		case bootstrap.StatusOK:
			logger.Info("[INFO]   %-10s ok       %s\n", out.Step, out.Detail)
		case bootstrap.StatusSkipped:
			logger.Info("[INFO]   %-10s skipped  %s\n", out.Step, out.Detail)
		case bootstrap.StatusFailed:
			if out.Fatal {
				logger.Error("[ERROR]  %-10s failed   %s\n", out.Step, out.Detail)
			} else {
				logger.Warn("[WARN]   %-10s failed   %s\n", out.Step, out.Detail)
			}
		}
	}
	if report.Success() {
		logger.Info("[INFO] Setup completed\n")
		logger.Warn("To activate the virtual environment, run: source .venv/bin/activate\n")
	} else {
		logger.Error("[ERROR] Setup aborted. Completed steps are left in place; re-run to resume.\n")
	}
}

// init wires the `new` command and its flags into the root command.
func init() {
	newCmd.Flags().StringVarP(&setupKind, "setup", "s", "advanced", "Setup type: basic, advanced, data-science, or blank")
	newCmd.Flags().BoolVarP(&githubRepo, "github-repo", "g", false, "Create a GitHub repository and link it as origin")
	newCmd.Flags().StringVar(&repoName, "repo-name", "", "Custom name for the GitHub repository (default: project name)")
	newCmd.Flags().BoolVarP(&private, "private", "p", false, "Make the GitHub repository private")

	rootCmd.AddCommand(newCmd)
}
