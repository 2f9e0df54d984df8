package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/githubapi"
	"github.com/utkarshg1/pycargo/internal/template"
)

// testRunner is NewRunner with the asset step pointed at a local server
// instead of the real boilerplate URLs.
func testRunner(t *testing.T) *Runner {
	srv := assetServer(t, map[string]string{
		"/gitignore": "__pycache__/\n",
		"/license":   "Apache License\n",
	})
	r := NewRunner()
	for i, step := range r.Steps {
		if _, isAssets := step.(AssetStep); isAssets {
			r.Steps[i] = AssetStep{Assets: []asset{
				{URL: srv.URL + "/gitignore", Filename: ".gitignore"},
				{URL: srv.URL + "/license", Filename: "LICENSE"},
			}}
		}
	}
	return r
}

func TestPipelineRunsStepsInOrder(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Advanced))
	git := newFakeGit()
	git.config["user.name"] = "Ada"
	git.config["user.email"] = "ada@example.com"
	bctx.Git = git

	report := testRunner(t).Run(context.Background(), bctx)
	if !report.Success() {
		t.Fatalf("expected success, got %+v", report.Outcomes)
	}
	want := []string{"directory", "manifest", "vcs", "assets", "packageenv", "envsetup", "remote"}
	if len(report.Outcomes) != len(want) {
		t.Fatalf("got %d outcomes, want %d", len(report.Outcomes), len(want))
	}
	for i, name := range want {
		if report.Outcomes[i].Step != name {
			t.Errorf("outcome %d: got step %q, want %q", i, report.Outcomes[i].Step, name)
		}
	}
	// No remote requested: the remote step skips rather than calling out.
	if last := report.Outcomes[len(report.Outcomes)-1]; last.Status != StatusSkipped {
		t.Fatalf("expected remote step to be skipped, got %+v", last)
	}
}

func TestPipelineAbortsOnFatalFailureWithZeroWrites(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Advanced))
	if err := afero.WriteFile(bctx.Fs, "demo/leftover.txt", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	git := newFakeGit()
	bctx.Git = git

	report := testRunner(t).Run(context.Background(), bctx)
	if report.Success() || !report.Aborted {
		t.Fatalf("expected aborted failure, got %+v", report)
	}
	if len(report.Outcomes) != 1 {
		t.Fatalf("pipeline must stop after the directory step, got %d outcomes", len(report.Outcomes))
	}
	if !errors.Is(report.Outcomes[0].Err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", report.Outcomes[0].Err)
	}
	if len(git.initCalls) != 0 {
		t.Fatal("no later step may run after a fatal directory failure")
	}
	if exists, _ := afero.Exists(bctx.Fs, "demo/requirements.txt"); exists {
		t.Fatal("no writes may happen after a fatal directory failure")
	}
}

func TestPipelineNonFatalFailureStillSucceeds(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Advanced))
	git := newFakeGit()
	git.configErr = errors.New("config unreadable")
	bctx.Git = git

	report := testRunner(t).Run(context.Background(), bctx)
	if !report.Success() {
		t.Fatalf("non-fatal vcs failure must not change the exit classification: %+v", report.Outcomes)
	}
	if report.Aborted {
		t.Fatal("pipeline must continue past a non-fatal failure")
	}

	var vcsOut *Outcome
	for i := range report.Outcomes {
		if report.Outcomes[i].Step == "vcs" {
			vcsOut = &report.Outcomes[i]
		}
	}
	if vcsOut == nil || vcsOut.Status != StatusFailed {
		t.Fatalf("expected failed vcs outcome in the report, got %+v", report.Outcomes)
	}
}

func TestPipelineRerunIsIdempotent(t *testing.T) {
	// A fatal stop at packageenv leaves directory, manifest, repo, and
	// assets in place; the re-run must resume without touching them.
	bctx := testContext(testPlan("demo", template.Advanced))
	git := newFakeGit()
	git.config["user.name"] = "Ada"
	git.config["user.email"] = "ada@example.com"
	bctx.Git = git
	bctx.Uv = &fakeUv{installed: false, installErr: errors.New("pip missing")}

	runner := testRunner(t)
	first := runner.Run(context.Background(), bctx)
	if first.Success() {
		t.Fatal("expected first run to fail at packageenv")
	}
	gitignore, err := afero.ReadFile(bctx.Fs, "demo/.gitignore")
	if err != nil {
		t.Fatalf("assets should have been written before the fatal step: %v", err)
	}

	// Re-run the resumable steps against the same filesystem, this time
	// with uv present. The directory step rejects the now non-empty
	// directory by design, so the resumed steps are exercised directly.
	second := &Context{Plan: bctx.Plan, Fs: bctx.Fs, Git: git, Uv: &fakeUv{installed: true}}

	out := VCSStep{}.Run(context.Background(), second)
	if out.Status != StatusOK {
		t.Fatalf("vcs re-run must be a no-op success, got %+v", out)
	}
	if len(git.initCalls) != 2 {
		t.Fatalf("expected re-init to be invoked idempotently, got %v", git.initCalls)
	}

	assetsOut := AssetStep{Assets: []asset{{URL: "http://127.0.0.1:0/x", Filename: ".gitignore"}}}.Run(context.Background(), second)
	if assetsOut.Status != StatusSkipped {
		t.Fatalf("asset re-run must skip existing files, got %+v", assetsOut)
	}
	after, _ := afero.ReadFile(bctx.Fs, "demo/.gitignore")
	if string(after) != string(gitignore) {
		t.Fatal("asset re-run must leave existing files unchanged")
	}
}

func TestPipelineNameConflictLeavesNoRemote(t *testing.T) {
	bctx := testContext(remotePlan("taken", false))
	git := newFakeGit()
	git.config["user.name"] = "Ada"
	git.config["user.email"] = "ada@example.com"
	bctx.Git = git
	bctx.Repos = &fakeRepos{err: githubapi.ErrNameConflict}

	report := testRunner(t).Run(context.Background(), bctx)
	if report.Success() {
		t.Fatal("expected failure on name conflict")
	}
	last := report.Outcomes[len(report.Outcomes)-1]
	if last.Step != "remote" || !errors.Is(last.Err, githubapi.ErrNameConflict) {
		t.Fatalf("expected remote conflict outcome, got %+v", last)
	}
	if len(git.remotes) != 0 {
		t.Fatalf("local repository must have no remote added, got %v", git.remotes)
	}
}
