package bootstrap

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/template"
)

func TestEnvSetupRunsFullSequence(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Advanced))
	tool := &fakeUv{installed: true}
	bctx.Uv = tool

	out := EnvSetupStep{}.Run(context.Background(), bctx)
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %s: %v", out.Status, out.Err)
	}
	want := []string{"init", "venv", "add", "sync"}
	if !reflect.DeepEqual(tool.commands, want) {
		t.Fatalf("got commands %v, want %v", tool.commands, want)
	}
}

func TestEnvSetupSkipsExistingArtifacts(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Advanced))
	tool := &fakeUv{installed: true}
	bctx.Uv = tool
	if err := afero.WriteFile(bctx.Fs, "demo/pyproject.toml", []byte("[project]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := bctx.Fs.MkdirAll("demo/.venv", 0755); err != nil {
		t.Fatal(err)
	}

	out := EnvSetupStep{}.Run(context.Background(), bctx)
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %s: %v", out.Status, out.Err)
	}
	want := []string{"add", "sync"}
	if !reflect.DeepEqual(tool.commands, want) {
		t.Fatalf("got commands %v, want %v", tool.commands, want)
	}
}

func TestEnvSetupBlankSkipsRequirements(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Blank))
	tool := &fakeUv{installed: true}
	bctx.Uv = tool

	out := EnvSetupStep{}.Run(context.Background(), bctx)
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %s: %v", out.Status, out.Err)
	}
	want := []string{"init", "venv"}
	if !reflect.DeepEqual(tool.commands, want) {
		t.Fatalf("got commands %v, want %v", tool.commands, want)
	}
}

func TestEnvSetupFailureIsFatal(t *testing.T) {
	bctx := testContext(testPlan("demo", template.Advanced))
	bctx.Uv = &fakeUv{installed: true, cmdErr: map[string]error{"venv": errors.New("no python")}}

	out := EnvSetupStep{}.Run(context.Background(), bctx)
	if out.Status != StatusFailed || !out.Fatal {
		t.Fatalf("expected fatal failure, got %+v", out)
	}
}
