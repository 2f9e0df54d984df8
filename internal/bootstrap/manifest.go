package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/template"
)

// ManifestFile is the dependency manifest written into the project
// directory, one package name per line.
const ManifestFile = "requirements.txt"

// ManifestStep writes the dependency manifest for the plan's setup kind.
// The content is a deterministic function of the setup kind, so
// re-running rewrites identical bytes. Only the filesystem can fail here,
// and that failure is fatal.
type ManifestStep struct{}

func (ManifestStep) Name() string { return "manifest" }

func (s ManifestStep) Run(_ context.Context, bctx *Context) Outcome {
	pkgs := template.Packages(bctx.Plan.Setup)

	var b strings.Builder
	for _, pkg := range pkgs {
		b.WriteString(pkg)
		b.WriteByte('\n')
	}

	path := filepath.Join(bctx.Plan.ProjectName, ManifestFile)
	if err := afero.WriteFile(bctx.Fs, path, []byte(b.String()), 0644); err != nil {
		return failed(s.Name(), fmt.Errorf("failed to write %s: %w", ManifestFile, err), true)
	}

	if len(pkgs) == 0 {
		return ok(s.Name(), fmt.Sprintf("wrote empty %s (blank setup)", ManifestFile))
	}
	return ok(s.Name(), fmt.Sprintf("wrote %s with %d packages (%s setup)", ManifestFile, len(pkgs), bctx.Plan.Setup))
}
