package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// DirectoryStep creates the project directory. A pre-existing empty
// directory is reused; anything else already at the path is a fatal
// conflict, and every failure here is fatal since no later step can run
// without the target directory.
type DirectoryStep struct{}

func (DirectoryStep) Name() string { return "directory" }

func (s DirectoryStep) Run(_ context.Context, bctx *Context) Outcome {
	dir := bctx.Plan.ProjectName

	info, err := bctx.Fs.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return failed(s.Name(), fmt.Errorf("%w: %q is a file", ErrAlreadyExists, dir), true)
		}
		entries, err := afero.ReadDir(bctx.Fs, dir)
		if err != nil {
			return failed(s.Name(), fmt.Errorf("failed to read directory %q: %w", dir, err), true)
		}
		if len(entries) > 0 {
			return failed(s.Name(), fmt.Errorf("%w: directory %q is not empty", ErrAlreadyExists, dir), true)
		}
		return ok(s.Name(), fmt.Sprintf("reusing existing empty directory %q", dir))
	case !os.IsNotExist(err):
		return failed(s.Name(), fmt.Errorf("failed to stat %q: %w", dir, err), true)
	}

	if err := bctx.Fs.MkdirAll(dir, 0755); err != nil {
		return failed(s.Name(), fmt.Errorf("failed to create directory %q: %w", dir, err), true)
	}
	return ok(s.Name(), fmt.Sprintf("created project directory %q", dir))
}
