package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// Boilerplate asset sources.
const (
	GitignoreURL = "https://raw.githubusercontent.com/github/gitignore/main/Python.gitignore"
	LicenseURL   = "https://www.apache.org/licenses/LICENSE-2.0.txt"
)

// asset is one boilerplate file to fetch into the project directory.
type asset struct {
	URL      string
	Filename string
}

// defaultAssets are the two fixed boilerplate files: a Python ignore-file
// template and the Apache-2.0 license text.
var defaultAssets = []asset{
	{URL: GitignoreURL, Filename: ".gitignore"},
	{URL: LicenseURL, Filename: "LICENSE"},
}

// AssetStep downloads the boilerplate files, skipping any that already
// exist. Each download is independent: one failing does not abort the
// other, and the step as a whole is never fatal since the files are
// best-effort.
type AssetStep struct {
	// Assets overrides the download list; nil means defaultAssets.
	// Tests point this at an httptest server.
	Assets []asset
}

func (AssetStep) Name() string { return "assets" }

func (s AssetStep) Run(ctx context.Context, bctx *Context) Outcome {
	assets := s.Assets
	if assets == nil {
		assets = defaultAssets
	}
	client := bctx.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	var fetched, existing []string
	var failures []string
	for _, a := range assets {
		path := filepath.Join(bctx.Plan.ProjectName, a.Filename)
		exists, err := afero.Exists(bctx.Fs, path)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", a.Filename, err))
			continue
		}
		if exists {
			logger.Debug("[DEBUG] %s already present, skipping download\n", a.Filename)
			existing = append(existing, a.Filename)
			continue
		}
		if err := downloadFile(ctx, client, bctx.Fs, a.URL, path); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", a.Filename, err))
			continue
		}
		fetched = append(fetched, a.Filename)
	}

	if len(failures) > 0 {
		return failed(s.Name(), fmt.Errorf("%w: %s", ErrDownloadFailed, strings.Join(failures, "; ")), false)
	}
	if len(fetched) == 0 {
		return skipped(s.Name(), "all boilerplate files already present")
	}
	return ok(s.Name(), "downloaded "+strings.Join(fetched, ", "))
}

// downloadFile fetches url and writes the body to destPath. The body is
// written to a temporary name and renamed into place only once fully
// copied, so a failed download never leaves a partial artifact that a
// re-run would then skip.
func downloadFile(ctx context.Context, client *http.Client, fs afero.Fs, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP status %d", url, resp.StatusCode)
	}

	tmpPath := destPath + ".partial"
	out, err := fs.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", tmpPath, err)
	}

	_, copyErr := io.Copy(out, resp.Body)
	if cerr := out.Close(); copyErr == nil {
		copyErr = cerr
	}
	if copyErr != nil {
		if rerr := fs.Remove(tmpPath); rerr != nil {
			logger.Warn("[WARN] Failed to remove partial download %s: %v\n", tmpPath, rerr)
		}
		return fmt.Errorf("failed to write response to %s: %w", destPath, copyErr)
	}

	if err := fs.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", tmpPath, err)
	}
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
