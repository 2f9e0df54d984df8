package bootstrap

import "errors"

// Sentinel errors for the pipeline's own failure kinds. Remote-API error
// kinds (auth, name conflict, network) live in the githubapi package, and
// input/credential errors in the plan package; plain filesystem failures
// are wrapped with context but carry no sentinel. All are matched with
// errors.Is.
var (
	// ErrAlreadyExists indicates the project path exists and is not an
	// empty directory. Always fatal: no later step can proceed without a
	// usable target directory.
	ErrAlreadyExists = errors.New("project path already exists")

	// ErrVCSConfig indicates reading or writing the version-control
	// identity configuration failed. Non-fatal: identity is only needed
	// for future commits, not for the bootstrap itself.
	ErrVCSConfig = errors.New("vcs configuration failed")

	// ErrDownloadFailed indicates one or more boilerplate asset downloads
	// failed. Non-fatal: the files are best-effort and a re-run fetches
	// whichever are still missing.
	ErrDownloadFailed = errors.New("asset download failed")

	// ErrProvisionerUnavailable indicates the package manager is still
	// missing after an install attempt. Fatal: environment setup depends
	// on it.
	ErrProvisionerUnavailable = errors.New("package manager unavailable")
)
