package bootstrap

import (
	"context"

	"github.com/spf13/afero"

	"github.com/utkarshg1/pycargo/internal/plan"
	"github.com/utkarshg1/pycargo/internal/template"
)

// fakeGit records capability calls in memory.
type fakeGit struct {
	initCalls []string
	config    map[string]string
	setCalls  map[string]string
	remotes   map[string]string

	initErr   error
	configErr error
	setErr    error
	remoteErr error
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		config:   make(map[string]string),
		setCalls: make(map[string]string),
		remotes:  make(map[string]string),
	}
}

func (g *fakeGit) Init(dir string) error {
	g.initCalls = append(g.initCalls, dir)
	return g.initErr
}

func (g *fakeGit) ConfigGet(dir, key string) (string, error) {
	if g.configErr != nil {
		return "", g.configErr
	}
	return g.config[key], nil
}

func (g *fakeGit) ConfigSet(dir, key, value string) error {
	if g.setErr != nil {
		return g.setErr
	}
	g.setCalls[key] = value
	g.config[key] = value
	return nil
}

func (g *fakeGit) AddRemote(dir, name, url string) error {
	if g.remoteErr != nil {
		return g.remoteErr
	}
	g.remotes[name] = url
	return nil
}

// fakeUv simulates the package manager. Command invocations are recorded
// by verb; cmdErr injects per-verb failures.
type fakeUv struct {
	installed    bool
	installErr   error
	installCalls int
	commands     []string
	cmdErr       map[string]error
}

func (u *fakeUv) run(verb string) error {
	u.commands = append(u.commands, verb)
	return u.cmdErr[verb]
}

func (u *fakeUv) IsInstalled() bool { return u.installed }

func (u *fakeUv) Install() error {
	u.installCalls++
	if u.installErr != nil {
		return u.installErr
	}
	u.installed = true
	return nil
}

func (u *fakeUv) Init(dir string) error                  { return u.run("init") }
func (u *fakeUv) Venv(dir string) error                  { return u.run("venv") }
func (u *fakeUv) AddRequirements(dir, file string) error { return u.run("add") }
func (u *fakeUv) Sync(dir string) error                  { return u.run("sync") }

// fakeRepos is an in-memory RepoCreator.
type fakeRepos struct {
	cloneURL string
	err      error

	calls       int
	lastName    string
	lastPrivate bool
}

func (r *fakeRepos) CreateRepository(_ context.Context, name string, private bool) (string, error) {
	r.calls++
	r.lastName = name
	r.lastPrivate = private
	if r.err != nil {
		return "", r.err
	}
	return r.cloneURL, nil
}

// testPlan builds a minimal plan for step tests.
func testPlan(name string, kind template.Kind) *plan.Plan {
	return &plan.Plan{ProjectName: name, Setup: kind}
}

// testContext builds a Context over an in-memory filesystem with benign
// fakes; tests override the collaborators they exercise.
func testContext(p *plan.Plan) *Context {
	return &Context{
		Plan: p,
		Fs:   afero.NewMemMapFs(),
		Git:  newFakeGit(),
		Uv:   &fakeUv{installed: true},
	}
}
