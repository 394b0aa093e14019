package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	m "covdelta.dev/pkg/covdelta/internal/model"
)

// Errors returned while resolving a workflow_run trigger.
var (
	ErrWorkflowRunMissing   = errors.New("event of type 'workflow_run' is missing 'workflow_run' field")
	ErrWorkflowRunCancelled = errors.New("workflow run has been cancelled")
)

// GitHub Actions event names with special handling.
const (
	eventPullRequest = "pull_request"
	eventPush        = "push"
	eventWorkflowRun = "workflow_run"
)

// ContextProvider discovers the CI context a report is produced for.
type ContextProvider interface {
	Resolve(ctx context.Context) (m.CIContext, error)
}

type githubRef struct {
	SHA string `json:"sha"`
	Ref string `json:"ref"`
}

type githubEvent struct {
	After      string `json:"after"`
	Repository *struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
	PullRequest *struct {
		Head githubRef `json:"head"`
		Base githubRef `json:"base"`
	} `json:"pull_request"`
	WorkflowRun *struct {
		ID         int64  `json:"id"`
		Conclusion string `json:"conclusion"`
		HeadCommit *struct {
			ID string `json:"id"`
		} `json:"head_commit"`
	} `json:"workflow_run"`
}

// GitHubContextProvider reads the GitHub Actions environment and event payload.
// Missing variables degrade to empty fields.
type GitHubContextProvider struct {
	getenv   func(string) string
	readFile func(string) ([]byte, error)
}

// NewGitHubContextProvider uses the process environment and filesystem.
func NewGitHubContextProvider() *GitHubContextProvider {
	return NewGitHubContextProviderWith(os.Getenv, os.ReadFile)
}

// NewGitHubContextProviderWith allows injecting the environment lookup and
// file reader.
func NewGitHubContextProviderWith(getenv func(string) string, readFile func(string) ([]byte, error)) *GitHubContextProvider {
	return &GitHubContextProvider{getenv: getenv, readFile: readFile}
}

// Resolve implements ContextProvider.
func (p *GitHubContextProvider) Resolve(ctx context.Context) (m.CIContext, error) {
	if err := ctx.Err(); err != nil {
		return m.CIContext{}, err
	}

	event, err := p.loadEvent()
	if err != nil {
		return m.CIContext{}, err
	}

	ci := m.CIContext{
		EventName:  p.getenv("GITHUB_EVENT_NAME"),
		Repository: p.getenv("GITHUB_REPOSITORY"),
		Workspace:  p.getenv("GITHUB_WORKSPACE"),
		RunID:      p.getenv("GITHUB_RUN_ID"),
		CheckSHA:   p.getenv("GITHUB_SHA"),
	}

	if event.Repository != nil && event.Repository.FullName != "" {
		ci.Repository = event.Repository.FullName
	}

	switch ci.EventName {
	case eventPullRequest:
		if event.PullRequest != nil {
			ci.Commit = event.PullRequest.Head.SHA
			ci.Head = event.PullRequest.Head.Ref
			ci.Base = event.PullRequest.Base.Ref
		}
	case eventPush:
		ci.Commit = event.After
		ci.Head = p.getenv("GITHUB_REF")
	}

	if err := resolveCheckSHA(&ci, event); err != nil {
		return m.CIContext{}, err
	}

	slog.Debug("resolved CI context", "event", ci.EventName, "repository", ci.Repository, "sha", ci.CheckSHA)

	return ci, nil
}

func resolveCheckSHA(ci *m.CIContext, event githubEvent) error {
	if ci.EventName == eventWorkflowRun {
		slog.Info("action was triggered by workflow_run: using SHA and RUN_ID from triggering workflow")

		run := event.WorkflowRun
		if run == nil {
			return ErrWorkflowRunMissing
		}

		if run.Conclusion == "cancelled" {
			return fmt.Errorf("%w: run %d", ErrWorkflowRunCancelled, run.ID)
		}

		if run.HeadCommit != nil {
			ci.CheckSHA = run.HeadCommit.ID
		}

		ci.RunID = strconv.FormatInt(run.ID, 10)

		return nil
	}

	if event.PullRequest != nil {
		slog.Info("using SHA from head of source branch", "event", ci.EventName)
		ci.CheckSHA = event.PullRequest.Head.SHA
	}

	return nil
}

func (p *GitHubContextProvider) loadEvent() (githubEvent, error) {
	var event githubEvent

	path := p.getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return event, nil
	}

	data, err := p.readFile(path)
	if err != nil {
		slog.Warn("failed to read event payload", "path", path, "error", err)
		return event, nil
	}

	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("decode event payload %s: %w", path, err)
	}

	return event, nil
}
