package model

// CIContext describes the CI trigger a report is produced for.
type CIContext struct {
	EventName  string
	Repository string
	Workspace  string
	Commit     string
	Head       string
	Base       string
	CheckSHA   string
	RunID      string
}

// Options converts the CI context into report options.
func (c CIContext) Options() Options {
	opts := Options{
		Repository: c.Repository,
		Commit:     c.Commit,
		Head:       c.Head,
		Base:       c.Base,
	}

	if c.Workspace != "" {
		opts.Prefix = c.Workspace + "/"
	}

	return opts
}

// Conclusion is the final state of a published check.
type Conclusion string

// Available conclusions.
const (
	ConclusionSuccess Conclusion = "success"
	ConclusionFailure Conclusion = "failure"
)

// Check is the payload handed to a check publisher.
type Check struct {
	Name       string     `yaml:"name"`
	Title      string     `yaml:"title"`
	Conclusion Conclusion `yaml:"conclusion"`
	Status     string     `yaml:"status"`
	HeadSHA    string     `yaml:"head_sha,omitempty"`
	Percentage float64    `yaml:"percentage"`
	Summary    string     `yaml:"summary"`
}
