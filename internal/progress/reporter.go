package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while the tree is being built.
// The total is unknown up front, so reporters count steps.
type Reporter interface {
	Start(description string)
	Step(message string)
	Finish()
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// or a TerminalReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a spinner with a running count.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(description string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	Out   io.Writer
	count int
}

func (r *CIReporter) Start(description string) {
	r.count = 0
	fmt.Fprintln(r.Out, description)
}

func (r *CIReporter) Step(message string) {
	r.count++
	fmt.Fprintf(r.Out, "[%d] %s\n", r.count, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Processed %d files\n", r.count)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(string) {}
func (Nop) Step(string)  {}
func (Nop) Finish()      {}
