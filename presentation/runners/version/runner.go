package version

import (
	"context"
	"fmt"
	"gwswitch/domain/app"
	"io"
	"os"
	"strings"
)

// Tag will be set via ldflags by the release build
var Tag = "version not set"

type Runner struct {
	out io.Writer
}

func NewRunner() *Runner { return &Runner{out: os.Stdout} }

func (r *Runner) Run(_ context.Context) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", app.Name, Current())
}

// Current returns Tag without surrounding whitespace.
func Current() string {
	return strings.TrimSpace(Tag)
}
