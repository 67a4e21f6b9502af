package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/dhamidi/stubber/linkerr"
)

// progressListener shows a spinner counting classified references.
type progressListener struct {
	bar *progressbar.ProgressBar
}

func newProgressListener(w io.Writer) *progressListener {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Classifying references"),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
	return &progressListener{bar: bar}
}

func (p *progressListener) Handled(raw, reference string) {
	p.bar.Add(1)
}

func (p *progressListener) Recognized(reference string, sym linkerr.Symbol) {}

func (p *progressListener) Unrecognized(d linkerr.Diagnostic) {}

func (p *progressListener) Finish() {
	p.bar.Finish()
}
