package survey

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Report carries the per-run aggregate statistics. Considered counts every
// record read from the input, before any filtering.
type Report struct {
	Considered int64
	Matched    int64
	Elapsed    time.Duration
}

// MatchRate is Matched/Considered as a percentage. Zero when nothing was
// considered.
func (r Report) MatchRate() float64 {
	if r.Considered == 0 {
		return 0
	}
	return float64(r.Matched) / float64(r.Considered) * 100
}

// Throughput is systems considered per second of wall-clock time.
func (r Report) Throughput() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Considered) / secs
}

func (r Report) String() string {
	var b strings.Builder
	if r.Considered == 0 {
		fmt.Fprintf(&b, "0 systems processed in %.2fs\n", r.Elapsed.Seconds())
		return b.String()
	}
	fmt.Fprintf(&b, "Total systems checked: %s\n", humanize.Comma(r.Considered))
	fmt.Fprintf(&b, "Matching systems found: %s\n", humanize.Comma(r.Matched))
	fmt.Fprintf(&b, "Match rate: %.3f%%\n", r.MatchRate())
	fmt.Fprintf(&b, "Total time: %.2fs\n", r.Elapsed.Seconds())
	fmt.Fprintf(&b, "Processing rate: %.0f systems/second\n", r.Throughput())
	return b.String()
}
