// Package render presents search outcomes: annotated maps for terminals
// and structured log lines.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// Report is one search outcome handed to a Sink.
type Report struct {
	Name        string
	Grid        pathfind.Grid
	Start, Goal pathfind.Point
	Result      pathfind.Result
	Err         error
	Elapsed     time.Duration
}

// Sink receives search outcomes for display.
type Sink interface {
	Report(r Report) error
}

// Options controls TextSink output.
type Options struct {
	Color     bool
	PathGlyph rune
	ShowStats bool
}

// TextSink draws the map with the path marked, followed by a summary line.
type TextSink struct {
	w    io.Writer
	opts Options

	wall, path, start, goal, fail *color.Color
}

// NewText creates a TextSink writing to w.
func NewText(w io.Writer, opts Options) *TextSink {
	if opts.PathGlyph == 0 {
		opts.PathGlyph = '*'
	}
	s := &TextSink{
		w:     w,
		opts:  opts,
		wall:  color.New(color.FgHiBlack),
		path:  color.New(color.FgGreen, color.Bold),
		start: color.New(color.FgCyan, color.Bold),
		goal:  color.New(color.FgMagenta, color.Bold),
		fail:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{s.wall, s.path, s.start, s.goal, s.fail} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Report writes r. A failed search prints only the header and error.
func (s *TextSink) Report(r Report) error {
	bw := bufio.NewWriter(s.w)

	if r.Name != "" {
		fmt.Fprintf(bw, "== %s ==\n", r.Name)
	}

	switch {
	case r.Err != nil:
		fmt.Fprintln(bw, s.fail.Sprintf("error: %v", r.Err))
	case r.Grid == nil:
		fmt.Fprintln(bw, s.fail.Sprint("error: no grid"))
	default:
		s.drawMap(bw, r)
		fmt.Fprintln(bw, s.summary(r))
	}

	return bw.Flush()
}

func (s *TextSink) drawMap(w *bufio.Writer, r Report) {
	onPath := make(map[pathfind.Point]bool, len(r.Result.Path))
	for _, p := range r.Result.Path {
		onPath[p] = true
	}

	for y := 0; y < r.Grid.Height(); y++ {
		for x := 0; x < r.Grid.Width(); x++ {
			p := pathfind.Pt(x, y)
			switch {
			case p == r.Start:
				w.WriteString(s.start.Sprint("S"))
			case p == r.Goal:
				w.WriteString(s.goal.Sprint("G"))
			case r.Grid.IsBlocked(x, y):
				w.WriteString(s.wall.Sprint("X"))
			case onPath[p]:
				w.WriteString(s.path.Sprint(string(s.opts.PathGlyph)))
			default:
				w.WriteByte('-')
			}
		}
		w.WriteByte('\n')
	}
}

func (s *TextSink) summary(r Report) string {
	var line string
	if r.Result.Found {
		line = fmt.Sprintf("path %s -> %s: %d moves", r.Start, r.Goal, r.Result.Cost())
	} else {
		line = s.fail.Sprintf("no path %s -> %s", r.Start, r.Goal)
	}
	if s.opts.ShowStats {
		line += fmt.Sprintf(" (%d expanded, %s)", r.Result.Expanded, r.Elapsed.Round(time.Microsecond))
	}
	return line
}

// LogSink reports outcomes as structured log entries.
type LogSink struct {
	log *zap.Logger
}

// NewLog creates a LogSink.
func NewLog(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Report(r Report) error {
	fields := []zap.Field{
		zap.String("map", r.Name),
		zap.Stringer("start", r.Start),
		zap.Stringer("goal", r.Goal),
		zap.Duration("elapsed", r.Elapsed),
	}
	switch {
	case r.Err != nil:
		s.log.Error("search failed", append(fields, zap.Error(r.Err))...)
	case r.Result.Found:
		s.log.Info("path found", append(fields,
			zap.Int("cost", r.Result.Cost()),
			zap.Int("expanded", r.Result.Expanded))...)
	default:
		s.log.Warn("no path", append(fields, zap.Int("expanded", r.Result.Expanded))...)
	}
	return nil
}

// Tee fans each report out to every sink and joins their errors.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Report(r Report) error {
	var errs []error
	for _, s := range t {
		if err := s.Report(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
