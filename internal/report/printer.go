package report

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/sizetrack/sizetrack-go/internal/size"
)

// Printer formats per-artifact measurements for the console.
type Printer struct {
	Out   io.Writer // defaults to os.Stdout
	Emoji bool      // pictographic labels instead of plain text
}

func (p *Printer) writer() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Line prints one artifact: measured sizes with the delta against the
// previous revision in parentheses after each one.
func (p *Printer) Line(measured, delta size.Size) {
	prefix, gzLabel, brLabel := "", "gz", "br"
	if p.Emoji {
		prefix, gzLabel, brLabel = "\U0001F4E6 ", "\U0001F5DC gz", "\U0001F5DC br"
	}

	fmt.Fprintf(p.writer(), "%s%s: %s (%s)  %s %s (%s)  %s %s (%s)\n",
		prefix,
		color.New(color.Bold).Sprint(measured.Name),
		bytesLabel(measured.Original), formatDelta(delta.Original, delta.New),
		gzLabel, bytesLabel(measured.Gzip), formatDelta(delta.Gzip, delta.New),
		brLabel, bytesLabel(measured.Brotli), formatDelta(delta.Brotli, delta.New),
	)
}

// Warnf prints an informational warning line without failing the build.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.writer(), color.CyanString(format, args...))
}

// formatDelta colors a signed byte delta. New artifacts stay informational
// whatever the sign; growth is bad and gets an explicit plus, shrink or
// unchanged is good.
func formatDelta(d int, isNew bool) string {
	if isNew {
		if d < 0 {
			return color.CyanString("-%s new", bytesLabel(-d))
		}
		return color.CyanString("%s new", bytesLabel(d))
	}
	if d > 0 {
		return color.RedString("+%s", bytesLabel(d))
	}
	if d < 0 {
		return color.GreenString("-%s", bytesLabel(-d))
	}
	return color.GreenString("0 B")
}

func bytesLabel(n int) string {
	return humanize.Bytes(uint64(n))
}
