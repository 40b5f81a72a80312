package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/dotinstall/pkg/ui/output/styles"
)

// Printer writes styled lines to one writer.
type Printer struct {
	w      io.Writer
	format Format
	styles *styles.Registry
}

// New creates a printer for w. FormatAuto is resolved against w.
func New(w io.Writer, format Format) *Printer {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	reg := styles.Plain()
	if format == FormatTerminal {
		reg = styles.Default()
	}

	return &Printer{w: w, format: format, styles: reg}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Format returns the resolved format.
func (p *Printer) Format() Format { return p.format }

// Style renders text with the named style.
func (p *Printer) Style(name, text string) string {
	if p.format != FormatTerminal {
		return text
	}
	return p.styles.Render(name, text)
}

func (p *Printer) line(style, prefix, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = prefix + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, p.Style(style, msg))
}

// Println writes an unstyled line.
func (p *Printer) Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Header writes a section header.
func (p *Printer) Header(format string, args ...interface{}) {
	p.line("Header", "", format, args...)
}

// Success writes a line for something that was done.
func (p *Printer) Success(format string, args ...interface{}) {
	p.line("Success", "✓", format, args...)
}

// Skip writes a line for something that was left alone.
func (p *Printer) Skip(format string, args ...interface{}) {
	p.line("Muted", "-", format, args...)
}

// Warn writes a warning line.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.line("Warning", "!", format, args...)
}

// Error writes an error line.
func (p *Printer) Error(format string, args ...interface{}) {
	p.line("Error", "✗", format, args...)
}

// DryRunBanner announces that nothing will be written.
func (p *Printer) DryRunBanner() {
	p.line("DryRunBanner", "", "dry run: no files will be changed")
}

// ColorizeDiff styles a unified diff line by line.
func (p *Printer) ColorizeDiff(diff string) string {
	if p.format != FormatTerminal || diff == "" {
		return diff
	}

	lines := strings.SplitAfter(diff, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		body := strings.TrimSuffix(l, "\n")
		nl := l[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			body = p.styles.Render("DiffHeader", body)
		case strings.HasPrefix(body, "@@"):
			body = p.styles.Render("DiffHunk", body)
		case strings.HasPrefix(body, "+"):
			body = p.styles.Render("DiffAdd", body)
		case strings.HasPrefix(body, "-"):
			body = p.styles.Render("DiffDel", body)
		}
		b.WriteString(body)
		b.WriteString(nl)
	}
	return b.String()
}

// Markdown renders md with glamour. Text format uses glamour's notty style.
// If rendering fails the source is returned as is.
func (p *Printer) Markdown(md string, width int) string {
	options := []glamour.TermRendererOption{}
	if p.format == FormatTerminal {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// Snippet renders a fenced code block as markdown with a title.
func (p *Printer) Snippet(title, lang, code string) string {
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	md := fmt.Sprintf("## %s\n\n```%s\n%s```\n", title, lang, code)
	return p.Markdown(md, 0)
}
