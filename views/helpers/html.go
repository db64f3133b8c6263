package helpers

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates HTML output and keeps the first write error.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Rawf formats trusted markup; every argument is escaped.
func (hw *Writer) Rawf(format string, args ...any) {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = templ.EscapeString(fmt.Sprint(a))
	}
	hw.Raw(fmt.Sprintf(format, escaped...))
}

// Text writes escaped text.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Component renders a nested component into the same output.
func (hw *Writer) Component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

func (hw *Writer) Err() error {
	return hw.err
}
