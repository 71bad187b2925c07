// Package terminal renders the client for one-shot commands: lists go to
// stdout, toasts to stderr, navigations become downloads or printed hints.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/ponyo877/sharesh/cli/domain"
)

const maxTitleWidth = 48

// Document holds the fields a command was invoked with. Only fields present at
// construction exist; writes to other names are ignored.
type Document struct {
	mu     sync.Mutex
	out    io.Writer
	fields map[string]string
}

func NewDocument(out io.Writer, fields map[string]string) *Document {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &Document{out: out, fields: copied}
}

func (d *Document) Field(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.fields[name]
	return v, ok
}

func (d *Document) SetField(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.fields[name]; ok {
		d.fields[name] = value
	}
}

func (d *Document) SetEnabled(string, bool) {}

// RenderList prints entries; an empty render is the list being cleared and
// prints nothing.
func (d *Document) RenderList(name string, entries []domain.ListEntry) {
	if len(entries) == 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Title); w > width {
			width = w
		}
	}
	width = min(width, maxTitleWidth)

	for _, e := range entries {
		if e.Placeholder {
			fmt.Fprintln(d.out, e.Title)
			continue
		}
		title := runewidth.FillRight(runewidth.Truncate(e.Title, width, "…"), width)
		fmt.Fprintf(d.out, "%6d  %s  %s\n", e.FileID, title, e.Detail)
	}
}

func (d *Document) SetOptions(name string, options []domain.Option) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, o := range options {
		fmt.Fprintf(d.out, "%6s  %s\n", o.Value, o.Label)
	}
}
