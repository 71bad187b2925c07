package tui

import (
	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/rivo/tview"
)

func (p *Page) Field(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.fields[name]
	return v, ok
}

func (p *Page) SetField(name, value string) {
	p.mu.Lock()
	if _, ok := p.fields[name]; !ok {
		p.mu.Unlock()
		return
	}
	p.fields[name] = value
	options := p.options
	p.mu.Unlock()

	switch name {
	case domain.ElementFileInput:
		p.queue(func() { p.fileInput.SetText(value) })
	case domain.ElementShareUsername:
		p.queue(func() { p.username.SetText(value) })
	case domain.ElementFileSelect:
		index := -1
		for i, o := range options {
			if o.Value == value {
				index = i
				break
			}
		}
		p.queue(func() { p.fileSelect.SetCurrentOption(index) })
	}
}

func (p *Page) SetEnabled(name string, enabled bool) {
	if name != domain.ElementUploadButton {
		return
	}
	p.queue(func() {
		p.uploadBtn.SetDisabled(!enabled)
		if enabled {
			p.uploadBtn.SetLabel("Upload")
		} else {
			p.uploadBtn.SetLabel("Sending")
		}
	})
}

// RenderList replaces every row of the named list.
func (p *Page) RenderList(name string, entries []domain.ListEntry) {
	var list *tview.List
	switch name {
	case domain.ElementFileList:
		list = p.fileList
		p.mu.Lock()
		p.own = append([]domain.ListEntry(nil), entries...)
		p.mu.Unlock()
	case domain.ElementSharedList:
		list = p.sharedList
	default:
		return
	}

	p.queue(func() {
		list.Clear()
		for _, e := range entries {
			if e.Placeholder {
				list.AddItem("[gray]"+tview.Escape(e.Title), "", 0, nil)
				continue
			}
			var selected func()
			if len(e.Actions) > 0 {
				id := e.FileID
				selected = func() {
					if h := p.bound(); h.Action != nil {
						go h.Action(e.Actions[0], id)
					}
				}
			}
			list.AddItem(tview.Escape(e.Title), tview.Escape(e.Detail), 0, selected)
		}
	})
}

func (p *Page) SetOptions(name string, options []domain.Option) {
	if name != domain.ElementFileSelect {
		return
	}
	p.mu.Lock()
	p.options = append([]domain.Option(nil), options...)
	p.mu.Unlock()

	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}
	p.queue(func() {
		p.fileSelect.SetOptions(labels, func(_ string, index int) {
			value := ""
			if index >= 0 && index < len(options) {
				value = options[index].Value
			}
			p.mirror(domain.ElementFileSelect, value)
		})
		p.fileSelect.SetCurrentOption(-1)
	})
}
