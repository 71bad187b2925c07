// Package tui is the interactive dashboard. Its widgets are the elements the
// usecases address by name; every widget change is queued onto the tview
// event loop and field values are mirrored so usecases can read them from
// any goroutine.
package tui

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/rivo/tview"
)

const (
	pageDashboard = "dashboard"
	pageShare     = "share"
	pageLogin     = "login"
)

// Handlers are the operations bound to the dashboard controls. Each one is run
// on its own goroutine.
type Handlers struct {
	Upload      func()
	Share       func()
	LoadChoices func()
	Refresh     func()
	Action      func(action domain.Action, fileID int64)
	Quit        func()
}

type Page struct {
	queue func(func())

	pages      *tview.Pages
	fileInput  *tview.InputField
	uploadBtn  *tview.Button
	fileList   *tview.List
	sharedList *tview.List
	status     *tview.TextView

	shareBody   *tview.Flex
	shareTarget *tview.TextView
	fileSelect  *tview.DropDown
	username    *tview.InputField
	shareBtn    *tview.Button
	backBtn     *tview.Button
	login       *tview.Modal

	mu       sync.Mutex
	fields   map[string]string
	options  []domain.Option
	own      []domain.ListEntry
	focus    []tview.Primitive
	current  string
	handlers Handlers
	setFocus func(p tview.Primitive)
}

func NewPage(app *tview.Application) *Page {
	p := newPage(func(f func()) { app.QueueUpdateDraw(f) })
	p.setFocus = func(prim tview.Primitive) { app.SetFocus(prim) }
	return p
}

func newPage(queue func(func())) *Page {
	p := &Page{
		queue:    queue,
		setFocus: func(tview.Primitive) {},
		fields: map[string]string{
			domain.ElementFileInput:     "",
			domain.ElementShareUsername: "",
		},
		current: pageDashboard,
	}
	p.build()
	return p
}

// Bind attaches the operations to the controls.
func (p *Page) Bind(h Handlers) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = h
}

func (p *Page) Root() tview.Primitive {
	return p.pages
}

func (p *Page) run(f func()) {
	if f != nil {
		go f()
	}
}

func (p *Page) bound() Handlers {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handlers
}

func (p *Page) build() {
	p.fileInput = tview.NewInputField().
		SetLabel("File ").
		SetPlaceholder("path of the file to upload").
		SetFieldWidth(0).
		SetChangedFunc(func(text string) { p.mirror(domain.ElementFileInput, text) })
	p.fileInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.run(p.bound().Upload)
		}
	})

	p.uploadBtn = tview.NewButton("Upload").SetSelectedFunc(func() {
		p.run(p.bound().Upload)
	})

	p.fileList = tview.NewList().ShowSecondaryText(true)
	p.fileList.SetBorder(true).SetTitle(" My files [d]ownload [s]hare [a]rchive ")
	p.fileList.SetInputCapture(p.captureFileKeys)

	p.sharedList = tview.NewList().ShowSecondaryText(true)
	p.sharedList.SetBorder(true).SetTitle(" Shared with me ")

	p.status = tview.NewTextView().SetDynamicColors(true)

	uploadRow := tview.NewFlex().
		AddItem(p.fileInput, 0, 1, true).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(p.uploadBtn, 10, 0, false)

	lists := tview.NewFlex().
		AddItem(p.fileList, 0, 1, false).
		AddItem(p.sharedList, 0, 1, false)

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[gray]Tab focus  Ctrl+S share  Ctrl+R refresh  Ctrl+C quit")

	dashboard := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(uploadRow, 1, 0, true).
		AddItem(lists, 0, 1, false).
		AddItem(p.status, 1, 0, false).
		AddItem(help, 1, 0, false)

	p.shareTarget = tview.NewTextView()
	p.fileSelect = tview.NewDropDown().SetLabel("File ")
	p.username = tview.NewInputField().
		SetLabel("Username ").
		SetFieldWidth(0).
		SetChangedFunc(func(text string) { p.mirror(domain.ElementShareUsername, text) })
	p.username.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.run(p.bound().Share)
		}
	})
	p.shareBtn = tview.NewButton("Share").SetSelectedFunc(func() {
		p.run(p.bound().Share)
	})
	p.backBtn = tview.NewButton("Back").SetSelectedFunc(p.ShowDashboard)

	p.shareBody = tview.NewFlex().SetDirection(tview.FlexRow)
	p.shareBody.SetBorder(true).SetTitle(" Share a file ")

	share := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.shareBody, 0, 1, true).
		AddItem(p.status, 1, 0, false)

	p.login = tview.NewModal().
		AddButtons([]string{"Quit"}).
		SetDoneFunc(func(int, string) { p.run(p.bound().Quit) })

	p.pages = tview.NewPages().
		AddPage(pageDashboard, dashboard, true, true).
		AddPage(pageShare, share, true, false).
		AddPage(pageLogin, p.login, true, false)

	p.layoutShare(false)
	p.focus = []tview.Primitive{p.fileInput, p.uploadBtn, p.fileList, p.sharedList}
}

// layoutShare rebuilds the share form. A fixed target hides the dropdown, the
// way the per-file share view carries the file in a hidden field.
func (p *Page) layoutShare(fixedTarget bool) {
	buttons := tview.NewFlex().
		AddItem(p.shareBtn, 10, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(p.backBtn, 10, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)

	p.shareBody.Clear()
	if fixedTarget {
		p.shareBody.AddItem(p.shareTarget, 1, 0, false)
	} else {
		p.shareBody.AddItem(p.fileSelect, 1, 0, true)
	}
	p.shareBody.
		AddItem(p.username, 1, 0, fixedTarget).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(buttons, 1, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)
}

func (p *Page) mirror(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.fields[name]; ok {
		p.fields[name] = value
	}
}

func (p *Page) captureFileKeys(event *tcell.EventKey) *tcell.EventKey {
	var action domain.Action
	switch event.Rune() {
	case 'd':
		action = domain.ActionDownload
	case 's':
		action = domain.ActionShare
	case 'a':
		action = domain.ActionArchive
	default:
		return event
	}
	if entry, ok := p.ownEntry(p.fileList.GetCurrentItem()); ok {
		h := p.bound()
		if h.Action != nil {
			go h.Action(action, entry.FileID)
		}
	}
	return nil
}

func (p *Page) ownEntry(index int) (domain.ListEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.own) || p.own[index].Placeholder {
		return domain.ListEntry{}, false
	}
	return p.own[index], true
}

// HandleKey is the application-wide key capture.
func (p *Page) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	switch event.Key() {
	case tcell.KeyCtrlC:
		p.run(p.bound().Quit)
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		if current == pageLogin {
			return event
		}
		p.cycleFocus(event.Key() == tcell.KeyBacktab)
		return nil
	case tcell.KeyCtrlS:
		if current == pageDashboard {
			p.ShowShare(0)
		}
		return nil
	case tcell.KeyCtrlR:
		if current == pageDashboard {
			p.run(p.bound().Refresh)
		}
		return nil
	case tcell.KeyEscape:
		if current == pageShare {
			p.ShowDashboard()
			return nil
		}
	}
	return event
}

func (p *Page) cycleFocus(backward bool) {
	p.mu.Lock()
	order := p.focus
	p.mu.Unlock()
	if len(order) == 0 {
		return
	}
	idx := 0
	for i, prim := range order {
		if prim.HasFocus() {
			idx = i
			break
		}
	}
	if backward {
		idx = (idx - 1 + len(order)) % len(order)
	} else {
		idx = (idx + 1) % len(order)
	}
	p.setFocus(order[idx])
}

func (p *Page) switchTo(name string, focus []tview.Primitive) {
	p.mu.Lock()
	p.current = name
	p.focus = focus
	p.mu.Unlock()
	p.pages.SwitchToPage(name)
	if len(focus) > 0 {
		p.setFocus(focus[0])
	}
}

// ShowDashboard must run on the event loop.
func (p *Page) ShowDashboard() {
	p.mu.Lock()
	delete(p.fields, domain.ElementSelectedFileID)
	delete(p.fields, domain.ElementFileSelect)
	p.mu.Unlock()
	p.switchTo(pageDashboard, []tview.Primitive{p.fileInput, p.uploadBtn, p.fileList, p.sharedList})
}

// ShowShare opens the share view. A positive fileID fixes the target file;
// zero offers the dropdown of the user's files. Must run on the event loop.
func (p *Page) ShowShare(fileID int64) {
	fixed := fileID > 0

	p.mu.Lock()
	if fixed {
		p.fields[domain.ElementSelectedFileID] = strconv.FormatInt(fileID, 10)
		delete(p.fields, domain.ElementFileSelect)
	} else {
		delete(p.fields, domain.ElementSelectedFileID)
		p.fields[domain.ElementFileSelect] = ""
	}
	p.mu.Unlock()

	p.layoutShare(fixed)
	if fixed {
		p.shareTarget.SetText(fmt.Sprintf("File #%d", fileID))
		p.switchTo(pageShare, []tview.Primitive{p.username, p.shareBtn, p.backBtn})
		return
	}
	p.fileSelect.SetCurrentOption(-1)
	p.switchTo(pageShare, []tview.Primitive{p.fileSelect, p.username, p.shareBtn, p.backBtn})
	p.run(p.bound().LoadChoices)
}

// ShowLogin must run on the event loop.
func (p *Page) ShowLogin(loginURL string) {
	p.login.SetText(fmt.Sprintf("%s\n\nLog in at %s and update session_cookie in the sharesh config, then restart.",
		domain.MsgSessionExpired, loginURL))
	p.switchTo(pageLogin, []tview.Primitive{p.login})
}
