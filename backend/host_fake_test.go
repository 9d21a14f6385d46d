package backend

import (
	"sync"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// テスト用のHost実装。呼び出し内容を記録する
type emittedEvent struct {
	name string
	data []interface{}
}

type dialogCall struct {
	kind    string
	title   string
	message string
}

type fakeHost struct {
	mu                sync.Mutex
	events            []emittedEvent
	dialogs           []dialogCall
	listeners         map[string][]func(data ...interface{})
	dropHandler       func(paths []string)
	dialogResult      string
	dialogErr         error
	dialogCalls       int
	lastDialogOptions wailsRuntime.OpenDialogOptions
	js                []string
	calls             []string
	urls              []string
	panicOnEmit       string // このイベントを送ろうとするとパニックする
}

func newFakeHost() *fakeHost {
	return &fakeHost{listeners: make(map[string][]func(data ...interface{}))}
}

func (h *fakeHost) Emit(event string, data ...interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if event != "" && event == h.panicOnEmit {
		panic("emit " + event)
	}
	h.events = append(h.events, emittedEvent{name: event, data: data})
}

func (h *fakeHost) On(event string, callback func(data ...interface{})) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners[event] = append(h.listeners[event], callback)
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, event)
	}
}

// trigger はコンテンツ層からのイベント受信を再現する
func (h *fakeHost) trigger(event string, data ...interface{}) {
	h.mu.Lock()
	callbacks := append([]func(data ...interface{}){}, h.listeners[event]...)
	h.mu.Unlock()
	for _, cb := range callbacks {
		cb(data...)
	}
}

func (h *fakeHost) OnFileDrop(callback func(paths []string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropHandler = callback
}

func (h *fakeHost) OpenFileDialog(options wailsRuntime.OpenDialogOptions) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialogCalls++
	h.lastDialogOptions = options
	return h.dialogResult, h.dialogErr
}

func (h *fakeHost) ErrorDialog(title, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialogs = append(h.dialogs, dialogCall{kind: "error", title: title, message: message})
}

func (h *fakeHost) InfoDialog(title, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialogs = append(h.dialogs, dialogCall{kind: "info", title: title, message: message})
}

func (h *fakeHost) ExecJS(js string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.js = append(h.js, js)
}

func (h *fakeHost) record(call string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, call)
}

func (h *fakeHost) Reload()           { h.record("reload") }
func (h *fakeHost) ToggleFullscreen() { h.record("fullscreen") }
func (h *fakeHost) Minimise()         { h.record("minimise") }
func (h *fakeHost) Hide()             { h.record("hide") }
func (h *fakeHost) HideWindow()       { h.record("hide-window") }
func (h *fakeHost) Show()             { h.record("show") }
func (h *fakeHost) Quit()             { h.record("quit") }

func (h *fakeHost) OpenURL(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.urls = append(h.urls, url)
}

// eventsNamed は指定された名前のイベントだけを返す
func (h *fakeHost) eventsNamed(name string) []emittedEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	var result []emittedEvent
	for _, e := range h.events {
		if e.name == name {
			result = append(result, e)
		}
	}
	return result
}

func (h *fakeHost) eventNames() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.events))
	for _, e := range h.events {
		names = append(names, e.name)
	}
	return names
}

func (h *fakeHost) recordedCalls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.calls...)
}
