package backend

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// Host はウィンドウツールキット（Wailsランタイム）への操作をまとめたインターフェースです
// テストでは記録用の実装に差し替えます
type Host interface {
	Emit(event string, data ...interface{})
	On(event string, callback func(data ...interface{})) func()
	OnFileDrop(callback func(paths []string))
	OpenFileDialog(options wailsRuntime.OpenDialogOptions) (string, error)
	ErrorDialog(title, message string)
	InfoDialog(title, message string)
	ExecJS(js string)
	Reload()
	ToggleFullscreen()
	Minimise()
	Hide()       // アプリケーション全体を隠す（macOS）
	HideWindow() // メインウィンドウだけを隠す
	Show()
	Quit()
	OpenURL(url string)
}

// wailsHost はWailsランタイムを使うHostの実装です
type wailsHost struct {
	ctx    *Context
	logger AppLogger
}

// NewWailsHost は新しいwailsHostインスタンスを作成します
func NewWailsHost(ctx *Context, logger AppLogger) *wailsHost {
	return &wailsHost{ctx: ctx, logger: logger}
}

// ready はWailsのコンテキストが設定済みかどうかを返す
// ウィンドウ作成前の呼び出しは破棄する
func (h *wailsHost) ready(op string) (context.Context, bool) {
	ctx := h.ctx.Get()
	if ctx == nil {
		h.logger.Console("Skip %s: window is not ready", op)
		return nil, false
	}
	return ctx, true
}

func (h *wailsHost) Emit(event string, data ...interface{}) {
	if ctx, ok := h.ready("emit " + event); ok {
		wailsRuntime.EventsEmit(ctx, event, data...)
	}
}

func (h *wailsHost) On(event string, callback func(data ...interface{})) func() {
	ctx, ok := h.ready("listen " + event)
	if !ok {
		return func() {}
	}
	return wailsRuntime.EventsOn(ctx, event, callback)
}

func (h *wailsHost) OnFileDrop(callback func(paths []string)) {
	if ctx, ok := h.ready("file drop"); ok {
		wailsRuntime.OnFileDrop(ctx, func(_, _ int, paths []string) {
			callback(paths)
		})
	}
}

func (h *wailsHost) OpenFileDialog(options wailsRuntime.OpenDialogOptions) (string, error) {
	ctx, ok := h.ready("open dialog")
	if !ok {
		return "", nil
	}
	return wailsRuntime.OpenFileDialog(ctx, options)
}

func (h *wailsHost) ErrorDialog(title, message string) {
	h.messageDialog(wailsRuntime.ErrorDialog, title, message)
}

func (h *wailsHost) InfoDialog(title, message string) {
	h.messageDialog(wailsRuntime.InfoDialog, title, message)
}

func (h *wailsHost) messageDialog(kind wailsRuntime.DialogType, title, message string) {
	ctx, ok := h.ready("dialog " + title)
	if !ok {
		return
	}
	if _, err := wailsRuntime.MessageDialog(ctx, wailsRuntime.MessageDialogOptions{
		Type:    kind,
		Title:   title,
		Message: message,
	}); err != nil {
		h.logger.Error(err, "Failed to show dialog %q", title)
	}
}

func (h *wailsHost) ExecJS(js string) {
	if ctx, ok := h.ready("exec js"); ok {
		wailsRuntime.WindowExecJS(ctx, js)
	}
}

func (h *wailsHost) Reload() {
	if ctx, ok := h.ready("reload"); ok {
		wailsRuntime.WindowReload(ctx)
	}
}

func (h *wailsHost) ToggleFullscreen() {
	ctx, ok := h.ready("fullscreen")
	if !ok {
		return
	}
	if wailsRuntime.WindowIsFullscreen(ctx) {
		wailsRuntime.WindowUnfullscreen(ctx)
	} else {
		wailsRuntime.WindowFullscreen(ctx)
	}
}

func (h *wailsHost) Minimise() {
	if ctx, ok := h.ready("minimise"); ok {
		wailsRuntime.WindowMinimise(ctx)
	}
}

func (h *wailsHost) Hide() {
	if ctx, ok := h.ready("hide"); ok {
		wailsRuntime.Hide(ctx)
	}
}

func (h *wailsHost) HideWindow() {
	if ctx, ok := h.ready("hide window"); ok {
		wailsRuntime.WindowHide(ctx)
	}
}

func (h *wailsHost) Show() {
	if ctx, ok := h.ready("show"); ok {
		wailsRuntime.WindowUnminimise(ctx)
		wailsRuntime.WindowShow(ctx)
		wailsRuntime.Show(ctx)
	}
}

func (h *wailsHost) Quit() {
	if ctx, ok := h.ready("quit"); ok {
		wailsRuntime.Quit(ctx)
	}
}

func (h *wailsHost) OpenURL(url string) {
	if ctx, ok := h.ready("open url"); ok {
		wailsRuntime.BrowserOpenURL(ctx, url)
	}
}
