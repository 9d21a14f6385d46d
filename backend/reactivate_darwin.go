//go:build darwin

package backend

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

void installResidentHooks(void);
*/
import "C"

import "sync/atomic"

var residentApp atomic.Pointer[App]

// InstallResidentReactivation は閉じるボタンでウィンドウを隠したときと、
// 常駐中に Dock から再度開かれたときのハンドラーを登録します
func InstallResidentReactivation(app *App) {
	residentApp.Store(app)
	C.installResidentHooks()
}

//export goMainWindowHiddenOnClose
func goMainWindowHiddenOnClose() {
	if app := residentApp.Load(); app != nil {
		app.windowHiddenOnClose()
	}
}

//export goResidentReopened
func goResidentReopened() {
	if app := residentApp.Load(); app != nil {
		app.resumeFromResident()
	}
}
