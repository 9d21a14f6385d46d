//go:build !darwin

package backend

// InstallResidentReactivation は macOS 以外では常駐しないため何もしない。
func InstallResidentReactivation(app *App) {}
