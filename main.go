package main

import (
	"embed"
	"os"
	"runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"cci-toolbox/backend"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := backend.DefaultConfig()
	appDataDir := cfg.ResolveAppDataDir()
	appLogger := backend.NewAppLogger(false, appDataDir)

	// クラッシュレポーターは最初に有効化する
	crash := backend.ArmCrashReporter(cfg, appDataDir, appLogger)
	defer crash.Recover()

	// 実行ファイル名を除いた引数をオプションとデータファイルに振り分ける
	launchArgs := backend.ParseLaunchArgs(os.Args[1:])

	app := backend.NewApp(cfg, appDataDir, launchArgs, backend.NewPreferences(), appLogger, crash)

	appMenu, err := backend.ApplicationMenu(app)
	if err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}

	// macOS では閉じるボタンでウィンドウを隠して常駐し、Dock から再度開いたときに戻す
	backend.InstallResidentReactivation(app)

	err = wails.Run(&options.App{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Menu:   appMenu,
		// macOS ではウィンドウを閉じてもアプリケーションを終了しない
		HideWindowOnClose: runtime.GOOS == "darwin",
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		OnBeforeClose:    app.BeforeClose,
		OnShutdown:       app.Shutdown,
		LogLevel:         logger.INFO,
		Bind: []interface{}{
			app,
		},
		DragAndDrop: &options.DragAndDrop{
			EnableFileDrop:     true,
			DisableWebViewDrop: true,
		},
		Mac: &mac.Options{
			OnFileOpen: func(filePath string) {
				app.OpenDataFilesFromLaunch([]string{filePath})
			},
		},
		Debug: options.Debug{
			OpenInspectorOnStartup: cfg.OpenInspectorOnStartup,
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: cfg.SingleInstanceID,
			OnSecondInstanceLaunch: func(secondInstanceData options.SecondInstanceData) {
				app.Reactivate()
				second := backend.ParseLaunchArgs(secondInstanceData.Args)
				app.OpenDataFilesFromLaunch(second.DataFiles)
			},
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
