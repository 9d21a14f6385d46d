package backend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/wailsapp/wails/v2/pkg/menu"
)

// 編集系ロールに対応するコンテンツ側のコマンド
var editCommands = map[Role]string{
	RoleUndo:      "undo",
	RoleRedo:      "redo",
	RoleCut:       "cut",
	RoleCopy:      "copy",
	RolePaste:     "paste",
	RoleSelectAll: "selectAll",
}

// NewApp は新しいAppインスタンスを作成します
// 起動引数の解析とクラッシュレポーターの有効化は呼び出し側で済ませておきます
func NewApp(cfg Config, appDataDir string, launchArgs LaunchArgs, preferences *Preferences, logger AppLogger, crash *CrashReporter) *App {
	ctx := &Context{}
	host := NewWailsHost(ctx, logger)
	queue := NewDispatchQueue(logger, crash, 64)
	return newApp(ctx, cfg, appDataDir, CurrentPlatform(), launchArgs, preferences, logger, crash, host, queue)
}

func newApp(ctx *Context, cfg Config, appDataDir string, platform Platform, launchArgs LaunchArgs,
	preferences *Preferences, logger AppLogger, crash *CrashReporter, host Host, queue *DispatchQueue) *App {
	a := &App{
		ctx:         ctx,
		config:      cfg,
		appDataDir:  appDataDir,
		host:        host,
		logger:      logger,
		preferences: preferences,
		fileService: NewFileService(host, preferences),
		pending:     NewPendingOpens(launchArgs.DataFiles),
		lifecycle:   NewLifecycle(),
		queue:       queue,
		crash:       crash,
		platform:    platform,
	}

	// Infoメッセージをステータスバーへ通知する
	if n, ok := logger.(interface{ SetNotifier(func(string)) }); ok {
		n.SetNotifier(func(message string) {
			host.Emit(EventLogMessage, message)
		})
	}

	for i, opt := range launchArgs.Options {
		logger.Console("Program option[%d] = %s", i, opt)
	}
	for i, file := range launchArgs.DataFiles {
		logger.Console("Data file[%d] = %s", i, file)
	}

	a.advance(StateStarting)
	return a
}

// State は現在のシェルの状態を返します
func (a *App) State() ShellState {
	return a.lifecycle.State()
}

// advance は状態遷移を行い、不正な遷移はログに残して無視する
func (a *App) advance(to ShellState) {
	if err := a.lifecycle.Advance(to); err != nil {
		a.logger.Error(err, "Lifecycle")
	}
}

// ------------------------------------------------------------
// アプリケーション関連の操作
// ------------------------------------------------------------

// ApplicationMenu はメニュー記述を組み立ててネイティブメニューに変換します
// 起動時に一度だけ呼び出し、プロセス終了まで差し替えません
// フロントエンドにバインドしないよう、Appのメソッドにはしない
func ApplicationMenu(a *App) (*menu.Menu, error) {
	desc := BuildMenu(a.platform, a.config.ProductName)
	nativeMenu, err := NewNativeMenu(desc, a)
	if err != nil {
		return nil, a.logger.Error(err, "Failed to build application menu")
	}
	a.advance(StateMenuInstalled)
	return nativeMenu, nil
}

// Startup はウィンドウ作成後に呼び出される初期化関数
func (a *App) Startup(ctx context.Context) {
	defer a.crash.Recover()
	a.ctx.Set(ctx)
	a.advance(StateWindowCreated)
	a.logger.Console("appDataDir %s", a.appDataDir)

	a.queue.Start()

	a.unlisten = append(a.unlisten, a.host.On(EventHandleError, func(data ...interface{}) {
		message := ""
		if len(data) > 0 {
			message = fmt.Sprint(data[0])
		}
		a.queue.Post(EventHandleError, func() {
			a.HandleError(message)
		})
	}))
	a.host.OnFileDrop(func(paths []string) {
		a.queue.Post("file-drop", func() {
			a.OpenDroppedFiles(paths)
		})
	})

	a.advance(StateContentLoading)
}

// DomReady はコンテンツの読み込み完了時に呼び出されます
// 起動時に渡されたファイルは最初の1回だけ開きます
func (a *App) DomReady(ctx context.Context) {
	defer a.crash.Recover()
	if a.State() == StateRunning {
		// コンテンツ層の再読み込み
		a.advance(StateContentLoading)
	}

	if paths, ok := a.pending.Take(); ok {
		for _, path := range paths {
			a.logger.Console("open %s", path)
			a.emitOpenDataFile(path)
		}
	}

	a.advance(StateContentReady)
	a.advance(StateRunning)
}

// BeforeClose はプロセスが終了する直前に呼び出されます
// macOS の閉じるボタンは HideWindowOnClose で隠されるため、ここに来るのは終了要求だけです
// Dock やログアウトからの終了もここを通るので、終了を止めることはしません
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	defer a.crash.Recover()
	a.quitting.Store(true)
	a.logger.Console("Closing %s", a.config.ProductName)
	return false
}

// windowHiddenOnClose は macOS で閉じるボタンによりウィンドウが隠されたときに呼ばれます
func (a *App) windowHiddenOnClose() {
	defer a.crash.Recover()
	if a.quitting.Load() {
		return
	}
	a.logger.Console("Main window hidden, staying resident")
	a.advance(StateResident)
}

// resumeFromResident は常駐中であれば通常の状態に戻します
func (a *App) resumeFromResident() {
	if a.State() == StateResident {
		a.advance(StateRunning)
	}
}

// Shutdown はプロセス終了時に呼び出されます
func (a *App) Shutdown(ctx context.Context) {
	defer a.crash.Recover()
	for _, unlisten := range a.unlisten {
		unlisten()
	}
	a.unlisten = nil
	a.queue.Stop()
	a.advance(StateTerminated)
	a.logger.Console("Shutdown")
	if err := a.logger.Close(); err != nil {
		fmt.Printf("Error closing log file: %v\n", err)
	}
}

// Quit はアプリケーションを終了します
func (a *App) Quit() {
	a.quitting.Store(true)
	a.host.Quit()
}

// Reactivate は常駐中のアプリケーションのウィンドウを再表示します
func (a *App) Reactivate() {
	a.host.Show()
	a.resumeFromResident()
}

// closeWindow はメインウィンドウを閉じます
// ウィンドウは1つだけなので、macOS 以外では終了と同じです
func (a *App) closeWindow() {
	if a.platform == PlatformMac {
		a.host.HideWindow()
		a.windowHiddenOnClose()
		return
	}
	a.Quit()
}

func (a *App) showAbout() {
	a.host.InfoDialog("About "+a.config.ProductName, fmt.Sprintf("%s\n%s", a.config.ProductName, a.config.CompanyName))
}

// ------------------------------------------------------------
// データファイル関連の操作
// ------------------------------------------------------------

// OpenDataFile はファイル選択ダイアログを表示し、対応形式ならコンテンツ層に開くよう通知します
func (a *App) OpenDataFile() error {
	path, err := a.fileService.SelectDataFile()
	if err != nil {
		return a.logger.Error(err, "Failed to show open dialog")
	}
	if path == "" {
		return nil
	}
	a.logger.Console("Selected file: %s", path)
	a.openIfSupported(path)
	return nil
}

// CloseDataFile はコンテンツ層にファイルを閉じるよう通知します
func (a *App) CloseDataFile() {
	a.host.Emit(EventCloseDataFile)
	a.logger.Info("Closed data file")
}

// OpenDataFilesFromLaunch は起動引数と同じ扱いでファイルを開きます
// コンテンツの読み込み前であれば読み込み完了まで保留します
func (a *App) OpenDataFilesFromLaunch(paths []string) {
	for _, path := range paths {
		if a.pending.Offer(path) {
			a.logger.Console("Queued %s until content is loaded", path)
			continue
		}
		a.emitOpenDataFile(path)
	}
}

// OpenDroppedFiles はウィンドウにドロップされたファイルを開きます
func (a *App) OpenDroppedFiles(paths []string) {
	for _, path := range paths {
		a.openIfSupported(path)
	}
}

func (a *App) openIfSupported(path string) {
	if !IsScientificDataFile(path) {
		a.host.ErrorDialog(unsupportedFormatTitle, unsupportedFormatText)
		return
	}
	a.emitOpenDataFile(path)
}

func (a *App) emitOpenDataFile(path string) {
	a.host.Emit(EventOpenDataFile, path)
	a.logger.Info("Opened %s", filepath.Base(path))
}

// HandleError はコンテンツ層から報告されたエラーをダイアログで表示します
func (a *App) HandleError(message string) {
	a.host.ErrorDialog("Error", message)
}

// ------------------------------------------------------------
// メニュー操作
// ------------------------------------------------------------

// DispatchCommand はメニューのコマンドをキュー経由で実行します
func (a *App) DispatchCommand(cmd CommandID) {
	a.queue.Post(string(cmd), func() {
		a.runCommand(cmd)
	})
}

// DispatchRole はメニューのロールをキュー経由で実行します
func (a *App) DispatchRole(role Role) {
	a.queue.Post(string(role), func() {
		a.runRole(role)
	})
}

func (a *App) runCommand(cmd CommandID) {
	if event, ok := forwardedCommands[cmd]; ok {
		a.host.Emit(event)
		return
	}

	switch cmd {
	case CmdOpenDataFile:
		a.OpenDataFile()
	case CmdCloseDataFile:
		a.CloseDataFile()
	case CmdReload:
		a.host.Reload()
	case CmdToggleFullScreen:
		a.host.ToggleFullscreen()
	case CmdQuit:
		a.Quit()
	case CmdAbout:
		a.showAbout()
	case CmdOpenHelpSite:
		a.host.OpenURL(a.config.HelpURL)
	default:
		a.logger.Console("Unknown menu command: %s", cmd)
	}
}

func (a *App) runRole(role Role) {
	if command, ok := editCommands[role]; ok {
		a.host.ExecJS(fmt.Sprintf("document.execCommand(%q)", command))
		return
	}

	switch role {
	case RoleMinimize:
		a.host.Minimise()
	case RoleClose:
		a.closeWindow()
	case RoleFront:
		a.Reactivate()
	case RoleAbout:
		a.showAbout()
	case RoleHide:
		a.host.Hide()
	default:
		a.logger.Console("Unknown menu role: %s", role)
	}
}
