package backend

import (
	"context"
	"sync"
	"sync/atomic"
)

// アプリケーションのメインの構造体
type App struct {
	ctx         *Context       // Wailsのコンテキスト
	config      Config         // アプリケーション設定
	appDataDir  string         // アプリケーションデータディレクトリのパス
	host        Host           // ウィンドウツールキットへの操作
	logger      AppLogger      // アプリケーションのロガー
	preferences *Preferences   // 実行中のみ保持する設定値
	fileService *fileService   // データファイルのダイアログと判定
	pending     *PendingOpens  // コンテンツ読み込み完了後に開くファイル
	lifecycle   *Lifecycle     // シェルの状態
	queue       *DispatchQueue // メニューとイベントの直列実行キュー
	crash       *CrashReporter // クラッシュレポート
	platform    Platform       // メニュー構築時のプラットフォーム
	unlisten    []func()       // イベントリスナーの解除関数
	quitting    atomic.Bool    // 終了処理中（ウィンドウを隠しても常駐扱いにしない）
}

// アプリケーションのコンテキストを管理
// Startup で設定され、ツールキットのコールバックから並行に参照される
type Context struct {
	mu  sync.RWMutex
	ctx context.Context
}

// Set はWailsのコンテキストを設定します
func (c *Context) Set(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = ctx
}

// Get は設定済みのコンテキストを返します（未設定ならnil）
func (c *Context) Get() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ctx
}
