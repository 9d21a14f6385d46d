package backend

import (
	"os"
	"path/filepath"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	Title                  string // ウィンドウタイトル
	Width                  int    // ウィンドウの幅（ピクセル）
	Height                 int    // ウィンドウの高さ（ピクセル）
	ProductName            string // メニューやダイアログに表示する製品名
	CompanyName            string // クラッシュレポートに含める会社名
	CrashSubmitURL         string // クラッシュレポートの送信先
	AutoSubmitCrashes      bool   // クラッシュレポートを自動送信するかどうか
	HelpURL                string // Help メニューから開くサイト
	OpenInspectorOnStartup bool   // 起動時に開発者ツールを開くかどうか
	SingleInstanceID       string // 多重起動防止のID
	AppDataDirName         string // ユーザー設定ディレクトリ配下のディレクトリ名
}

// DefaultConfig は既定の設定を返します
func DefaultConfig() Config {
	return Config{
		Title:                  "CCI Toolbox",
		Width:                  1200,
		Height:                 600,
		ProductName:            "CCI Toolbox",
		CompanyName:            "ESA",
		CrashSubmitURL:         "https://www.brockmann-consult.de/ccitbxws/Crash",
		AutoSubmitCrashes:      true,
		HelpURL:                "http://cci.esa.int/",
		OpenInspectorOnStartup: true,
		SingleInstanceID:       "cci-toolbox-instance-lock",
		AppDataDirName:         "cci-toolbox",
	}
}

// ResolveAppDataDir はアプリケーションデータディレクトリのパスを返します
// ユーザー設定ディレクトリが取得できない場合はホーム、それも無理ならカレントを使います
func (c Config) ResolveAppDataDir() string {
	appData, err := os.UserConfigDir()
	if err != nil {
		appData, err = os.UserHomeDir()
		if err != nil {
			appData = "."
		}
	}
	return filepath.Join(appData, c.AppDataDirName)
}
