package backend

import "sync"

// Preferences はプロセス実行中だけ保持する設定値です
// 永続化はしません
type Preferences struct {
	mu      sync.RWMutex
	lastDir string
}

// NewPreferences は空のPreferencesを作成します
func NewPreferences() *Preferences {
	return &Preferences{}
}

// LastDir は最後にファイルを選択したディレクトリを返します（未設定なら空文字）
func (p *Preferences) LastDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastDir
}

// SetLastDir は次回のダイアログで使うディレクトリを記録します
func (p *Preferences) SetLastDir(dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastDir = dir
}
