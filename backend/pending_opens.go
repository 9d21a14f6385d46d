package backend

import "sync"

// PendingOpens はコンテンツ読み込み完了前に届いたファイルを保持し、一度だけ取り出せるキューです
type PendingOpens struct {
	mu       sync.Mutex
	paths    []string
	consumed bool
}

// NewPendingOpens は指定されたパスを保持するキューを作成します
func NewPendingOpens(paths []string) *PendingOpens {
	copied := make([]string, len(paths))
	copy(copied, paths)
	return &PendingOpens{paths: copied}
}

// Offer は取り出し前であればパスを末尾に追加して true を返します
// 取り出し済みの場合は何もせず false を返すので、呼び出し側で直接開いてください
func (q *PendingOpens) Offer(path string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.consumed {
		return false
	}
	q.paths = append(q.paths, path)
	return true
}

// Take は保持しているパスを順序どおりに返し、キューを消費済みにします
// 2回目以降は (nil, false) を返します
func (q *PendingOpens) Take() ([]string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.consumed {
		return nil, false
	}
	q.consumed = true
	paths := q.paths
	q.paths = nil
	return paths, true
}
