package backend

import (
	"sync"
	"sync/atomic"
)

// キューに積む操作
type Operation struct {
	Name string
	Run  func()
}

// DispatchQueue はメニュー操作やコンテンツ層からのイベントを1つずつ順番に実行するキューです
// ツールキットのコールバックは任意のゴルーチンから呼ばれるため、ここで直列化する
type DispatchQueue struct {
	ops     chan Operation
	done    chan struct{}
	logger  AppLogger
	crash   *CrashReporter
	mutex   sync.Mutex
	started bool
	closed  bool
	stopped atomic.Bool // Stop 呼び出し後は積まれた操作を実行しない
	inline  bool        // trueの場合はPostした側でそのまま実行する（テスト用）
}

// NewDispatchQueue は新しいキューを作成します。Start を呼ぶまで操作は実行されません
func NewDispatchQueue(logger AppLogger, crash *CrashReporter, size int) *DispatchQueue {
	return &DispatchQueue{
		ops:    make(chan Operation, size),
		done:   make(chan struct{}),
		logger: logger,
		crash:  crash,
	}
}

// NewInlineDispatchQueue はPostした側で即時に実行するキューを作成します
func NewInlineDispatchQueue(logger AppLogger) *DispatchQueue {
	q := NewDispatchQueue(logger, nil, 0)
	q.inline = true
	return q
}

// Start は操作を処理するゴルーチンを起動します
func (q *DispatchQueue) Start() {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if q.inline || q.started || q.closed {
		return
	}
	q.started = true
	go q.loop()
}

func (q *DispatchQueue) loop() {
	defer close(q.done)
	defer q.crash.Recover()
	for op := range q.ops {
		if q.isClosed() {
			q.logger.Console("Discarding %s: dispatch queue is stopped", op.Name)
			continue
		}
		q.logger.Console("Dispatching %s", op.Name)
		op.Run()
	}
}

func (q *DispatchQueue) isClosed() bool {
	return q.stopped.Load()
}

// Post は操作をキューに追加します。停止後の操作は破棄されます
func (q *DispatchQueue) Post(name string, run func()) {
	if q.inline {
		run()
		return
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()
	if q.closed {
		q.logger.Console("Dropping %s: dispatch queue is stopped", name)
		return
	}
	q.ops <- Operation{Name: name, Run: run}
}

// Stop は受付を止め、実行中の操作が終わるまで待ちます
// 積まれたまま残っている操作は実行せずに破棄します
func (q *DispatchQueue) Stop() {
	if !q.inline {
		q.stopped.Store(true)
	}
	q.mutex.Lock()
	if q.inline || q.closed {
		q.mutex.Unlock()
		return
	}
	q.closed = true
	close(q.ops)
	started := q.started
	q.mutex.Unlock()

	if !started {
		for op := range q.ops {
			q.logger.Console("Discarding %s: dispatch queue is stopped", op.Name)
		}
		return
	}
	<-q.done
}
