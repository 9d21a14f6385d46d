package backend

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidTransition は状態遷移表にない遷移を要求した場合のエラー
var ErrInvalidTransition = errors.New("invalid shell state transition")

// ShellState はアプリケーションシェルの状態
type ShellState int

const (
	StateUninitialized ShellState = iota
	StateStarting
	StateMenuInstalled
	StateWindowCreated
	StateContentLoading
	StateContentReady
	StateRunning
	StateResident // macOS: ウィンドウを閉じてもプロセスを残す
	StateTerminated
)

var stateNames = map[ShellState]string{
	StateUninitialized:  "Uninitialized",
	StateStarting:       "Starting",
	StateMenuInstalled:  "MenuInstalled",
	StateWindowCreated:  "WindowCreated",
	StateContentLoading: "ContentLoading",
	StateContentReady:   "ContentReady",
	StateRunning:        "Running",
	StateResident:       "Resident",
	StateTerminated:     "Terminated",
}

func (s ShellState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ShellState(%d)", int(s))
}

// 許可される遷移
// Running から ContentLoading への遷移はコンテンツ層の再読み込み
var transitions = map[ShellState][]ShellState{
	StateUninitialized:  {StateStarting},
	StateStarting:       {StateMenuInstalled, StateTerminated},
	StateMenuInstalled:  {StateWindowCreated, StateTerminated},
	StateWindowCreated:  {StateContentLoading, StateTerminated},
	StateContentLoading: {StateContentReady, StateTerminated},
	StateContentReady:   {StateRunning, StateTerminated},
	StateRunning:        {StateContentLoading, StateResident, StateTerminated},
	StateResident:       {StateRunning, StateTerminated},
	StateTerminated:     {},
}

// Lifecycle はシェルの状態遷移を管理します
type Lifecycle struct {
	mu      sync.Mutex
	state   ShellState
	history []ShellState
}

// NewLifecycle は Uninitialized 状態のLifecycleを作成します
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateUninitialized, history: []ShellState{StateUninitialized}}
}

// State は現在の状態を返します
func (l *Lifecycle) State() ShellState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// History はこれまでに通過した状態を返します
func (l *Lifecycle) History() []ShellState {
	l.mu.Lock()
	defer l.mu.Unlock()
	history := make([]ShellState, len(l.history))
	copy(history, l.history)
	return history
}

// Advance は指定された状態へ遷移します
// 同じ状態への遷移は何もせず成功します
func (l *Lifecycle) Advance(to ShellState) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == to {
		return nil
	}
	for _, allowed := range transitions[l.state] {
		if allowed == to {
			l.state = to
			l.history = append(l.history, to)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.state, to)
}
