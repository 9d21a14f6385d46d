package backend

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// AppLogger はログ出力とフロントエンド通知を担当するインターフェース
type AppLogger interface {
	Console(format string, args ...interface{})                // コンソールとログファイルに出力
	Info(format string, args ...interface{})                   // 情報メッセージ出力とフロントエンド通知
	Error(err error, format string, args ...interface{}) error // エラーメッセージ出力
	Close() error
}

// appLoggerImpl はAppLoggerの実装
type appLoggerImpl struct {
	logger     zerolog.Logger
	notify     func(message string) // ステータス通知（nilなら通知しない）
	isTestMode bool
	logFile    *os.File
	logDir     string
}

// NewAppLogger は新しいAppLoggerインスタンスを作成
// テストモードでは何も出力しない
func NewAppLogger(isTestMode bool, appDataDir string) *appLoggerImpl {
	if isTestMode {
		return &appLoggerImpl{logger: zerolog.Nop(), isTestMode: true}
	}

	logDir := filepath.Join(appDataDir, "logs")
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Printf("Error creating log directory: %v\n", err)
		return &appLoggerImpl{logger: newZerolog(console), logDir: logDir}
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("app_%s.log", time.Now().Format("2006-01-02_15-04-05")))
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return &appLoggerImpl{logger: newZerolog(console), logDir: logDir}
	}

	return &appLoggerImpl{
		logger:  newZerolog(zerolog.MultiLevelWriter(console, logFile)),
		logFile: logFile,
		logDir:  logDir,
	}
}

func newZerolog(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetNotifier はInfoメッセージをフロントエンドへ通知する関数を設定する
func (l *appLoggerImpl) SetNotifier(notify func(message string)) {
	l.notify = notify
}

// ログメッセージをコンソールとログファイルに出力
func (l *appLoggerImpl) Console(format string, args ...interface{}) {
	l.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// 情報メッセージを出力し、フロントエンドのステータスバーに通知
func (l *appLoggerImpl) Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Info().Msg(message)
	if !l.isTestMode && l.notify != nil {
		l.notify(message)
	}
}

// エラーメッセージを出力し、エラーをそのまま返す
func (l *appLoggerImpl) Error(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	l.logger.Error().Err(err).Msg(fmt.Sprintf(format, args...))
	return err
}

// Close はログファイルを閉じる
func (l *appLoggerImpl) Close() error {
	if l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}
