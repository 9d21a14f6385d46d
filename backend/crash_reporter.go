package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

const crashSubmitTimeout = 10 * time.Second

// CrashReport はパニック発生時に保存・送信する内容
type CrashReport struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	CompanyName string    `json:"companyName"`
	Platform    string    `json:"platform"`
	Arch        string    `json:"arch"`
	GoVersion   string    `json:"goVersion"`
	Time        time.Time `json:"time"`
	Panic       string    `json:"panic"`
	Stack       string    `json:"stack"`
}

// CrashReporter はパニックを捕捉してクラッシュレポートを残します
type CrashReporter struct {
	productName string
	companyName string
	submitURL   string
	autoSubmit  bool
	crashDir    string
	client      *http.Client
	logger      AppLogger
	armed       bool
}

// ArmCrashReporter はクラッシュレポーターを有効化します
// 戻り値の Recover を defer で呼び出したゴルーチンのパニックが記録されます
func ArmCrashReporter(cfg Config, appDataDir string, logger AppLogger) *CrashReporter {
	debug.SetTraceback("all")
	return &CrashReporter{
		productName: cfg.ProductName,
		companyName: cfg.CompanyName,
		submitURL:   cfg.CrashSubmitURL,
		autoSubmit:  cfg.AutoSubmitCrashes,
		crashDir:    filepath.Join(appDataDir, "crashes"),
		client:      &http.Client{Timeout: crashSubmitTimeout},
		logger:      logger,
		armed:       true,
	}
}

// Recover はパニックを捕捉してレポートを保存・送信し、パニックを再送出します
// nilのレシーバーでも呼び出せます
func (r *CrashReporter) Recover() {
	if r == nil || !r.armed {
		return
	}
	if p := recover(); p != nil {
		r.Report(p, debug.Stack())
		panic(p)
	}
}

// Report はクラッシュレポートを作成して保存し、必要なら送信します
func (r *CrashReporter) Report(p interface{}, stack []byte) *CrashReport {
	report := &CrashReport{
		ID:          uuid.NewString(),
		ProductName: r.productName,
		CompanyName: r.companyName,
		Platform:    runtime.GOOS,
		Arch:        runtime.GOARCH,
		GoVersion:   runtime.Version(),
		Time:        time.Now().UTC(),
		Panic:       fmt.Sprint(p),
		Stack:       string(stack),
	}

	if _, err := r.save(report); err != nil {
		r.logger.Error(err, "Failed to save crash report %s", report.ID)
	}
	if r.autoSubmit && r.submitURL != "" {
		if err := r.submit(report); err != nil {
			r.logger.Error(err, "Failed to submit crash report %s", report.ID)
		}
	}
	return report
}

func (r *CrashReporter) save(report *CrashReport) (string, error) {
	if err := os.MkdirAll(r.crashDir, 0755); err != nil {
		return "", fmt.Errorf("create crash directory: %w", err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash report: %w", err)
	}
	path := filepath.Join(r.crashDir, report.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write crash report: %w", err)
	}
	return path, nil
}

func (r *CrashReporter) submit(report *CrashReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode crash report: %w", err)
	}
	resp, err := r.client.Post(r.submitURL, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post crash report: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("post crash report: unexpected status %s", resp.Status)
	}
	r.logger.Console("Crash report %s submitted", report.ID)
	return nil
}
