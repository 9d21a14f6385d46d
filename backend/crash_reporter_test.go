package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crashServer struct {
	mu      sync.Mutex
	reports []CrashReport
}

func (s *crashServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		var report CrashReport
		if err := json.Unmarshal(body, &report); err != nil {
			t.Errorf("decode report: %v", err)
		}
		s.mu.Lock()
		s.reports = append(s.reports, report)
		s.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}
}

func (s *crashServer) received() []CrashReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CrashReport{}, s.reports...)
}

func setupCrashReporter(t *testing.T, autoSubmit bool) (*CrashReporter, *crashServer, string) {
	t.Helper()
	received := &crashServer{}
	server := httptest.NewServer(received.handler(t))
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.CrashSubmitURL = server.URL
	cfg.AutoSubmitCrashes = autoSubmit
	dir := t.TempDir()
	return ArmCrashReporter(cfg, dir, NewAppLogger(true, dir)), received, dir
}

func TestCrashReporter_ReportSavesAndSubmits(t *testing.T) {
	r, server, dir := setupCrashReporter(t, true)

	report := r.Report("boom", []byte("goroutine 1"))

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "CCI Toolbox", report.ProductName)
	assert.Equal(t, "ESA", report.CompanyName)
	assert.Equal(t, "boom", report.Panic)

	data, err := os.ReadFile(filepath.Join(dir, "crashes", report.ID+".json"))
	require.NoError(t, err)
	var saved CrashReport
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, report.ID, saved.ID)
	assert.Equal(t, "goroutine 1", saved.Stack)

	reports := server.received()
	require.Len(t, reports, 1)
	assert.Equal(t, report.ID, reports[0].ID)
}

func TestCrashReporter_NoSubmitWhenDisabled(t *testing.T) {
	r, server, dir := setupCrashReporter(t, false)

	report := r.Report("boom", nil)

	assert.FileExists(t, filepath.Join(dir, "crashes", report.ID+".json"))
	assert.Empty(t, server.received())
}

func TestCrashReporter_RecoverRepanics(t *testing.T) {
	r, server, dir := setupCrashReporter(t, true)

	assert.PanicsWithValue(t, "fatal", func() {
		defer r.Recover()
		panic("fatal")
	})

	entries, err := os.ReadDir(filepath.Join(dir, "crashes"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	reports := server.received()
	require.Len(t, reports, 1)
	assert.Equal(t, "fatal", reports[0].Panic)
	assert.Contains(t, reports[0].Stack, "TestCrashReporter_RecoverRepanics")
}

func TestCrashReporter_NilIsSafe(t *testing.T) {
	var r *CrashReporter
	assert.NotPanics(t, func() {
		defer r.Recover()
	})
}
