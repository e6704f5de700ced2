package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
)

func TestSummarize(t *testing.T) {
	countdowns := []models.Countdown{
		testutil.NewCountdown().WithSeconds(60).Build(),
		testutil.NewCountdown().WithSeconds(120).Cancelled(30).Build(),
	}
	sum := Summarize(countdowns)
	if sum.Total != 2 || sum.Expired != 1 || sum.Cancelled != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.Counted != 150*time.Second {
		t.Fatalf("Counted = %v, want 2m30s", sum.Counted)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	countdowns := []models.Countdown{testutil.NewCountdown().Build()}
	if err := WritePDF(&buf, countdowns, time.Now()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF header")
	}
}

func TestWritePDFFileEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.pdf")
	if err := WritePDFFile(path, nil, time.Now()); err != nil {
		t.Fatalf("WritePDFFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PDF")
	}
}
