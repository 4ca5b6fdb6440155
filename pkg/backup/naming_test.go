package backup

import (
	"testing"
	"time"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := FileName(ts, ""); got != "backup-20230101-120000.tar.gz" {
		t.Errorf("expected backup-20230101-120000.tar.gz, got %q", got)
	}
	if got := FileName(ts, "12345"); got != "backup-20230101-120000-g12345.tar.gz" {
		t.Errorf("expected backup-20230101-120000-g12345.tar.gz, got %q", got)
	}
}

func TestFileName_SingleDigitFields(t *testing.T) {
	ts := time.Date(2023, 2, 3, 4, 5, 6, 0, time.UTC)

	if got := FileName(ts, ""); got != "backup-20230203-040506.tar.gz" {
		t.Errorf("expected zero-padded fields, got %q", got)
	}
}
