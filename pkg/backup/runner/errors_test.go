package runner

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorTypes(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"configuration", NewConfigurationError("/backups/daily", cause), "/backups/daily"},
		{"server control", NewServerControlError("stop", cause), "server stop failed"},
		{"archive tool", NewArchiveToolError("/backups/daily/x.tar.gz", cause), "creating archive"},
		{"deletion", NewDeletionError("/backups/daily/x.tar.gz", cause), "deleting archive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("expected message to contain %q, got %q", tt.want, tt.err.Error())
			}
			if !errors.Is(tt.err, cause) {
				t.Error("expected Unwrap to expose the cause")
			}
		})
	}
}
