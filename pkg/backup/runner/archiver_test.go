package runner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Gredelston/minecraft-scripts/pkg/proc"
)

func TestTarArchiver_Create(t *testing.T) {
	fake := &proc.FakeRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", nil
		},
	}
	archiver := NewTarArchiver(fake)

	err := archiver.Create(context.Background(),
		"/backups/daily/backup-20230101-120000.tar.gz", "/srv/minecraft/current")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := fake.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(calls))
	}
	if calls[0].Name != "tar" {
		t.Errorf("expected tar invocation, got %q", calls[0].Name)
	}
	wantArgs := []string{"-czhf", "/backups/daily/backup-20230101-120000.tar.gz", "/srv/minecraft/current"}
	if !reflect.DeepEqual(calls[0].Args, wantArgs) {
		t.Errorf("expected args %v, got %v", wantArgs, calls[0].Args)
	}
}

func TestTarArchiver_CreateError(t *testing.T) {
	tarErr := errors.New("exit status 2: no space left on device")
	fake := &proc.FakeRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", tarErr
		},
	}
	archiver := NewTarArchiver(fake)

	err := archiver.Create(context.Background(), "/backups/x.tar.gz", "/srv/minecraft/current")
	if !errors.Is(err, tarErr) {
		t.Errorf("expected wrapped tar error, got %v", err)
	}
}
