package runner

import "fmt"

// ConfigurationError reports a tier directory that could not be scanned.
// It aborts the whole run: an unreadable tier means the deployment is
// wrong, and guessing "empty tier" would trigger a spurious backup.
type ConfigurationError struct {
	Dir string
	Err error
}

// NewConfigurationError creates a ConfigurationError for the given
// directory.
func NewConfigurationError(dir string, err error) *ConfigurationError {
	return &ConfigurationError{Dir: dir, Err: err}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tier directory %s unusable: %v", e.Dir, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ServerControlError reports a failed stop or start of the server
// process. A failed stop aborts the backup before anything is archived;
// a failed start is logged and does not change the archiving outcome.
type ServerControlError struct {
	Op  string // "stop" or "start"
	Err error
}

// NewServerControlError creates a ServerControlError for the given
// operation.
func NewServerControlError(op string, err error) *ServerControlError {
	return &ServerControlError{Op: op, Err: err}
}

func (e *ServerControlError) Error() string {
	return fmt.Sprintf("server %s failed: %v", e.Op, e.Err)
}

func (e *ServerControlError) Unwrap() error {
	return e.Err
}

// ArchiveToolError reports a failed archive creation.
type ArchiveToolError struct {
	Path string
	Err  error
}

// NewArchiveToolError creates an ArchiveToolError for the given target
// path.
func NewArchiveToolError(path string, err error) *ArchiveToolError {
	return &ArchiveToolError{Path: path, Err: err}
}

func (e *ArchiveToolError) Error() string {
	return fmt.Sprintf("creating archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveToolError) Unwrap() error {
	return e.Err
}

// DeletionError reports a single expired archive that could not be
// removed. It never aborts the retention pass; the archive stays
// eligible and the next run retries naturally.
type DeletionError struct {
	Path string
	Err  error
}

// NewDeletionError creates a DeletionError for the given archive path.
func NewDeletionError(path string, err error) *DeletionError {
	return &DeletionError{Path: path, Err: err}
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("deleting archive %s: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error {
	return e.Err
}
