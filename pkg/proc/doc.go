// Package proc abstracts external command execution behind a small
// interface so that server control, archiving, and the rcon query can be
// tested without running real processes.
//
// ExecRunner is the production implementation over os/exec. FakeRunner is
// a configurable test double that records every invocation.
package proc
