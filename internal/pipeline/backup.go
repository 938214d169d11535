package pipeline

import (
	"fmt"
	"os"

	"github.com/juan-oclock/kansyl-assets/internal/paths"
	"github.com/juan-oclock/kansyl-assets/internal/shell"
)

// Backup is a copy of an icon set taken before it is overwritten.
type Backup struct {
	src  string
	path string
}

// TakeBackup copies dir to backupDir, replacing any older backup there.
// It returns nil, nil when dir does not exist.
func TakeBackup(dir, backupDir string) (*Backup, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("backup: %s is not a directory", dir)
	}
	if err := os.RemoveAll(backupDir); err != nil {
		return nil, fmt.Errorf("backup: clearing %s: %w", backupDir, err)
	}
	if err := paths.CopyDir(dir, backupDir); err != nil {
		return nil, fmt.Errorf("backup: copying %s: %w", dir, err)
	}
	return &Backup{src: dir, path: backupDir}, nil
}

// Path returns the backup directory.
func (b *Backup) Path() string { return b.path }

// Restore copies the backed-up files over the icon set. Files created
// after the backup are left alone.
func (b *Backup) Restore() error {
	if err := paths.CopyDir(b.path, b.src); err != nil {
		return fmt.Errorf("restore %s: %w", b.src, err)
	}
	return nil
}

// RestoreHint is the shell command an operator can run to restore by hand.
func (b *Backup) RestoreHint() string {
	return fmt.Sprintf("cp -r %s/* %s/", shell.Quote(b.path), shell.Quote(b.src))
}

// OpenBackup returns a handle to an existing backup of dir.
func OpenBackup(dir, backupDir string) (*Backup, error) {
	info, err := os.Stat(backupDir)
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("backup: %s is not a directory", backupDir)
	}
	return &Backup{src: dir, path: backupDir}, nil
}
