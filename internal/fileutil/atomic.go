// Package fileutil provides the atomic write used for shard and share
// files. A torn write must never leave a partial shard on disk: a later
// decode would read it, fail the checksum, and report corruption for what
// was really an interrupted encode.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyPath indicates an empty target path was provided.
var ErrEmptyPath = errors.New("fileutil: empty target path")

// WriteAtomic writes data to path so that a reader observes either the
// previous contents or the new contents in full, never a prefix. The data
// is staged in a hidden temp file in the target's directory, synced to
// disk, and renamed over the target. The rename itself is then made
// durable with a best-effort sync of the directory.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	staged, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("staging file: %w", err)
	}
	stagedPath := staged.Name()

	// On any failure below, the staged file is removed so an aborted
	// write leaves no stray temp files next to the shards.
	commit := false
	defer func() {
		if !commit {
			_ = staged.Close()
			_ = os.Remove(stagedPath)
		}
	}()

	if _, err = staged.Write(data); err != nil {
		return fmt.Errorf("writing staged file: %w", err)
	}
	if err = staged.Chmod(perm); err != nil {
		return fmt.Errorf("setting staged file mode: %w", err)
	}
	if err = staged.Sync(); err != nil {
		return fmt.Errorf("syncing staged file: %w", err)
	}
	if err = staged.Close(); err != nil {
		return fmt.Errorf("closing staged file: %w", err)
	}

	if err = os.Rename(stagedPath, path); err != nil {
		return fmt.Errorf("replacing target: %w", err)
	}
	commit = true

	if d, openErr := os.Open(dir); openErr == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
