package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// Move renames src to dst. When the two paths live on different devices
// and src is a regular file, it falls back to copying and removing the source.
func Move(fsys FS, src, dst string) error {
	renameErr := fsys.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return renameErr
	}

	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return renameErr
	}

	if err := copyFile(fsys, src, dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := fsys.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

func copyFile(fsys FS, src, dst string, perm os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.CreateExclusive(dst, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = fsys.Remove(dst)
		return err
	}
	return out.Close()
}
