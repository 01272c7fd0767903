package fs

import "os"

// WriteFile replaces the content of filename in place. Symlinks are followed,
// and the inode, hard links, ownership and permission bits of an existing file
// are kept. perm only applies when the file is created.
func (f *realFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
