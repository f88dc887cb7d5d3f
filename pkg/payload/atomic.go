package payload

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/nvup/nvup/pkg/filesystem"
)

// WriteFileAtomic writes data to a temp file in the target's directory
// and renames it into place, so readers never see partial content.
func WriteFileAtomic(fsys filesystem.FS, path string, data []byte, perm fs.FileMode) error {
	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmp, path); err != nil {
		// best effort, the temp file is garbage either way
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
