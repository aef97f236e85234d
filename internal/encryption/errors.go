package encryption

import (
	"errors"

	"github.com/idelchi/ghostenc/internal/fileutil"
)

var (
	// ErrSameOutput is returned when the output path would overwrite the input.
	ErrSameOutput = errors.New("output path equals input path")
	// ErrNotRegular is returned for inputs that are not regular files.
	ErrNotRegular = fileutil.ErrNotRegular
)
