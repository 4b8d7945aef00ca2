package collegesource

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
)

// FileSource reads the college document from local disk.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch implements college.Source.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.CodeDataNotFound, "data file not found", err)
		}
		return nil, err
	}
	return data, nil
}

// Describe implements college.Source.
func (s *FileSource) Describe() string {
	return "file:" + s.path
}

var _ college.Source = (*FileSource)(nil)
