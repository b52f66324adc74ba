package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStorage persists uploaded document bytes under slash-separated keys.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// DocumentKey builds documents/YYYY/MM/<uuid>-<basename>. The uuid prefix keeps
// keys unique when two uploads share a file name.
func DocumentKey(now time.Time, filename string) string {
	return fmt.Sprintf("documents/%04d/%02d/%s-%s",
		now.Year(), int(now.Month()), uuid.NewString(), sanitizeBaseName(filename))
}

func sanitizeBaseName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "file"
	}
	return name
}
