package games

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Repository supplies games by key.
type Repository interface {
	GameKeys() ([]string, error)
	GetGame(key string) (*Game, error)
}

// DirRepository serves .kif rulesheets out of a directory; the key is
// the file name without its extension.
type DirRepository struct {
	dir string
}

var _ Repository = &DirRepository{}

func NewDirRepository(dir string) *DirRepository {
	return &DirRepository{dir: dir}
}

func (r *DirRepository) GameKeys() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing games")
	}
	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".kif") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".kif"))
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *DirRepository) GetGame(key string) (*Game, error) {
	contents, err := os.ReadFile(filepath.Join(r.dir, key+".kif"))
	if err != nil {
		return nil, errors.Wrapf(err, "reading game %s", key)
	}
	return NewGame(key, string(contents)), nil
}
