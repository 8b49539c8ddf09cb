package state

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"traydner_bot/internal/models"
)

// FileStore — JSON-файл со всеми записями, перезаписывается целиком
// на каждом Save. Снимок держим в памяти, чтобы не читать файл обратно.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]record
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, data: make(map[string]record)}
}

func (s *FileStore) Load(ctx context.Context) (map[string]models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]models.Position{}, nil
		}
		return nil, errors.Wrapf(err, "read state %s", s.path)
	}
	if len(raw) == 0 {
		return map[string]models.Position{}, nil
	}

	records := make(map[string]record)
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrap(err, "decode state")
	}
	s.data = records

	out := make(map[string]models.Position, len(records))
	for sym, r := range records {
		out[sym] = fromRecord(sym, r)
	}
	return out, nil
}

func (s *FileStore) Save(ctx context.Context, pos models.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[pos.Symbol] = toRecord(pos)

	raw, err := sonic.Marshal(s.data)
	if err != nil {
		return errors.Wrap(err, "encode state")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create state dir")
		}
	}
	return errors.Wrapf(os.WriteFile(s.path, raw, 0o644), "write state %s", s.path)
}
