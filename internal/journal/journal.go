// Package journal — append-only лог решений: одна JSON-строка на событие.
// Пишется на каждом решении (сигнал, сделка, ошибка), процессом не читается.
package journal

import (
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

type Event struct {
	Time   string                 `json:"time"`
	Symbol string                 `json:"symbol"`
	Event  string                 `json:"event"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

type Journal struct {
	mu sync.Mutex
	f  *os.File
}

func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open journal %s", path)
	}
	return &Journal{f: f}, nil
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.f.Close()
}

// Append пишет событие одной строкой. Ошибка записи не валит процесс —
// журнал вспомогательный, решение уже принято.
func (j *Journal) Append(symbol, event string, data map[string]interface{}) error {
	e := Event{
		Time:   time.Now().Format(time.RFC3339),
		Symbol: symbol,
		Event:  event,
		Data:   data,
	}
	line, err := sonic.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "marshal journal event")
	}
	line = append(line, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()
	_, err = j.f.Write(line)
	return errors.Wrap(err, "write journal event")
}
