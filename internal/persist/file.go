package persist

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// FileKV keeps all keys in one JSON file so a restarted process sees the
// cart it had before, the closest disk analog to browser local storage.
type FileKV struct {
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	data, err := f.read()
	if err != nil {
		return err
	}
	data[key] = value
	return f.write(data)
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	data, err := f.read()
	if err != nil {
		return err
	}
	delete(data, key)
	return f.write(data)
}

func (f *FileKV) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		// unreadable file behaves like an absent one
		return map[string]string{}, nil
	}
	return data, nil
}

func (f *FileKV) write(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
