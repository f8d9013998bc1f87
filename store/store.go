package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"scoreboard/board"
)

// FileStore mirrors a board to a single JSON file:
//
//	{
//	  "1": null,
//	  "2": 85,
//	  ...
//	}
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Path() string {
	return s.path
}

// Save writes every entry, replacing the previous file atomically.
func (s *FileStore) Save(entries []board.Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	return nil
}

// Load reads the file back into a seat -> score mapping (nil = unset).
func (s *FileStore) Load() (map[int]*int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.path)
	}
	return m, nil
}

// LoadOrFresh is Load with every failure treated as "no prior state".
func (s *FileStore) LoadOrFresh() map[int]*int {
	m, err := s.Load()
	if err != nil {
		return map[int]*int{}
	}
	return m
}

// Encode renders entries as an indented JSON object keyed by seat number.
// Keys appear in the order of entries.
func Encode(entries []board.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		buf.WriteString(strconv.Quote(strconv.Itoa(e.Key)))
		buf.WriteString(": ")
		if e.Set {
			buf.WriteString(strconv.Itoa(e.Value))
		} else {
			buf.WriteString("null")
		}
	}
	if len(entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func Decode(data []byte) (map[int]*int, error) {
	var raw map[string]*int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[int]*int, len(raw))
	for k, v := range raw {
		key, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Errorf("seat key %q is not an integer", k)
		}
		out[key] = v
	}
	return out, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
