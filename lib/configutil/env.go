package configutil

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles are the dotenv files consulted by LoadEnv, only the first one
// that exists is read.
var EnvFiles = []string{".env.local", ".env"}

// Env is an immutable view of resolved environment variables.
//
// Resolution order for a key:
// 1. the process environment
// 2. the first existing file in EnvFiles under the directory given to LoadEnv
type Env struct {
	file   map[string]string
	lookup func(string) (string, bool)
}

// LoadEnv reads the first dotenv file found in `dir`. The process
// environment is never modified.
func LoadEnv(dir string) (Env, error) {
	env := Env{lookup: os.LookupEnv}
	for _, name := range EnvFiles {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Env{}, err
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return Env{}, err
		}
		slog.Debug("loaded env file", "path", path, "keys", len(values))
		env.file = values
		break
	}
	return env, nil
}

// NewEnv builds an Env from explicit layers, mainly for tests.
func NewEnv(process map[string]string, file map[string]string) Env {
	return Env{
		file: file,
		lookup: func(key string) (string, bool) {
			v, ok := process[key]
			return v, ok
		},
	}
}

// Lookup resolves a key, empty values count as unset.
func (e Env) Lookup(key string) (string, bool) {
	if e.lookup != nil {
		v, ok := e.lookup(key)
		if ok && v != "" {
			return v, true
		}
	}
	v, ok := e.file[key]
	if ok && v != "" {
		return v, true
	}
	return "", false
}
