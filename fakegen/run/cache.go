package run

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Exported constants.
const (
	// CacheDirName is the name of the cache directory at the module root.
	CacheDirName = ".impfake"
	// CacheFileName is the cache file inside CacheDirName.
	CacheFileName = "cache.json"
	// DirPerm is the default directory permission.
	DirPerm = 0o755
	// FilePerm is the default file permission.
	FilePerm = 0o600
)

// CacheData represents the structure of the persistent disk cache.
type CacheData struct {
	Entries map[string]CacheEntry `json:"entries"`
}

// CacheEntry records the inputs a generated file was produced from.
type CacheEntry struct {
	Signature string `json:"signature"`
	Filename  string `json:"filename"`
	// Dependencies are the directories of the other packages the fake was generated from.
	Dependencies []string `json:"dependencies,omitempty"`
}

// CacheKey identifies one generation request: the directory it ran in and its arguments.
func CacheKey(dir string, args []string) string {
	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	return dir + "\x00" + strings.Join(cmdArgs, "\x00")
}

// CalculateSignature hashes the CLI arguments, the effective configuration, and every non-generated .go file in
// each of dirs.
func CalculateSignature(args []string, cfg Config, fileSys FileSystem, dirs ...string) (string, error) {
	hash := sha256.New()

	for _, arg := range args[min(1, len(args)):] {
		_, _ = fmt.Fprintf(hash, "arg:%s\n", arg)
	}

	cfgData, err := json.Marshal(cfg, json.Deterministic(true))
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}

	_, _ = fmt.Fprintf(hash, "config:%s\n", cfgData)

	for _, dir := range dirs {
		err = hashSources(hash, cfg, fileSys, dir)
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FindProjectRoot locates the nearest directory containing a go.mod file.
func FindProjectRoot(fileSys FileSystem, dir string) (string, error) {
	curr := dir

	for {
		_, err := fileSys.ReadFile(filepath.Join(curr, "go.mod"))
		if err == nil {
			return curr, nil
		}

		parent := filepath.Dir(curr)
		if parent == curr {
			return "", errProjectRootNotFound
		}

		curr = parent
	}
}

// LoadDiskCache reads the cache from path. A missing or corrupt cache is empty.
func LoadDiskCache(path string, fileSys FileSystem) CacheData {
	data := CacheData{Entries: map[string]CacheEntry{}}

	raw, err := fileSys.ReadFile(path)
	if err != nil {
		return data
	}

	err = json.Unmarshal(raw, &data)
	if err != nil || data.Entries == nil {
		return CacheData{Entries: map[string]CacheEntry{}}
	}

	return data
}

// SaveDiskCache writes the cache to path, creating its directory.
func SaveDiskCache(path string, data CacheData, fileSys FileSystem) error {
	err := fileSys.MkdirAll(filepath.Dir(path), DirPerm)
	if err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	raw, err := json.Marshal(data, json.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	err = fileSys.WriteFile(path, raw, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}

// unexported variables.
var (
	errProjectRootNotFound = errors.New("could not find project root (go.mod)")
)

func hashSources(hash io.Writer, cfg Config, fileSys FileSystem, dir string) error {
	files, err := fileSys.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return fmt.Errorf("failed to list sources in %s: %w", dir, err)
	}

	sort.Strings(files)

	_, _ = fmt.Fprintf(hash, "dir:%s\n", dir)

	for _, file := range files {
		if strings.HasPrefix(filepath.Base(file), cfg.FilePrefix) {
			continue
		}

		data, err := fileSys.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", file, err)
		}

		_, _ = fmt.Fprintf(hash, "file:%s:%d\n", filepath.Base(file), len(data))
		_, _ = hash.Write(data)
	}

	return nil
}
