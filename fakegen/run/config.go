package run

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"

	astutil "github.com/toejough/impfake/fakegen/run/0_util"
	detect "github.com/toejough/impfake/fakegen/run/3_detect"
	output "github.com/toejough/impfake/fakegen/run/6_output"
)

// ConfigFileName is the optional per-project configuration file, looked up from the working directory to the
// module root.
const ConfigFileName = ".impfake.yaml"

// DefaultPrefix starts the name of every fake unless configured otherwise.
const DefaultPrefix = "Fake"

// Config is the contents of .impfake.yaml. Command-line flags win over it.
type Config struct {
	// Prefix is prepended to the target name to name the fake.
	Prefix string `yaml:"prefix"`
	// FilePrefix starts the generated file name.
	FilePrefix string `yaml:"filePrefix"`
	// Kinds forces the kind of named targets, e.g. {"Clock": "contract"}.
	Kinds map[string]string `yaml:"kinds"`
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() Config {
	return Config{Prefix: DefaultPrefix, FilePrefix: output.DefaultFilePrefix}
}

// FakeName names the fake of target: the prefix followed by the target name. Unexported targets get an
// unexported fake, e.g. fakeStore for store.
func (c Config) FakeName(target string) string {
	if astutil.IsExported(target) {
		return c.Prefix + target
	}

	return astutil.LowerFirst(c.Prefix) + astutil.UpperFirst(target)
}

// KindFor returns the configured kind for target, or KindAuto.
func (c Config) KindFor(target string) (detect.TargetKind, error) {
	kind, err := detect.ParseTargetKind(c.Kinds[target])
	if err != nil {
		return detect.KindAuto, fmt.Errorf("%s: kinds.%s: %w", ConfigFileName, target, err)
	}

	return kind, nil
}

// LoadConfig reads the nearest .impfake.yaml between dir and the module root, filling unset keys with defaults.
func LoadConfig(fileSys FileSystem, dir string) (Config, error) {
	cfg := DefaultConfig()

	path, found := findConfig(fileSys, dir)
	if !found {
		return cfg, nil
	}

	data, err := fileSys.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}

	if cfg.FilePrefix == "" {
		cfg.FilePrefix = output.DefaultFilePrefix
	}

	return cfg, nil
}

// findConfig walks up from dir, stopping after the directory that holds go.mod.
func findConfig(fileSys FileSystem, dir string) (string, bool) {
	curr := dir

	for {
		candidate := filepath.Join(curr, ConfigFileName)

		_, err := fileSys.ReadFile(candidate)
		if err == nil {
			return candidate, true
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return candidate, true
		}

		_, err = fileSys.ReadFile(filepath.Join(curr, "go.mod"))
		if err == nil {
			return "", false
		}

		parent := filepath.Dir(curr)
		if parent == curr {
			return "", false
		}

		curr = parent
	}
}
