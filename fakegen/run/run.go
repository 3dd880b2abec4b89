// Package run implements the fakegen tool in a testable way.
package run

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	load "github.com/toejough/impfake/fakegen/run/2_load"
	detect "github.com/toejough/impfake/fakegen/run/3_detect"
	resolve "github.com/toejough/impfake/fakegen/run/4_resolve"
	generate "github.com/toejough/impfake/fakegen/run/5_generate"
	output "github.com/toejough/impfake/fakegen/run/6_output"
)

// FileSystem abstracts the file operations of a generation run.
type FileSystem interface {
	Getwd() (string, error)
	Glob(pattern string) ([]string, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader loads parsed packages by import path.
type PackageLoader = detect.PackageLoader

// Run executes the fakegen tool. It takes the command-line arguments, an environment variable getter, a
// FileSystem, a PackageLoader, and the writer for logs and diffs. On success it writes a Go source file declaring
// a fake of the requested type into the package that invoked go generate.
//
//nolint:funlen // Linear pipeline of generation stages
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger := newLogger(out, parsed.Verbose)

	dir, err := fileSys.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := LoadConfig(fileSys, dir)
	if err != nil {
		return err
	}

	info, err := getGeneratorCallInfo(parsed, cfg, getEnv)
	if err != nil {
		return err
	}

	logger.Debug().Str("target", parsed.Target).Str("fake", info.fakeName).Stringer("kind", info.kind).
		Msg("generating fake")

	var cached *cacheState
	if parsed.Cache && !parsed.Diff {
		cached, err = checkCache(args, cfg, fileSys, dir)
		if err != nil {
			logger.Debug().Err(err).Msg("cache unavailable")
		}

		if cached != nil && cached.hit {
			logger.Info().Str("file", cached.entry.Filename).Msg("up to date (cached)")

			return nil
		}
	}

	recorder := &recordingLoader{PackageLoader: pkgLoader, dirs: map[string]bool{}}
	pkgLoader = recorder

	localPkg, err := pkgLoader.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load package: %w", err)
	}

	if info.pkgName == "" {
		info.pkgName = localPkg.Name
	}

	targetPkg := localPkg

	if info.qualifier != "" {
		importPath, err := detect.FindImportPath(localPkg.Files, info.qualifier, pkgLoader)
		if err != nil {
			return err
		}

		targetPkg, err = pkgLoader.Load(importPath)
		if err != nil {
			return fmt.Errorf("failed to load package %s: %w", importPath, err)
		}
	}

	decl, err := detect.Extract(targetPkg, info.localName, pkgLoader, detect.Options{
		Kind:          info.kind,
		OutputPackage: info.pkgName,
	})
	if err != nil {
		return err
	}

	logger.Debug().Stringer("kind", decl.Kind).Int("members", len(decl.Members)).Msg("extracted target")

	plan, err := resolve.Resolve(decl)
	if err != nil {
		return err
	}

	code, err := generate.Code(plan, generate.GeneratorInfo{PkgName: info.pkgName, FakeName: info.fakeName})
	if err != nil {
		return err
	}

	filename, err := output.WriteGeneratedCode(code, info.fakeName, info.pkgName, getEnv, fileSys, out, logger,
		output.Options{FilePrefix: cfg.FilePrefix, Diff: parsed.Diff})
	if err != nil {
		return err
	}

	if cached != nil {
		cached.store(filename, recorder.dependencies(), fileSys, logger)
	}

	return nil
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Target  string `arg:"positional,required" help:"type to fake (e.g. Store or pkg.Store)"`
	Name    string `arg:"--name"              help:"name of the generated fake (defaults to Fake<Target>)"`
	Kind    string `arg:"--kind"              help:"force the target kind: contract, open, closed, value, or equatable"`
	Cache   bool   `arg:"--cache"             help:"skip generation when arguments, configuration, and sources are unchanged"`
	Diff    bool   `arg:"--diff"              help:"print a unified diff against the existing file instead of writing it"`
	Verbose bool   `arg:"-v,--verbose"        help:"log debug output"`
}

// generatorInfo holds information gathered for generation.
type generatorInfo struct {
	pkgName   string
	qualifier string
	localName string
	fakeName  string
	kind      detect.TargetKind
}

// cacheState is the cache lookup for the current run.
type cacheState struct {
	args  []string
	cfg   Config
	dir   string
	path  string
	key   string
	data  CacheData
	entry CacheEntry
	hit   bool
}

// store records the run, signing the local sources together with those of every dependency the run loaded.
func (c *cacheState) store(filename string, dependencies []string, fileSys FileSystem, logger zerolog.Logger) {
	signature, err := CalculateSignature(c.args, c.cfg, fileSys, append([]string{c.dir}, dependencies...)...)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to sign sources for the cache")

		return
	}

	c.data.Entries[c.key] = CacheEntry{Signature: signature, Filename: filename, Dependencies: dependencies}

	err = SaveDiskCache(c.path, c.data, fileSys)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to save cache")
	}
}

// recordingLoader remembers the directories of the non-local packages a run loads.
type recordingLoader struct {
	PackageLoader

	dirs map[string]bool
}

// Load loads importPath and records its directory.
func (r *recordingLoader) Load(importPath string) (*load.Package, error) {
	pkg, err := r.PackageLoader.Load(importPath)
	if err != nil {
		return nil, err //nolint:wrapcheck // Callers wrap loader errors with the import path
	}

	if !pkg.Local && pkg.Dir != "" {
		r.dirs[pkg.Dir] = true
	}

	return pkg, nil
}

func (r *recordingLoader) dependencies() []string {
	dirs := make([]string, 0, len(r.dirs))
	for dir := range r.dirs {
		dirs = append(dirs, dir)
	}

	sort.Strings(dirs)

	return dirs
}

// checkCache looks up this run in the disk cache. It reports a hit only when the signature over the local sources
// and the recorded dependencies matches and the generated file still exists.
func checkCache(args []string, cfg Config, fileSys FileSystem, dir string) (*cacheState, error) {
	root, err := FindProjectRoot(fileSys, dir)
	if err != nil {
		return nil, err
	}

	state := &cacheState{
		args: args,
		cfg:  cfg,
		dir:  dir,
		path: filepath.Join(root, CacheDirName, CacheFileName),
		key:  CacheKey(dir, args),
	}
	state.data = LoadDiskCache(state.path, fileSys)

	entry, ok := state.data.Entries[state.key]
	if !ok {
		return state, nil
	}

	signature, err := CalculateSignature(args, cfg, fileSys, append([]string{dir}, entry.Dependencies...)...)
	if err != nil || signature != entry.Signature {
		return state, err
	}

	_, err = fileSys.ReadFile(filepath.Join(dir, entry.Filename))
	state.entry = entry
	state.hit = err == nil

	return state, nil
}

// getGeneratorCallInfo combines the arguments, configuration, and go generate environment.
func getGeneratorCallInfo(parsed cliArgs, cfg Config, getEnv func(string) string) (generatorInfo, error) {
	qualifier, localName := splitTarget(parsed.Target)

	kind, err := detect.ParseTargetKind(parsed.Kind)
	if err != nil {
		return generatorInfo{}, fmt.Errorf("--kind: %w", err)
	}

	if kind == detect.KindAuto {
		kind, err = cfg.KindFor(localName)
		if err != nil {
			return generatorInfo{}, err
		}
	}

	fakeName := parsed.Name
	if fakeName == "" {
		fakeName = cfg.FakeName(localName)
	}

	return generatorInfo{
		pkgName:   getEnv("GOPACKAGE"),
		qualifier: qualifier,
		localName: localName,
		fakeName:  fakeName,
		kind:      kind,
	}, nil
}

// newLogger logs to out without color or timestamps, so output is stable under go generate.
func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: out, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}

	return zerolog.New(console).Level(level)
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "fakegen"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// splitTarget splits "pkg.Name" into its package qualifier and local name.
func splitTarget(target string) (string, string) {
	qualifier, name, found := strings.Cut(target, ".")
	if !found {
		return "", target
	}

	return qualifier, name
}
