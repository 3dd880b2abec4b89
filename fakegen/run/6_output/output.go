// Package output writes generated fakes to disk.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/rs/zerolog"
	"github.com/toejough/go-reorder"
)

// DefaultFilePrefix starts the name of every generated file.
const DefaultFilePrefix = "generated_"

// FileSystem is the file access output needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Options adjusts how generated code is written.
type Options struct {
	// FilePrefix replaces DefaultFilePrefix when set.
	FilePrefix string
	// Diff prints a unified diff against the existing file to out instead of writing.
	Diff bool
}

// Filename names the generated file: <prefix><fakeName>.go, or _test.go when the generating package or source
// file is a test. That covers both blackbox (package xxx_test) and whitebox (package xxx in xxx_test.go) tests.
func Filename(fakeName, pkgName, goFile, prefix string) string {
	if prefix == "" {
		prefix = DefaultFilePrefix
	}

	isTest := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if isTest {
		return prefix + fakeName + "_test.go"
	}

	return prefix + fakeName + ".go"
}

// WriteGeneratedCode reorders code and writes it to the file named by Filename, returning that name.
func WriteGeneratedCode(
	code string,
	fakeName string,
	pkgName string,
	getEnv func(string) string,
	fileSys FileSystem,
	out io.Writer,
	logger zerolog.Logger,
	opts Options,
) (string, error) {
	const generatedFilePermissions = 0o600

	filename := Filename(fakeName, pkgName, getEnv("GOFILE"), opts.FilePrefix)

	reordered, err := reorderSource(code)
	if err != nil {
		logger.Warn().Err(err).Str("file", filename).Msg("failed to reorder declarations, writing as generated")

		reordered = code
	}

	if opts.Diff {
		return filename, writeDiff(filename, reordered, fileSys, out)
	}

	err = fileSys.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return "", fmt.Errorf("error writing %s: %w", filename, err)
	}

	logger.Info().Str("file", filename).Msg("written successfully")

	return filename, nil
}

// unexported variables.
var (
	errReorderPanicked = errors.New("reorder panicked")
)

// reorderSource runs go-reorder, reporting a panic on malformed input as an error.
func reorderSource(code string) (reordered string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			reordered, err = "", fmt.Errorf("%w: %v", errReorderPanicked, recovered)
		}
	}()

	reordered, err = reorder.Source(code)
	if err != nil {
		return "", fmt.Errorf("failed to reorder: %w", err)
	}

	return reordered, nil
}

// writeDiff prints the changes generating would make. A missing file diffs against empty content.
func writeDiff(filename, code string, fileSys FileSystem, out io.Writer) error {
	existing, err := fileSys.ReadFile(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", filename, err)
	}

	diff := textdiff.Unified("a/"+filename, "b/"+filename, string(existing), code)
	if diff == "" {
		_, _ = fmt.Fprintf(out, "%s is up to date.\n", filename)

		return nil
	}

	_, _ = fmt.Fprint(out, diff)

	return nil
}
