package generate

import (
	"sort"
	"strconv"
	"strings"

	detect "github.com/toejough/impfake/fakegen/run/3_detect"
)

// RuntimePath is the import path of the runtime package every fake calls into.
const RuntimePath = "github.com/toejough/impfake"

// importSpec is one line of the generated import block. Alias is empty when it matches the path's last element.
type importSpec struct {
	Alias string
	Path  string
}

// importSet assigns each imported package a unique name in the generated file.
type importSet struct {
	byPath  map[string]string
	byAlias map[string]string
}

func newImportSet() *importSet {
	set := &importSet{byPath: map[string]string{}, byAlias: map[string]string{}}
	set.byPath[RuntimePath] = detect.RuntimeAlias
	set.byAlias[detect.RuntimeAlias] = RuntimePath

	return set
}

// add records an import of path, preferring name as its local name, and returns the name to qualify with.
func (s *importSet) add(path, name string) string {
	if alias, ok := s.byPath[path]; ok {
		return alias
	}

	alias := name
	for suffix := 2; s.taken(alias); suffix++ {
		alias = name + strconv.Itoa(suffix)
	}

	s.byPath[path] = alias
	s.byAlias[alias] = path

	return alias
}

// reserve blocks name from being used as an import alias.
func (s *importSet) reserve(name string) {
	if _, ok := s.byAlias[name]; !ok {
		s.byAlias[name] = ""
	}
}

// specs returns the imports sorted by path.
func (s *importSet) specs() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))

	for path, alias := range s.byPath {
		spec := importSpec{Path: path}
		if alias != path[strings.LastIndex(path, "/")+1:] || alias != detect.ImportName(path) {
			spec.Alias = alias
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })

	return specs
}

func (s *importSet) taken(alias string) bool {
	_, ok := s.byAlias[alias]

	return ok
}
