// Package excluded builds the set of classes that were deliberately left
// out of a native compilation.
package excluded

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/stubber/classfile"
)

var log = commonlog.GetLogger("stubber.excluded")

// Set is a set of fully-qualified dotted class names. It is filled while
// the configuration is read and must not change once parsing starts.
type Set struct {
	names map[string]struct{}
}

// New returns a set containing names.
func New(names ...string) *Set {
	s := &Set{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a class name. Internal names (java/awt/Frame) and file
// names (java/awt/Frame.class) are normalised to dotted form.
func (s *Set) Add(name string) {
	name = normalize(name)
	if name == "" {
		return
	}
	s.names[name] = struct{}{}
}

func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the class names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddList reads one class name per line. Blank lines and lines starting
// with '#' are ignored.
func (s *Set) AddList(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Add(line)
	}
	return scanner.Err()
}

func (s *Set) AddListFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open class list: %w", err)
	}
	defer f.Close()
	if err := s.AddList(f); err != nil {
		return fmt.Errorf("read class list %s: %w", filename, err)
	}
	return nil
}

// AddArchive adds every class found in a jar or zip archive. When patterns
// are given, only entries whose path matches one of them are considered,
// e.g. "java/awt/**". The class name is taken from the class file itself,
// not from the entry path. It returns the number of classes added.
func (s *Set) AddArchive(filename string, patterns []string) (int, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return 0, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	zr, err := zip.OpenReader(filename)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	added := 0
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() || !strings.HasSuffix(entry.Name, ".class") {
			continue
		}
		switch path.Base(entry.Name) {
		case "module-info.class", "package-info.class":
			continue
		}
		if !matchAny(patterns, entry.Name) {
			continue
		}

		name, err := readClassName(entry)
		if err != nil {
			return added, fmt.Errorf("%s in %s: %w", entry.Name, filename, err)
		}
		s.Add(name)
		added++
	}

	log.Infof("excluded %d classes from %s", added, filename)
	return added, nil
}

func readClassName(entry *zip.File) (string, error) {
	rc, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	h, err := classfile.ParseHeader(rc)
	if err != nil {
		return "", err
	}
	return h.SourceName(), nil
}

func matchAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".class")
	return classfile.InternalToSourceName(name)
}
