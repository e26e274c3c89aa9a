package scanner

import (
	"os"
	"path/filepath"
	"sort"
)

type FileInfo struct {
	Path string
	Size int64
}

// Scanner collects source files under a root directory by extension,
// skipping paths matched by ignore globs.
type Scanner struct {
	rootDir     string
	extensions  []string
	ignoreGlobs []string
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Ignore adds glob patterns (matched against the path relative to the
// scan root and against the base name) to skip while scanning.
func (s *Scanner) Ignore(globs ...string) {
	s.ignoreGlobs = append(s.ignoreGlobs, globs...)
}

// Scan walks the root and returns matching files sorted by path, so
// batch runs process files in a reproducible order.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if s.ignored(path) && path != s.rootDir {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isTargetFile(path) && !s.ignored(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}

func (s *Scanner) ignored(path string) bool {
	rel, err := filepath.Rel(s.rootDir, path)
	if err != nil {
		rel = path
	}
	for _, glob := range s.ignoreGlobs {
		if ok, _ := filepath.Match(glob, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(glob, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}
