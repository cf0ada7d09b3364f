// Package scanner walks a repository tree once and aggregates file
// statistics into a Result consumed by the report renderers.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ErrInvalidRoot means the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid scan root")

// NoExtension is the bucket key for file names without an extension.
const NoExtension = "no_extension"

// DefaultTopFiles is the capacity of the largest-files list.
const DefaultTopFiles = 10

// Options controls what a scan counts.
type Options struct {
	// IgnoreDirs and IgnoreFiles match entry names, not paths.
	IgnoreDirs  []string
	IgnoreFiles []string

	// Patterns are gitignore-syntax rules matched against root-relative
	// paths, in addition to the name sets above.
	Patterns []gitignore.Pattern

	// ReadGitignore adds the patterns of the root .gitignore, if any.
	ReadGitignore bool

	// TopFiles bounds the largest-files list. Zero means DefaultTopFiles.
	TopFiles int
}

// DefaultOptions returns the options the CLI uses without a config file.
func DefaultOptions() Options {
	return Options{
		IgnoreDirs:  DefaultIgnoreDirs,
		IgnoreFiles: DefaultIgnoreFiles,
		TopFiles:    DefaultTopFiles,
	}
}

type scan struct {
	fsys        billy.Filesystem
	root        string
	ignoreDirs  map[string]struct{}
	ignoreFiles map[string]struct{}
	matcher     gitignore.Matcher
	topFiles    int
	result      *Result
}

// Scan traverses the tree rooted at root within fsys and returns the
// populated Result. The traversal is depth-first with directory entries
// sorted by name, so re-running on an unchanged tree yields an identical
// Result. Entries that cannot be read are skipped.
func Scan(fsys billy.Filesystem, root string, opts Options) (*Result, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory", ErrInvalidRoot)
	}

	patterns := opts.Patterns
	if opts.ReadGitignore {
		patterns = append(slices.Clone(patterns), loadRootGitignore(fsys, root)...)
	}

	topFiles := opts.TopFiles
	if topFiles <= 0 {
		topFiles = DefaultTopFiles
	}

	s := &scan{
		fsys:        fsys,
		root:        root,
		ignoreDirs:  nameSet(opts.IgnoreDirs),
		ignoreFiles: nameSet(opts.IgnoreFiles),
		matcher:     newIgnoreMatcher(patterns),
		topFiles:    topFiles,
		result:      newResult(),
	}
	s.walkDir("")
	return s.result, nil
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// walkDir visits one directory given as a root-relative slash path
// ("" is the root itself). An unreadable directory is skipped whole and
// excluded from the directory count, so only listed directories count.
func (s *scan) walkDir(rel string) {
	full := s.root
	if rel != "" {
		full = s.fsys.Join(s.root, rel)
	}
	entries, err := s.fsys.ReadDir(full)
	if err != nil {
		return
	}
	if rel != "" {
		s.result.DirCount++
	}
	slices.SortFunc(entries, func(a, b os.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})

	for _, info := range entries {
		name := info.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		if info.IsDir() {
			if _, ignored := s.ignoreDirs[name]; ignored {
				continue
			}
			if matchIgnore(s.matcher, childRel, true) {
				continue
			}
			s.walkDir(childRel)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if _, ignored := s.ignoreFiles[name]; ignored {
			continue
		}
		if matchIgnore(s.matcher, childRel, false) {
			continue
		}
		s.countFile(childRel, name, info.Size())
	}
}

func (s *scan) countFile(rel, name string, size int64) {
	s.result.FileCount++
	s.result.TotalSize += size
	s.result.Extensions[extensionKey(name)]++
	if lexer := lexers.Match(name); lexer != nil {
		s.result.Languages[lexer.Config().Name]++
	}
	s.insertLargest(rel, size)
}

// extensionKey buckets a file name by its lower-cased extension without
// the dot. Names with no dot, a trailing dot, or only a leading dot
// (dotfiles like .profile) fall into the NoExtension bucket.
func extensionKey(name string) string {
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return NoExtension
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return NoExtension
	}
	return ext
}

// insertLargest keeps the bounded largest-files list sorted descending
// by size. Equal sizes rank in encounter order: a new file is placed
// after every entry of greater-or-equal size and cannot displace the
// current minimum unless strictly larger.
func (s *scan) insertLargest(rel string, size int64) {
	largest := s.result.Largest
	if len(largest) == s.topFiles && size <= largest[len(largest)-1].Size {
		return
	}
	i := 0
	for i < len(largest) && largest[i].Size >= size {
		i++
	}
	largest = slices.Insert(largest, i, FileSize{Path: rel, Size: size})
	if len(largest) > s.topFiles {
		largest = largest[:s.topFiles]
	}
	s.result.Largest = largest
}
