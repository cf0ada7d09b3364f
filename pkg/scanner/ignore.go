package scanner

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultIgnoreDirs are directory names that are never descended into
// and never counted.
var DefaultIgnoreDirs = []string{
	".git", ".github", "__pycache__", "node_modules",
	"venv", ".venv", ".idea", ".vscode",
}

// DefaultIgnoreFiles are file names excluded from every aggregate.
// The two report files are listed so that a scan of the repository that
// hosts them does not count its own output.
var DefaultIgnoreFiles = []string{
	".gitignore", ".DS_Store", "Thumbs.db", "report.log", "report.json",
}

// ParsePatterns compiles gitignore-syntax lines into patterns.
func ParsePatterns(lines []string) []gitignore.Pattern {
	patterns := make([]gitignore.Pattern, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

func parsePatternBytes(content []byte) []gitignore.Pattern {
	patterns := make([]gitignore.Pattern, 0)
	s := bufio.NewScanner(bytes.NewReader(content))
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

// loadRootGitignore reads the .gitignore at the scan root.
// A missing or unreadable file contributes no patterns.
func loadRootGitignore(fsys billy.Filesystem, root string) []gitignore.Pattern {
	content, err := util.ReadFile(fsys, fsys.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return parsePatternBytes(content)
}

func newIgnoreMatcher(patterns []gitignore.Pattern) gitignore.Matcher {
	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

// matchIgnore reports whether a root-relative slash path is ignored.
func matchIgnore(matcher gitignore.Matcher, rel string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.Match(strings.Split(rel, "/"), isDir)
}
