package scanner

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
)

func TestParsePatterns(t *testing.T) {
	patterns := ParsePatterns([]string{"# comment", "", "  ", "*.log", "build/"})
	assert.Len(t, patterns, 2)

	matcher := newIgnoreMatcher(patterns)
	assert.True(t, matchIgnore(matcher, "app.log", false))
	assert.True(t, matchIgnore(matcher, "sub/app.log", false))
	assert.True(t, matchIgnore(matcher, "build", true))
	assert.False(t, matchIgnore(matcher, "main.go", false))
}

func TestParsePatternBytes(t *testing.T) {
	content := []byte("# comment\n*.log\r\n\n.DS_Store\n")
	patterns := parsePatternBytes(content)
	assert.Len(t, patterns, 2)

	matcher := newIgnoreMatcher(patterns)
	assert.True(t, matchIgnore(matcher, "app.log", false))
	assert.True(t, matchIgnore(matcher, ".DS_Store", false))
}

func TestMatchIgnore_NilMatcher(t *testing.T) {
	assert.False(t, matchIgnore(nil, "anything", false))
	assert.Nil(t, newIgnoreMatcher(nil))
}

func TestLoadRootGitignore(t *testing.T) {
	fsys := memfs.New()
	assert.NoError(t, fsys.MkdirAll("repo", 0755))

	assert.Nil(t, loadRootGitignore(fsys, "repo"))

	err := util.WriteFile(fsys, "repo/.gitignore", []byte("*.tmp\n# note\n\ndist/\n"), 0644)
	assert.NoError(t, err)
	patterns := loadRootGitignore(fsys, "repo")
	assert.Len(t, patterns, 2)
}

func TestScan_ReadGitignore(t *testing.T) {
	fsys := memfs.New()
	assert.NoError(t, fsys.MkdirAll("repo", 0755))
	assert.NoError(t, util.WriteFile(fsys, "repo/.gitignore", []byte("*.tmp\ndist/\n"), 0644))
	assert.NoError(t, util.WriteFile(fsys, "repo/scratch.tmp", []byte("xxxx"), 0644))
	assert.NoError(t, util.WriteFile(fsys, "repo/dist/out.js", []byte("xx"), 0644))
	assert.NoError(t, util.WriteFile(fsys, "repo/main.go", []byte("x"), 0644))

	opts := DefaultOptions()
	opts.ReadGitignore = true
	result, err := Scan(fsys, "repo", opts)
	assert.NoError(t, err)

	assert.Equal(t, 1, result.FileCount)
	assert.Equal(t, int64(1), result.TotalSize)
	assert.Equal(t, 0, result.DirCount)

	// Without ReadGitignore the same tree counts everything but the
	// .gitignore file itself.
	result, err = Scan(fsys, "repo", DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, 3, result.FileCount)
	assert.Equal(t, 1, result.DirCount)
}
