// Package report renders a completed scan result into the two output
// formats: a fixed-section text report and a structured JSON record.
package report

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/datatug/repostat/pkg/fsutils"
	"github.com/datatug/repostat/pkg/scanner"
)

const lineWidth = 60

type bucket struct {
	name  string
	count int
}

// sortedBuckets orders a count map by descending count, then by name.
func sortedBuckets(counts map[string]int) []bucket {
	buckets := make([]bucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, bucket{name: name, count: count})
	}
	slices.SortFunc(buckets, func(a, b bucket) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return strings.Compare(a.name, b.name)
	})
	return buckets
}

// Text renders the plain text report. topFiles is the configured
// capacity of the largest-files list and keeps the section header stable
// when the tree holds fewer files; zero means scanner.DefaultTopFiles.
// The output depends only on the arguments, so two scans of an unchanged
// tree render identical text.
func Text(r *scanner.Result, topFiles int) string {
	if topFiles <= 0 {
		topFiles = scanner.DefaultTopFiles
	}
	p := message.NewPrinter(language.English)
	double := strings.Repeat("=", lineWidth)
	single := strings.Repeat("-", lineWidth)

	var b strings.Builder
	b.WriteString(double + "\n")
	b.WriteString("REPOSITORY STATISTICS REPORT\n")
	b.WriteString(double + "\n\n")

	b.WriteString("Total files:       " + p.Sprintf("%d", r.FileCount) + "\n")
	b.WriteString("Total directories: " + p.Sprintf("%d", r.DirCount) + "\n")
	b.WriteString("Total size:        " + fsutils.SizeText(r.TotalSize) + "\n")
	b.WriteString("Average file size: " + fsutils.AverageSizeText(r.TotalSize, r.FileCount) + "\n")

	b.WriteString("\n" + single + "\n")
	b.WriteString("FILES BY EXTENSION:\n")
	b.WriteString(single + "\n")
	for _, e := range sortedBuckets(r.Extensions) {
		name := e.name
		if name == scanner.NoExtension {
			name = "(no extension)"
		}
		var percent float64
		if r.FileCount > 0 {
			percent = float64(e.count) / float64(r.FileCount) * 100
		}
		count := p.Sprintf("%d", e.count)
		b.WriteString(fmt.Sprintf("%-24s %8s files (%.1f%%)\n", name, count, percent))
	}

	b.WriteString("\n" + single + "\n")
	b.WriteString("LANGUAGES:\n")
	b.WriteString(single + "\n")
	for _, l := range sortedBuckets(r.Languages) {
		count := p.Sprintf("%d", l.count)
		b.WriteString(fmt.Sprintf("%-24s %8s files\n", l.name, count))
	}

	b.WriteString("\n" + single + "\n")
	b.WriteString(fmt.Sprintf("TOP %d LARGEST FILES:\n", topFiles))
	b.WriteString(single + "\n")
	for i, f := range r.Largest {
		b.WriteString(fmt.Sprintf("%2d. %-44s %10s\n", i+1, f.Path, fsutils.SizeText(f.Size)))
	}

	b.WriteString("\n" + double + "\n")
	b.WriteString("END OF REPORT\n")
	b.WriteString(double + "\n")
	return b.String()
}
