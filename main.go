package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/datatug/repostat/pkg/config"
	"github.com/datatug/repostat/pkg/fsutils"
	"github.com/datatug/repostat/pkg/report"
	"github.com/datatug/repostat/pkg/scanner"
)

var (
	rootPath   = flag.String("path", ".", "scan the tree rooted at `dir`")
	reportPath = flag.String("output", "report.log", "write the text report to `file`")
	jsonMode   = flag.Bool("json", false, "also write the structured JSON record")
	jsonPath   = flag.String("json-output", "report.json", "write the JSON record to `file`")
	configPath = flag.String("config", "", "read scan settings from YAML `file`")
)

var osExit = os.Exit
var osWriteFile = os.WriteFile
var scanTree = scanner.Scan

func main() {
	flag.Parse()
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(fsutils.ExpandHome(*configPath))
		if err != nil {
			return err
		}
		if err = loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	root := fsutils.ExpandHome(*rootPath)
	isDir, err := fsutils.DirExists(root)
	if err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s", scanner.ErrInvalidRoot, root)
	}

	result, err := scanTree(osfs.New(root), ".", cfg.Options())
	if err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}

	if err = osWriteFile(*reportPath, []byte(report.Text(result, cfg.Scan.TopFiles)), 0644); err != nil {
		return fmt.Errorf("write text report %s: %w", *reportPath, err)
	}

	if *jsonMode {
		record, jsonErr := report.JSON(result)
		if jsonErr != nil {
			return fmt.Errorf("encode JSON record: %w", jsonErr)
		}
		if err = osWriteFile(*jsonPath, record, 0644); err != nil {
			return fmt.Errorf("write JSON record %s: %w", *jsonPath, err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "report saved to %s: %d files, %d dirs, %s\n",
		*reportPath, result.FileCount, result.DirCount, fsutils.SizeText(result.TotalSize))
	return nil
}
