package scanner

// FileSize is one entry of the largest-files list.
type FileSize struct {
	Path string `json:"path"`
	Size int64  `json:"size_bytes"`
}

// Result holds the aggregates of one completed scan. It is built once per
// invocation and handed to the renderers as a value; nothing mutates it
// after Scan returns.
type Result struct {
	FileCount  int            `json:"file_count"`
	DirCount   int            `json:"directory_count"`
	TotalSize  int64          `json:"total_size_bytes"`
	Extensions map[string]int `json:"files_by_extension"`
	Languages  map[string]int `json:"languages"`
	Largest    []FileSize     `json:"largest_files"`
}

func newResult() *Result {
	return &Result{
		Extensions: make(map[string]int),
		Languages:  make(map[string]int),
		Largest:    make([]FileSize, 0),
	}
}
