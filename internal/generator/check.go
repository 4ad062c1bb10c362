package generator

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/assetgen/assetgen/internal/assetmap"
	"github.com/assetgen/assetgen/internal/config"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
)

// CheckResult reports whether the output file matches what Generate would write.
type CheckResult struct {
	*Result
	// UpToDate is true when the file exists and is byte-identical.
	UpToDate bool
	// Missing is true when there is no output file yet.
	Missing bool
	// Diff is a line diff from the current file to the expected output,
	// empty when UpToDate.
	Diff string
}

// Check renders the asset map and compares it with the current output file
// without modifying it.
func Check(fsys afero.Fs, opts *config.Resolved) (*CheckResult, error) {
	res, err := Build(fsys, opts)
	if err != nil {
		return nil, err
	}

	current, err := afero.ReadFile(fsys, res.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &CheckResult{Result: res, Missing: true, Diff: LineDiff("", string(res.Output))}, nil
		}
		return nil, &assetmap.FilesystemError{Op: "read", Path: res.Path, Err: err}
	}

	if string(current) == string(res.Output) {
		return &CheckResult{Result: res, UpToDate: true}, nil
	}
	return &CheckResult{Result: res, Diff: LineDiff(string(current), string(res.Output))}, nil
}

// LineDiff returns a unified-style listing of the lines that differ between
// oldText and newText. Removed lines start with "-", added lines with "+"
// and unchanged lines with a space.
func LineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
