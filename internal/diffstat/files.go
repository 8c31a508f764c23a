package diffstat

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/codefionn/ttok/internal/tokenizer"
)

const devNull = "/dev/null"

// FileTally is the tally of one file section of a multi-file diff.
type FileTally struct {
	Path string
	Tally
}

// ByFile splits diff text into file sections using
// github.com/sourcegraph/go-diff and tallies each section's hunk bodies with
// the same classification as Accumulate. Sections are returned in diff order.
func ByFile(enc tokenizer.Encoder, text string) ([]FileTally, error) {
	fileDiffs, err := diff.ParseMultiFileDiff([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	files := make([]FileTally, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		ft := FileTally{Path: displayPath(fd)}
		for _, hunk := range fd.Hunks {
			for line := range Lines(string(hunk.Body)) {
				ft.Observe(enc, Classify(line))
			}
		}
		files = append(files, ft)
	}
	return files, nil
}

// displayPath prefers the new name, falling back to the original name for
// deletions, and strips git's a/ and b/ prefixes.
func displayPath(fd *diff.FileDiff) string {
	name := fd.NewName
	if name == "" || name == devNull {
		name = fd.OrigName
	}
	for _, prefix := range []string{"a/", "b/"} {
		if trimmed, ok := strings.CutPrefix(name, prefix); ok {
			return trimmed
		}
	}
	return name
}
