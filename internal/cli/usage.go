package cli

import (
	"fmt"
	"io"

	"github.com/codefionn/ttok/internal/tokenizer"
)

// PrintUsage writes the help text.
func PrintUsage(w io.Writer, program, defaultEncoding string) {
	fmt.Fprintf(w, "%s - fast token counter for text and diffs\n\n", program)
	fmt.Fprintf(w, "Usage: %s [OPTIONS] < input\n", program)
	fmt.Fprintf(w, "       %s [OPTIONS] --git [GIT DIFF ARGS...]\n\n", program)
	fmt.Fprintln(w, "Options:")

	options := []struct {
		flag string
		desc string
	}{
		{"-e, --encoding <name>", fmt.Sprintf("Select tokenizer (default: %s)", defaultEncoding)},
		{"-m, --model <name>", "Select the tokenizer used by a model, e.g. gpt-4o"},
		{"-d, --diff", "Parse a unified diff from stdin and print added/removed token totals"},
		{"--git [args...]", "Run git diff with the remaining arguments and count its changes"},
		{"--net", "With --diff or --git, print added minus removed"},
		{"--files", "With --diff or --git, print one line per file before the total"},
		{"--list", "Show supported tokenizer names"},
		{"-h, --help", "Show this message"},
	}
	for _, opt := range options {
		fmt.Fprintf(w, "  %-22s %s\n", opt.flag, opt.desc)
	}
}

// PrintEncodings writes the supported encoding names.
func PrintEncodings(w io.Writer) {
	fmt.Fprintln(w, "Supported encodings:")
	for _, name := range tokenizer.Supported() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
