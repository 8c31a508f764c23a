package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/encoding/unicode"

	"github.com/codefionn/ttok/internal/diffstat"
	"github.com/codefionn/ttok/internal/logger"
	"github.com/codefionn/ttok/internal/tokenizer"
	"github.com/codefionn/ttok/internal/vcs"
)

// Options wires the capabilities a CLI runs with.
type Options struct {
	Program string
	Loader  tokenizer.Loader
	Differ  vcs.DiffRunner
	Stdin   io.Reader
	Stdout  io.Writer
}

// CLI executes a resolved Configuration.
type CLI struct {
	program string
	loader  tokenizer.Loader
	differ  vcs.DiffRunner
	stdin   io.Reader
	stdout  io.Writer
	log     *logger.Logger
}

// New creates a CLI. Nil streams default to the process's stdin and stdout.
func New(opts Options) *CLI {
	c := &CLI{
		program: opts.Program,
		loader:  opts.Loader,
		differ:  opts.Differ,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		log:     logger.Global().WithPrefix("cli"),
	}
	if c.stdin == nil {
		c.stdin = os.Stdin
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	return c
}

// Run executes cfg. All fallible steps complete before anything is written,
// so an error never follows partial output.
func (c *CLI) Run(ctx context.Context, cfg *Configuration) error {
	switch cfg.Action {
	case ActionHelp:
		PrintUsage(c.stdout, c.program, cfg.Encoding)
		return nil
	case ActionList:
		PrintEncodings(c.stdout)
		return nil
	}

	c.log.Debug("mode=%s encoding=%s net=%v files=%v", cfg.Mode, cfg.Encoding, cfg.Net, cfg.Files)

	enc, err := c.loader.Load(cfg.Encoding)
	if err != nil {
		return err
	}

	text, err := c.input(ctx, cfg)
	if err != nil {
		return err
	}

	reports, err := c.count(enc, cfg, text)
	if err != nil {
		return err
	}
	return WriteReports(c.stdout, reports...)
}

func (c *CLI) input(ctx context.Context, cfg *Configuration) (string, error) {
	if cfg.Mode == ModeGit {
		out, err := c.differ.Diff(ctx, cfg.GitArgs)
		if err != nil {
			return "", err
		}
		return decodeLossy([]byte(out)), nil
	}

	if f, ok := c.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.log.Debug("stdin is a terminal, reading until EOF")
	}

	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", &IOError{Op: "read stdin", Err: err}
	}
	c.log.Debug("read %d bytes from stdin", len(data))
	return decodeLossy(data), nil
}

func (c *CLI) count(enc tokenizer.Encoder, cfg *Configuration, text string) ([]Report, error) {
	if cfg.Mode == ModeCount {
		return []Report{Single{Count: tokenizer.Count(enc, text)}}, nil
	}

	var reports []Report
	if cfg.Files {
		files, err := diffstat.ByFile(enc, text)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			reports = append(reports, FileLine{Path: f.Path, Report: tallyReport(f.Tally, cfg.Net)})
		}
	}

	tally := diffstat.Accumulate(enc, text)
	c.log.Debug("tally added=%d removed=%d", tally.Added, tally.Removed)
	return append(reports, tallyReport(tally, cfg.Net)), nil
}

func tallyReport(t diffstat.Tally, net bool) Report {
	if net {
		return Net{Delta: t.Net()}
	}
	return Pair{Added: t.Added, Removed: t.Removed}
}

// decodeLossy replaces invalid UTF-8 with U+FFFD.
func decodeLossy(data []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(decoded)
}
