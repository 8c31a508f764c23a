package cli

import (
	"slices"

	"github.com/codefionn/ttok/internal/tokenizer"
)

// Mode selects what ttok counts.
type Mode int

const (
	// ModeCount counts all of stdin
	ModeCount Mode = iota
	// ModeDiff reads a unified diff from stdin
	ModeDiff
	// ModeGit obtains the diff from git
	ModeGit
)

func (m Mode) String() string {
	switch m {
	case ModeDiff:
		return "diff"
	case ModeGit:
		return "git"
	default:
		return "count"
	}
}

// Action is what the invocation asks for besides counting.
type Action int

const (
	ActionRun Action = iota
	ActionHelp
	ActionList
)

// Configuration is the resolved, validated invocation. It is not modified
// after ParseArgs returns.
type Configuration struct {
	Action   Action
	Encoding string
	Mode     Mode
	GitArgs  []string // verbatim arguments after --git, ModeGit only
	Net      bool
	Files    bool
}

// scanState is the state of the argument automaton.
type scanState int

const (
	scanFlag       scanState = iota // expecting a flag
	expectEncoding                  // previous token was -e/--encoding
	expectModel                     // previous token was -m/--model
	scanDone                        // --git consumed the remaining tokens
)

// ParseArgs resolves args (program name excluded) into a Configuration.
//
// Flags are scanned left to right. Mode flags overwrite each other, so the
// last one wins, and --git takes every remaining token as a git argument
// without interpreting it. -h/--help and --list short-circuit before any
// validation.
func ParseArgs(args []string, defaultEncoding string) (*Configuration, error) {
	cfg := &Configuration{
		Action:   ActionRun,
		Encoding: defaultEncoding,
		Mode:     ModeCount,
	}

	state := scanFlag
	for i := 0; i < len(args) && state != scanDone; i++ {
		arg := args[i]

		switch state {
		case expectEncoding:
			cfg.Encoding = arg
			state = scanFlag
			continue
		case expectModel:
			encoding, err := tokenizer.EncodingForModel(arg)
			if err != nil {
				return nil, err
			}
			cfg.Encoding = encoding
			state = scanFlag
			continue
		}

		switch arg {
		case "-e", "--encoding":
			state = expectEncoding
		case "-m", "--model":
			state = expectModel
		case "-d", "--diff":
			cfg.Mode = ModeDiff
			cfg.GitArgs = nil
		case "--git":
			cfg.Mode = ModeGit
			cfg.GitArgs = slices.Clone(args[i+1:])
			state = scanDone
		case "--net":
			cfg.Net = true
		case "--files":
			cfg.Files = true
		case "-h", "--help":
			return &Configuration{Action: ActionHelp, Encoding: defaultEncoding}, nil
		case "--list":
			return &Configuration{Action: ActionList, Encoding: defaultEncoding}, nil
		default:
			return nil, argumentErrorf("unrecognized argument '%s'", arg)
		}
	}

	switch state {
	case expectEncoding:
		return nil, argumentErrorf("missing value for --encoding")
	case expectModel:
		return nil, argumentErrorf("missing value for --model")
	}

	if cfg.Mode == ModeCount {
		if cfg.Net {
			return nil, argumentErrorf("--net can only be used with --diff or --git")
		}
		if cfg.Files {
			return nil, argumentErrorf("--files can only be used with --diff or --git")
		}
	}

	return cfg, nil
}
