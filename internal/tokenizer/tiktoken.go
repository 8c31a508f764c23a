package tokenizer

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"

	"github.com/codefionn/ttok/internal/logger"
)

var offlineOnce sync.Once

// TiktokenLoader loads encodings through tiktoken-go. By default the BPE
// tables are fetched from the public OpenAI blob store and cached under
// TIKTOKEN_CACHE_DIR; Offline switches to the tables embedded in
// tiktoken-go-loader.
type TiktokenLoader struct {
	Offline bool

	log *logger.Logger
}

// NewTiktokenLoader creates a loader.
func NewTiktokenLoader(offline bool) *TiktokenLoader {
	return &TiktokenLoader{
		Offline: offline,
		log:     logger.Global().WithPrefix("tokenizer"),
	}
}

// Load resolves name (aliases included) and returns its encoder.
func (l *TiktokenLoader) Load(name string) (Encoder, error) {
	canonical, err := Canonical(name)
	if err != nil {
		return nil, err
	}

	if l.Offline {
		offlineOnce.Do(func() {
			tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
		})
	}

	l.logger().Debug("loading encoding %s (requested %s, offline=%v)", canonical, name, l.Offline)

	enc, err := tiktoken.GetEncoding(canonical)
	if err != nil {
		return nil, &EncodingError{Name: name, Err: err}
	}
	return tiktokenEncoder{enc: enc}, nil
}

func (l *TiktokenLoader) logger() *logger.Logger {
	if l.log == nil {
		return logger.Global()
	}
	return l.log
}

// tiktokenEncoder encodes special tokens such as "<|endoftext|>" as single
// tokens.
type tiktokenEncoder struct {
	enc *tiktoken.Tiktoken
}

func (e tiktokenEncoder) Encode(text string) []int {
	return e.enc.Encode(text, []string{"all"}, nil)
}
