package lang

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Options carries language-level configuration for one compilation. The type
// context borrows a pointer to it for its whole lifetime and never mutates
// it.
type Options struct {
	// PointerBits is the target pointer width used for builtin word-sized
	// integer requests.
	PointerBits uint32 `toml:"pointer-bits"`

	// MaxDiagnostics bounds the diagnostic bag for the compilation.
	MaxDiagnostics int `toml:"max-diagnostics"`

	// NormalizeIdentifiers enables NFC normalization before identifiers are
	// interned, so visually equal spellings share one handle.
	NormalizeIdentifiers bool `toml:"normalize-identifiers"`
}

// ErrLangSectionMissing indicates that [lang] is missing in an options file.
var ErrLangSectionMissing = errors.New("missing [lang]")

// Default returns the options used when no config file is given.
func Default() *Options {
	return &Options{
		PointerBits:          64,
		MaxDiagnostics:       100,
		NormalizeIdentifiers: true,
	}
}

type optionsFile struct {
	Lang Options `toml:"lang"`
}

// Load parses the [lang] section of a keel.toml file.
func Load(path string) (*Options, error) {
	var cfg optionsFile
	cfg.Lang = *Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("lang") {
		return nil, fmt.Errorf("%s: %w", path, ErrLangSectionMissing)
	}
	if cfg.Lang.PointerBits != 32 && cfg.Lang.PointerBits != 64 {
		return nil, fmt.Errorf("%s: unsupported pointer-bits %d", path, cfg.Lang.PointerBits)
	}
	if cfg.Lang.MaxDiagnostics <= 0 {
		return nil, fmt.Errorf("%s: max-diagnostics must be positive", path)
	}
	return &cfg.Lang, nil
}
