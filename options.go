package iterm2img

import (
	"fmt"
	"strings"
)

// Terminator selects how each OSC sequence is closed
type Terminator int

const (
	// BEL closes the sequence with a single 0x07 byte
	BEL Terminator = iota
	// ST closes the sequence with the two byte string terminator ESC \
	ST
)

func (t Terminator) String() string {
	switch t {
	case ST:
		return "st"
	default:
		return "bel"
	}
}

func (t Terminator) sequence() string {
	if t == ST {
		return "\x1b\\"
	}
	return "\x07"
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Terminator) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "bel":
		*t = BEL
	case "st":
		*t = ST
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTerminator, text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (t Terminator) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Options is a declarative set of encoder settings, e.g. loaded from YAML.
// Zero-valued fields leave the encoder defaults in place.
type Options struct {
	Name   string    `yaml:"name,omitempty"`
	Width  Dimension `yaml:"width,omitempty"`
	Height Dimension `yaml:"height,omitempty"`
	// nil keeps the default of true
	PreserveAspectRatio *bool      `yaml:"preserve_aspect_ratio,omitempty"`
	Inline              bool       `yaml:"inline,omitempty"`
	DoNotMoveCursor     bool       `yaml:"do_not_move_cursor,omitempty"`
	Terminator          Terminator `yaml:"terminator,omitempty"`
	Tmux                bool       `yaml:"tmux,omitempty"`
	ChunkSize           int        `yaml:"chunk_size,omitempty"`
}

// Apply copies every non-zero field of opts onto the encoder
func (e *Encoder) Apply(opts Options) *Encoder {
	if opts.Name != "" {
		e.Name(opts.Name)
	}
	if !opts.Width.IsAuto() {
		e.Width(opts.Width)
	}
	if !opts.Height.IsAuto() {
		e.Height(opts.Height)
	}
	if opts.PreserveAspectRatio != nil {
		e.PreserveAspectRatio(*opts.PreserveAspectRatio)
	}
	if opts.Inline {
		e.Inline(true)
	}
	if opts.DoNotMoveCursor {
		e.DoNotMoveCursor(true)
	}
	if opts.Terminator != BEL {
		e.Terminator(opts.Terminator)
	}
	if opts.Tmux {
		e.Tmux(true)
	}
	if opts.ChunkSize > 0 {
		e.Multipart(opts.ChunkSize)
	}
	return e
}

// Encode builds an inline image sequence for data in one call
func Encode(data []byte, opts Options) (string, error) {
	return FromBytes(data).Apply(opts).Build()
}
