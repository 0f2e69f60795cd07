package iterm2img

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// Encoder builds an iTerm2 inline image sequence with a fluent API
type Encoder struct {
	data []byte

	// Configuration
	name                string
	width               Dimension
	height              Dimension
	preserveAspectRatio bool
	inline              bool
	doNotMoveCursor     bool
	terminator          Terminator
	tmux                bool
	chunkSize           int

	logger log.Interface

	// first configuration error, reported by Build
	err error
}

// FromBytes creates a new Encoder over data.
// data is copied; the caller may reuse its buffer afterwards.
func FromBytes(data []byte) *Encoder {
	return &Encoder{
		data:                append([]byte(nil), data...),
		preserveAspectRatio: true,
		logger:              log.Log,
	}
}

// Name sets the file name hint shown by the terminal.
// Names that are not valid UTF-8 are rejected and reported by Build.
func (e *Encoder) Name(name string) *Encoder {
	if !utf8.ValidString(name) {
		e.setErr(fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidName, name))
		return e
	}
	e.name = name
	return e
}

// Width sets the display width
func (e *Encoder) Width(d Dimension) *Encoder {
	e.width = d
	return e
}

// Height sets the display height
func (e *Encoder) Height(d Dimension) *Encoder {
	e.height = d
	return e
}

// Size sets both width and height
func (e *Encoder) Size(w, h Dimension) *Encoder {
	e.width = w
	e.height = h
	return e
}

// PreserveAspectRatio tells the terminal whether to keep the image's aspect ratio (default true)
func (e *Encoder) PreserveAspectRatio(v bool) *Encoder {
	e.preserveAspectRatio = v
	return e
}

// Inline displays the image in the scrollback instead of downloading it (default false)
func (e *Encoder) Inline(v bool) *Encoder {
	e.inline = v
	return e
}

// DoNotMoveCursor leaves the cursor where it was after the image is drawn
func (e *Encoder) DoNotMoveCursor(v bool) *Encoder {
	e.doNotMoveCursor = v
	return e
}

// Terminator selects BEL (default) or ST to close each sequence
func (e *Encoder) Terminator(t Terminator) *Encoder {
	e.terminator = t
	return e
}

// Tmux wraps the output for tmux passthrough
func (e *Encoder) Tmux(v bool) *Encoder {
	e.tmux = v
	return e
}

// Multipart switches to the MultipartFile/FilePart/FileEnd form with chunks of
// roughly chunkSize raw bytes. Zero or less returns to a single File sequence.
func (e *Encoder) Multipart(chunkSize int) *Encoder {
	e.chunkSize = max(chunkSize, 0)
	return e
}

// Logger sets the logger used by WriteTo
func (e *Encoder) Logger(l log.Interface) *Encoder {
	if l == nil {
		l = log.Log
	}
	e.logger = l
	return e
}

// Err returns the first configuration error, if any
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) setErr(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Build generates the escape sequence string for the image.
// It can be called any number of times and always returns the same result
// for the same configuration.
func (e *Encoder) Build() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.chunkSize > 0 {
		return e.renderMultipart(), nil
	}
	return e.renderFile(), nil
}

// WriteTo writes the escape sequence to w verbatim
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	out, err := e.Build()
	if err != nil {
		return 0, err
	}

	n, err := io.WriteString(w, out)
	ctx := e.logger.WithFields(log.Fields{
		"size":      humanize.Bytes(uint64(len(e.data))),
		"bytes":     n,
		"multipart": e.chunkSize > 0,
		"parts":     e.parts(),
		"tmux":      e.tmux,
	})
	if err != nil {
		ctx.WithError(err).Error("failed to write inline image")
		return int64(n), fmt.Errorf("failed to write inline image: %w", err)
	}
	ctx.Debug("wrote inline image")

	return int64(n), nil
}

// Print outputs the image directly to stdout
func (e *Encoder) Print() error {
	_, err := e.WriteTo(os.Stdout)
	return err
}

// parts returns how many FilePart sequences a multipart build emits
func (e *Encoder) parts() int {
	if e.chunkSize <= 0 {
		return 0
	}
	return chunkCount(len(e.data), alignChunkSize(e.chunkSize))
}
