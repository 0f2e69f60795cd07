package iterm2img

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// File is a decoded inline image sequence
type File struct {
	Name                string
	Size                int
	Width               Dimension
	Height              Dimension
	PreserveAspectRatio bool
	Inline              bool
	DoNotMoveCursor     bool
	Data                []byte
}

// Parse decodes the output of Build back into its attributes and payload.
// It accepts either terminator, tmux passthrough wrapping and the multipart form.
func Parse(seq string) (*File, error) {
	bodies, err := splitSequences(strings.TrimRight(seq, "\r\n"))
	if err != nil {
		return nil, err
	}
	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedSequence)
	}

	var attrs string
	var payload []string

	switch first := bodies[0]; {
	case strings.HasPrefix(first, fileTag):
		if len(bodies) != 1 {
			return nil, fmt.Errorf("%w: trailing sequences after File", ErrMalformedSequence)
		}
		var ok bool
		var data string
		attrs, data, ok = strings.Cut(strings.TrimPrefix(first, fileTag), ":")
		if !ok {
			return nil, fmt.Errorf("%w: missing ':' before payload", ErrMalformedSequence)
		}
		payload = []string{data}
	case strings.HasPrefix(first, multipartFileTag):
		attrs = strings.TrimPrefix(first, multipartFileTag)
		if bodies[len(bodies)-1] != fileEndTag {
			return nil, fmt.Errorf("%w: missing FileEnd", ErrMalformedSequence)
		}
		for _, body := range bodies[1 : len(bodies)-1] {
			part, ok := strings.CutPrefix(body, filePartTag)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected sequence %q", ErrMalformedSequence, body)
			}
			payload = append(payload, part)
		}
	default:
		return nil, fmt.Errorf("%w: not an inline image", ErrMalformedSequence)
	}

	f := &File{PreserveAspectRatio: true}
	size, err := f.parseAttributes(attrs)
	if err != nil {
		return nil, err
	}

	f.Data, err = base64.StdEncoding.DecodeString(strings.Join(payload, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrMalformedSequence, err)
	}
	if size >= 0 && size != len(f.Data) {
		return nil, fmt.Errorf("%w: size=%d, payload is %d bytes", ErrSizeMismatch, size, len(f.Data))
	}
	f.Size = len(f.Data)

	return f, nil
}

// parseAttributes fills f from a key=value;... list and returns the size
// attribute, or -1 if there was none. Unknown keys are ignored.
func (f *File) parseAttributes(attrs string) (int, error) {
	size := -1
	for kv := range strings.SplitSeq(attrs, ";") {
		if kv == "" {
			continue
		}
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return 0, fmt.Errorf("%w: attribute %q has no value", ErrMalformedSequence, kv)
		}

		var err error
		switch key {
		case "name":
			var name []byte
			name, err = base64.StdEncoding.DecodeString(value)
			if err != nil {
				return 0, fmt.Errorf("%w: name: %w", ErrMalformedSequence, err)
			}
			f.Name = string(name)
		case "size":
			size, err = strconv.Atoi(value)
			if err != nil || size < 0 {
				return 0, fmt.Errorf("%w: size %q", ErrMalformedSequence, value)
			}
		case "width":
			f.Width, err = ParseDimension(value)
		case "height":
			f.Height, err = ParseDimension(value)
		case "preserveAspectRatio":
			f.PreserveAspectRatio = value != "0"
		case "inline":
			f.Inline = value == "1"
		case "doNotMoveCursor":
			f.DoNotMoveCursor = value == "1"
		}
		if err != nil {
			return 0, err
		}
	}
	return size, nil
}

// splitSequences returns the body of every OSC sequence in s, without the
// introducer or terminator, unwrapping tmux passthrough along the way.
func splitSequences(s string) ([]string, error) {
	var bodies []string
	for len(s) > 0 {
		if rest, ok := strings.CutPrefix(s, tmuxStart); ok {
			inner, after, ok := cutTmuxPassthrough(rest)
			if !ok {
				return nil, fmt.Errorf("%w: unterminated tmux passthrough", ErrMalformedSequence)
			}
			nested, err := splitSequences(inner)
			if err != nil {
				return nil, err
			}
			bodies = append(bodies, nested...)
			s = after
			continue
		}

		rest, ok := strings.CutPrefix(s, OSC)
		if !ok {
			return nil, fmt.Errorf("%w: expected OSC introducer", ErrMalformedSequence)
		}

		i := strings.IndexAny(rest, "\x07\x1b")
		switch {
		case i < 0:
			return nil, fmt.Errorf("%w: unterminated sequence", ErrMalformedSequence)
		case rest[i] == '\x07':
			s = rest[i+1:]
		case strings.HasPrefix(rest[i:], "\x1b\\"):
			s = rest[i+2:]
		default:
			return nil, fmt.Errorf("%w: stray ESC inside sequence", ErrMalformedSequence)
		}
		bodies = append(bodies, rest[:i])
	}
	return bodies, nil
}
