package iterm2img

import (
	"strconv"
	"strings"
)

const (
	// OSC is the operating system command introducer
	OSC = "\x1b]"

	fileTag          = "1337;File="
	multipartFileTag = "1337;MultipartFile="
	filePartTag      = "1337;FilePart="
	fileEndTag       = "1337;FileEnd"
)

// params builds the attribute list in canonical order:
// name, size, width, height, preserveAspectRatio, inline, doNotMoveCursor
func (e *Encoder) params() string {
	params := make([]string, 0, 7)

	// Filenames are base64 encoded per the protocol
	if e.name != "" {
		params = append(params, "name="+Base64Encode([]byte(e.name)))
	}

	params = append(params, "size="+strconv.Itoa(len(e.data)))

	if !e.width.IsAuto() {
		params = append(params, "width="+e.width.String())
	}
	if !e.height.IsAuto() {
		params = append(params, "height="+e.height.String())
	}

	params = append(params, "preserveAspectRatio="+flag(e.preserveAspectRatio))
	params = append(params, "inline="+flag(e.inline))

	if e.doNotMoveCursor {
		params = append(params, "doNotMoveCursor=1")
	}

	return strings.Join(params, ";")
}

// Format: \033]1337;File=[parameters]:[base64 data]\007
func (e *Encoder) renderFile() string {
	payload := Base64Encode(e.data)
	params := e.params()
	end := e.terminator.sequence()

	var sb strings.Builder
	sb.Grow(len(OSC) + len(fileTag) + len(params) + 1 + len(payload) + len(end))
	sb.WriteString(OSC)
	sb.WriteString(fileTag)
	sb.WriteString(params)
	sb.WriteByte(':')
	sb.WriteString(payload)
	sb.WriteString(end)

	return e.wrap(sb.String())
}

// renderMultipart emits MultipartFile, one FilePart per chunk, then FileEnd.
// Each sequence is wrapped for tmux on its own.
func (e *Encoder) renderMultipart() string {
	end := e.terminator.sequence()

	var sb strings.Builder
	sb.WriteString(e.wrap(OSC + multipartFileTag + e.params() + end))
	for _, chunk := range ParallelBase64Encode(e.data, e.chunkSize) {
		sb.WriteString(e.wrap(OSC + filePartTag + chunk + end))
	}
	sb.WriteString(e.wrap(OSC + fileEndTag + end))

	return sb.String()
}

func (e *Encoder) wrap(seq string) string {
	if e.tmux {
		return wrapTmuxPassthrough(seq)
	}
	return seq
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
