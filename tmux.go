package iterm2img

import "strings"

const (
	tmuxStart = "\x1bPtmux;"
	tmuxEnd   = "\x1b\\"
)

// wrapTmuxPassthrough wraps an escape sequence so tmux forwards it to the outer terminal.
// tmux passthrough format: \ePtmux;{sequence with every \e doubled}\e\\
func wrapTmuxPassthrough(seq string) string {
	if !strings.HasPrefix(seq, "\x1b") {
		return seq
	}
	return tmuxStart + strings.ReplaceAll(seq, "\x1b", "\x1b\x1b") + tmuxEnd
}

// cutTmuxPassthrough reads one passthrough body from s, which starts just
// after tmuxStart. It returns the unescaped sequence and the input that follows it.
func cutTmuxPassthrough(s string) (seq, rest string, ok bool) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", s, false
		}
		switch s[i+1] {
		case '\x1b':
			sb.WriteByte('\x1b')
			i++
		case '\\':
			return sb.String(), s[i+2:], true
		default:
			return "", s, false
		}
	}
	return "", s, false
}
