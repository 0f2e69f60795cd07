package iterm2img

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyZeroOptions(t *testing.T) {
	data := []byte("abcdefg")

	want, err := FromBytes(data).Build()
	require.NoError(t, err)
	got, err := FromBytes(data).Apply(Options{}).Build()
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestApplyOptions(t *testing.T) {
	off := false
	opts := Options{
		Name:                "xyz",
		Width:               Cells(100),
		Height:              Cells(200),
		PreserveAspectRatio: &off,
		Inline:              true,
	}

	got, err := Encode(nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "\x1b]1337;File=name=eHl6;size=0;width=100;height=200;preserveAspectRatio=0;inline=1:\x07", got)
}

func TestApplyKeepsEarlierSettings(t *testing.T) {
	got, err := FromBytes(nil).Width(Pixels(10)).Inline(true).Apply(Options{Height: Percent(20)}).Build()
	require.NoError(t, err)
	assert.Equal(t, "\x1b]1337;File=size=0;width=10px;height=20%;preserveAspectRatio=1;inline=1:\x07", got)
}

func TestApplyInvalidName(t *testing.T) {
	_, err := Encode([]byte("abc"), Options{Name: "\xfe"})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestOptionsYAML(t *testing.T) {
	doc := `
name: cat.png
width: 40
height: 50%
preserve_aspect_ratio: false
inline: true
do_not_move_cursor: true
terminator: st
tmux: true
chunk_size: 3
`
	var opts Options
	require.NoError(t, yaml.Unmarshal([]byte(doc), &opts))

	assert.Equal(t, "cat.png", opts.Name)
	assert.Equal(t, Cells(40), opts.Width)
	assert.Equal(t, Percent(50), opts.Height)
	require.NotNil(t, opts.PreserveAspectRatio)
	assert.False(t, *opts.PreserveAspectRatio)
	assert.True(t, opts.Inline)
	assert.True(t, opts.DoNotMoveCursor)
	assert.Equal(t, ST, opts.Terminator)
	assert.True(t, opts.Tmux)
	assert.Equal(t, 3, opts.ChunkSize)

	data := []byte("abcdefg")
	out, err := Encode(data, opts)
	require.NoError(t, err)

	f, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, &File{
		Name:                "cat.png",
		Size:                len(data),
		Width:               Cells(40),
		Height:              Percent(50),
		PreserveAspectRatio: false,
		Inline:              true,
		DoNotMoveCursor:     true,
		Data:                data,
	}, f)
}

func TestOptionsYAMLPreserveAspectRatioDefault(t *testing.T) {
	var opts Options
	require.NoError(t, yaml.Unmarshal([]byte("inline: true"), &opts))
	assert.Nil(t, opts.PreserveAspectRatio)

	out, err := Encode(nil, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "preserveAspectRatio=1")
}

func TestTerminatorText(t *testing.T) {
	tests := []struct {
		in      string
		want    Terminator
		wantErr bool
	}{
		{in: "", want: BEL},
		{in: "bel", want: BEL},
		{in: "BEL", want: BEL},
		{in: "st", want: ST},
		{in: " ST ", want: ST},
		{in: "esc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Terminator
			err := got.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTerminator)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			text, err := got.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, got.String(), string(text))
		})
	}
}
