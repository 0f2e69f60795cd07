/*
Package iterm2img builds iTerm2 Inline Images Protocol escape sequences.

Image bytes are treated as an opaque payload: they are never decoded or
validated, only base64 encoded and framed in an OSC 1337 sequence that
iTerm2, WezTerm, mintty, VS Code and other compatible terminals render.

Main features:

  - Fluent builder for every File= attribute (name, size, width, height,
    preserveAspectRatio, inline, doNotMoveCursor)
  - Width and height in cells, pixels, percent or auto
  - BEL or ST terminators
  - Tmux passthrough wrapping
  - Multipart transfers (MultipartFile/FilePart/FileEnd) for large payloads
  - Parse to decode a sequence back into its attributes

Basic Usage:

	out, err := iterm2img.FromBytes(data).
	    Name("cat.png").
	    Width(iterm2img.Cells(40)).
	    Inline(true).
	    Build()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Print(out)

The output for

	iterm2img.FromBytes([]byte{0x89, 0x50, 0x4E, 0x47}).Width(iterm2img.Cells(5)).Inline(true).Build()

is

	"\x1b]1337;File=size=4;width=5;preserveAspectRatio=1;inline=1:iVBORw==\x07"

Configuration presets:

	var opts iterm2img.Options
	if err := yaml.Unmarshal(cfg, &opts); err != nil {
	    log.Fatal(err)
	}
	out, err := iterm2img.Encode(data, opts)

Large images:

	// ~256KB FilePart sequences, wrapped for tmux
	err := iterm2img.FromBytes(data).
	    Inline(true).
	    Multipart(iterm2img.DefaultChunkSize).
	    Tmux(true).
	    Print()

The package does not detect terminal support or read files; callers decide
where the bytes come from and where the sequence is written.
*/
package iterm2img
