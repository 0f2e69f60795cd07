package iterm2img

import "errors"

var (
	// ErrInvalidName is returned when a file name is not valid UTF-8
	ErrInvalidName = errors.New("invalid file name")
	// ErrInvalidDimension is returned when a width or height cannot be parsed
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidTerminator is returned for an unknown sequence terminator name
	ErrInvalidTerminator = errors.New("invalid terminator")
	// ErrMalformedSequence is returned by Parse when the input is not an inline image sequence
	ErrMalformedSequence = errors.New("malformed inline image sequence")
	// ErrSizeMismatch is returned by Parse when size= disagrees with the payload
	ErrSizeMismatch = errors.New("size does not match payload length")
	// ErrUnsupportedFormat is returned by FromImage for an unknown Format
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNilImage is returned by FromImage when given a nil image
	ErrNilImage = errors.New("image cannot be nil")
)
