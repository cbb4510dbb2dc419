package protocol

import "errors"

var (
	ErrUnexpectedEOF    = errors.New("protocol: unexpected end of input")
	ErrStringTooLarge   = errors.New("protocol: string too large")
	ErrInvalidVersion   = errors.New("protocol: invalid server version")
	ErrNilEncoderTarget = errors.New("protocol: nil writer")
	ErrNilDecoderSource = errors.New("protocol: nil reader")
)
