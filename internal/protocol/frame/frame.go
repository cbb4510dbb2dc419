// Package frame lays out a data response the way DAP2 servers do: the
// declaration text, a "Data:" marker line, then the XDR body. Readers must
// already know the declaration's shape to decode the body.
package frame

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/dapvar/internal/dap"
	"github.com/danmuck/dapvar/internal/protocol"
)

const DataMarker = "Data:\n"

var (
	ErrMissingDataMarker = errors.New("frame: missing data marker")
	ErrPreambleTooLarge  = errors.New("frame: declaration preamble too large")
	ErrDeclMismatch      = errors.New("frame: declaration mismatch")
)

// DeclMismatchError reports the first line where a response preamble differs
// from the local declaration. Line is 1-based.
type DeclMismatchError struct {
	Line int
	Got  string
	Want string
}

func (e DeclMismatchError) Error() string {
	return fmt.Sprintf("frame: declaration mismatch at line %d: got %q want %q", e.Line, e.Got, e.Want)
}

func (e DeclMismatchError) Is(target error) bool {
	return target == ErrDeclMismatch
}

// Limits constrains preamble memory use.
type Limits struct {
	MaxPreambleBytes int
	Decoder          protocol.Limits
}

func DefaultLimits() Limits {
	return Limits{
		MaxPreambleBytes: 1024 * 1024,
		Decoder:          protocol.DefaultLimits(),
	}
}

// WriteResponse writes root's declaration, the data marker and root's
// serialized value. It returns the number of body bytes written.
func WriteResponse(w io.Writer, root dap.BaseType) (int64, error) {
	bw := bufio.NewWriter(w)
	if err := root.PrintDecl(bw, "", true, false); err != nil {
		return 0, err
	}
	if _, err := bw.WriteString(DataMarker); err != nil {
		return 0, err
	}
	enc := protocol.NewEncoder(bw)
	if err := root.Serialize(enc); err != nil {
		return enc.Written(), err
	}
	return enc.Written(), bw.Flush()
}

// ReadPreamble consumes r up to and including the data marker line and
// returns the declaration text before it.
func ReadPreamble(r *bufio.Reader, limits Limits) ([]byte, error) {
	var decl bytes.Buffer
	for {
		line, err := r.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			if decl.Len()+len(line) > limits.MaxPreambleBytes {
				return nil, ErrPreambleTooLarge
			}
			decl.Write(line)
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrMissingDataMarker
			}
			return nil, err
		}
		if isMarker(line) {
			return decl.Bytes(), nil
		}
		if decl.Len()+len(line) > limits.MaxPreambleBytes {
			return nil, ErrPreambleTooLarge
		}
		decl.Write(line)
	}
}

// ReadResponse skips the preamble and deserializes the body into root,
// which must already have the declared shape.
func ReadResponse(
	r io.Reader,
	root dap.BaseType,
	sv protocol.ServerVersion,
	probe protocol.CancelProbe,
	limits Limits,
) ([]byte, int64, error) {
	br := bufio.NewReader(r)
	decl, err := ReadPreamble(br, limits)
	if err != nil {
		return nil, 0, err
	}
	dec := protocol.NewDecoder(br, limits.Decoder)
	err = root.Deserialize(dec, sv, probe)
	return decl, dec.BytesRead(), err
}

func isMarker(line []byte) bool {
	line = bytes.TrimRight(line, "\r\n")
	return string(line) == "Data:"
}

// MatchDecl compares a preamble returned by ReadResponse with root's
// declaration line by line, ignoring surrounding whitespace and blank lines.
func MatchDecl(decl []byte, root dap.BaseType) error {
	got := declLines(string(decl))
	want := declLines(dap.Decl(root))
	for i := 0; i < max(len(got), len(want)); i++ {
		var g, w string
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g != w {
			return DeclMismatchError{Line: i + 1, Got: g, Want: w}
		}
	}
	return nil
}

func declLines(text string) []string {
	var out []string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
