package frame

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/dapvar/internal/dap"
	"github.com/danmuck/dapvar/internal/protocol"
)

func newPoint(x, y int32) *dap.Structure {
	s := dap.NewStructure("point")
	s.AddVariable(dap.NewInt32("x", x), dap.PartNone)
	s.AddVariable(dap.NewInt32("y", y), dap.PartNone)
	return s
}

func TestWriteReadResponse(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteResponse(&buf, newPoint(3, 4))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != 8 {
		t.Fatalf("unexpected body size: %d", n)
	}
	wantPrefix := "Structure {\n    Int32 x;\n    Int32 y;\n} point;\nData:\n"
	if !strings.HasPrefix(buf.String(), wantPrefix) {
		t.Fatalf("unexpected layout: %q", buf.String())
	}

	out := newPoint(0, 0)
	decl, read, err := ReadResponse(bytes.NewReader(buf.Bytes()), out, protocol.DefaultServerVersion(), nil, DefaultLimits())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(decl) != dap.Decl(out) {
		t.Fatalf("unexpected declaration: %q", decl)
	}
	if read != 8 {
		t.Fatalf("unexpected bytes read: %d", read)
	}
	if got := dap.Val(out, false); got != "{ 3, 4 }" {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestReadPreambleMissingMarker(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("Structure {\n} s;\n"))
	_, err := ReadPreamble(r, DefaultLimits())
	if !errors.Is(err, ErrMissingDataMarker) {
		t.Fatalf("expected ErrMissingDataMarker, got %v", err)
	}
}

func TestReadPreambleAcceptsCRLF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("Structure {\r\n} s;\r\nData:\r\n\x00\x00\x00\x01"))
	decl, err := ReadPreamble(r, DefaultLimits())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(decl) != "Structure {\r\n} s;\r\n" {
		t.Fatalf("unexpected declaration: %q", decl)
	}
	if r.Buffered() != 4 {
		t.Fatalf("expected body to remain buffered, got %d bytes", r.Buffered())
	}
}

func TestReadPreambleLimit(t *testing.T) {
	body := strings.Repeat("Int32 x;\n", 100) + DataMarker
	limits := DefaultLimits()
	limits.MaxPreambleBytes = 64
	_, err := ReadPreamble(bufio.NewReader(strings.NewReader(body)), limits)
	if !errors.Is(err, ErrPreambleTooLarge) {
		t.Fatalf("expected ErrPreambleTooLarge, got %v", err)
	}
}

func TestReadResponseCancelled(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteResponse(&buf, newPoint(1, 2)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var flag protocol.CancelFlag
	flag.Cancel()
	_, read, err := ReadResponse(&buf, newPoint(0, 0), protocol.DefaultServerVersion(), &flag, DefaultLimits())
	if !errors.Is(err, dap.ErrUserCancelled) {
		t.Fatalf("expected ErrUserCancelled, got %v", err)
	}
	if read != 0 {
		t.Fatalf("expected no body bytes read, got %d", read)
	}
}

func TestMatchDecl(t *testing.T) {
	root := newPoint(1, 2)
	if err := MatchDecl([]byte("Structure {\r\n  Int32 x;\n\n  Int32 y;\n} point;\n"), root); err != nil {
		t.Fatalf("expected match, got %v", err)
	}

	err := MatchDecl([]byte("Structure {\n    Int32 x;\n    Float64 y;\n} point;\n"), root)
	if !errors.Is(err, ErrDeclMismatch) {
		t.Fatalf("expected ErrDeclMismatch, got %v", err)
	}
	var mismatch DeclMismatchError
	if !errors.As(err, &mismatch) || mismatch.Line != 3 || mismatch.Got != "Float64 y;" {
		t.Fatalf("unexpected mismatch: %+v", mismatch)
	}

	err = MatchDecl([]byte("Structure {\n    Int32 x;\n"), root)
	if !errors.As(err, &mismatch) || mismatch.Line != 3 || mismatch.Got != "" {
		t.Fatalf("expected short preamble mismatch, got %v", err)
	}
}
