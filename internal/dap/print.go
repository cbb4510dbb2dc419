package dap

import (
	"io"
	"strings"
)

// printer keeps the first write error and turns later writes into no-ops.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) do(fn func() error) {
	if p.err != nil {
		return
	}
	p.err = fn()
}

// Decl returns the semicolon-terminated declaration of v.
func Decl(v BaseType) string {
	var sb strings.Builder
	_ = v.PrintDecl(&sb, "", true, false)
	return sb.String()
}

// Val returns the value text of v, optionally preceded by its declaration.
func Val(v BaseType, withDecl bool) string {
	var sb strings.Builder
	_ = v.PrintVal(&sb, "", withDecl)
	return sb.String()
}

func printSimpleDecl(w io.Writer, v BaseType, space string, printSemi bool) error {
	p := &printer{w: w}
	p.print(space, v.TypeName(), " ", v.Name())
	if printSemi {
		p.print(";\n")
	}
	return p.err
}

func printSimpleVal(w io.Writer, v BaseType, space string, printDecl bool, text string) error {
	p := &printer{w: w}
	if printDecl {
		p.do(func() error { return printSimpleDecl(w, v, space, false) })
		p.print(" = ", text, ";\n")
		return p.err
	}
	p.print(text)
	return p.err
}
