package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/katalvlaran/genbound/boundtable"
)

// buildTags maps a word width to the GOARCH constraint guarding its
// generated file. The two lists partition every GOARCH by native word
// size; a new architecture must be added to exactly one of them.
var buildTags = map[uint]string{
	64: "amd64 || arm64 || arm64be || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm",
	32: "386 || arm || armbe || mips || mipsle || mips64p32 || mips64p32le || ppc || riscv || s390 || sparc",
}

// fileTemplate is the shape of one generated table file. Entries are
// emitted in hex so the 0b10...0 / 0b110...0 alternation stays visible
// (0x10/0x18, 0x20/0x30, ...).
const fileTemplate = `// Code generated by boundgen; DO NOT EDIT.
//
// Candidate upper-bound table for a {{.Width}}-bit word.
// Regenerate with: go generate ./boundtable

//go:build {{.BuildTags}}

package boundtable

import "math/bits"

// wordWidth is the bit width the table below was generated for.
const wordWidth = {{.Width}}

// The build fails on this assertion when the compilation target's word
// width differs from the generated table's; rerun go generate ./boundtable.
var _ [wordWidth]struct{} = [bits.UintSize]struct{}{}

// entries lists every candidate bound in strictly ascending order:
// 0, 1, then 1<<i and 0b11<<(i-1) for each bit position i in 1..{{.LastBit}},
// closed by the maximum {{.Width}}-bit value.
var entries = [...]uint{
{{- range .Entries}}
	{{printf "%#x" .}},
{{- end}}
}
`

var tableTmpl = template.Must(template.New("table").Parse(fileTemplate))

// fileName returns the generated file's base name for a word width.
func fileName(width uint) string {
	return fmt.Sprintf("zz_generated_table_%d.go", width)
}

// render produces the gofmt-formatted contents of the table file for the
// given word width. Identical width always yields identical bytes.
func render(width uint) ([]byte, error) {
	tags, ok := buildTags[width]
	if !ok {
		return nil, fmt.Errorf("boundgen: no build constraint for width %d", width)
	}

	entries, err := boundtable.Candidates(width)
	if err != nil {
		return nil, fmt.Errorf("boundgen: %w", err)
	}

	var buf bytes.Buffer
	err = tableTmpl.Execute(&buf, struct {
		Width     uint
		LastBit   uint
		BuildTags string
		Entries   []uint64
	}{
		Width:     width,
		LastBit:   width - 1,
		BuildTags: tags,
		Entries:   entries,
	})
	if err != nil {
		return nil, fmt.Errorf("boundgen: render width %d: %w", width, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("boundgen: format width %d: %w", width, err)
	}

	return src, nil
}

// writeAtomic writes src to dir/name via a temp file and rename, so a
// crashed run never leaves a half-written generated file behind.
func writeAtomic(dir, name string, src []byte) error {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("boundgen: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(src); err != nil {
		tmp.Close()

		return fmt.Errorf("boundgen: write %s: %w", name, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()

		return fmt.Errorf("boundgen: chmod %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("boundgen: close %s: %w", name, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("boundgen: rename %s: %w", name, err)
	}

	return nil
}

// checkCurrent reports whether dir/name already holds exactly src.
func checkCurrent(dir, name string, src []byte) (bool, error) {
	have, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("boundgen: read %s: %w", name, err)
	}

	return bytes.Equal(have, src), nil
}
