package treebuf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// dumpPalette holds the colors used for terminal dump output.
type dumpPalette struct {
	header *color.Color
	shared *color.Color
}

func makeDumpPalette() dumpPalette {
	return dumpPalette{
		header: color.New(color.FgBlue),
		shared: color.New(color.FgRed),
	}
}

// Dump writes an indented, per-level rendering of the subtree under a
// node (for debugging purposes). keyfmt formats keys for display; a nil
// keyfmt falls back to fmt's %v verb.
//
// When w is the process's stdout attached to a terminal, header counters
// are colorized — shared storages in red — and key lists are truncated to
// the terminal width.
func Dump[K, V any](n Node[K, V], w io.Writer, keyfmt func(K) string) {
	if keyfmt == nil {
		keyfmt = func(k K) string { return fmt.Sprintf("%v", k) }
	}
	linewidth := 80
	onTerminal := false
	if w == os.Stdout && term.IsTerminal(0) {
		onTerminal = true
		if tw, _, err := term.GetSize(0); err == nil && tw > 0 {
			linewidth = tw
		}
	}
	d := dumper[K, V]{
		w:          w,
		keyfmt:     keyfmt,
		linewidth:  linewidth,
		onTerminal: onTerminal,
		palette:    makeDumpPalette(),
	}
	if n.s == nil {
		fmt.Fprintln(w, "(void node)")
		return
	}
	d.dump(n.s, 0)
}

type dumper[K, V any] struct {
	w          io.Writer
	keyfmt     func(K) string
	linewidth  int
	onTerminal bool
	palette    dumpPalette
}

func (d *dumper[K, V]) dump(s *storage[K, V], depth int) {
	indent := strings.Repeat("  ", depth)
	kind := "node"
	if s.isLeaf() {
		kind = "leaf"
	}
	header := fmt.Sprintf("%s %d/%d @%d ×%d", kind, s.count, s.total, s.capacity(), s.Refs())
	if d.onTerminal {
		col := d.palette.header
		if !s.Unique() {
			col = d.palette.shared
		}
		header = col.Sprint(header)
	}
	line := indent + header + " " + d.keyList(s)
	if d.onTerminal && len(line) > d.linewidth {
		line = line[:d.linewidth-1] + "…"
	}
	fmt.Fprintln(d.w, line)
	if s.kids == nil {
		return
	}
	for _, kid := range s.kids.Slots()[:s.count+1] {
		if kid.s != nil {
			d.dump(kid.s, depth+1)
		}
	}
}

func (d *dumper[K, V]) keyList(s *storage[K, V]) string {
	var bf strings.Builder
	bf.WriteByte('[')
	for i, k := range s.keys.Slots()[:s.count] {
		if i > 0 {
			bf.WriteByte(' ')
		}
		bf.WriteString(d.keyfmt(k))
	}
	bf.WriteByte(']')
	return bf.String()
}
