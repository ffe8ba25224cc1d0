package treebuf

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*storage[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*storage[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(s *storage[K, V]) int {
	return ids.idTable[s]
}

func (ids *nodeids[K, V]) alloc(s *storage[K, V]) int {
	if id := ids.find(s); id > 0 {
		return id
	}
	ids.idTable[s] = ids.max
	ids.max++
	return ids.max - 1
}

// Node2Dot outputs the structure of the subtree under a node in Graphviz
// DOT format (for debugging purposes). A storage shared by several parents
// is emitted once, with every referencing edge attached, which makes
// copy-on-write sharing directly visible in the rendered graph.
func Node2Dot[K, V any](n Node[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	dotNode(n.s, &ids, &nodelist, &edgelist)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotNode[K, V any](s *storage[K, V], ids *nodeids[K, V], nodelist, edgelist *string) {
	if s == nil || ids.find(s) > 0 {
		return
	}
	ID := ids.alloc(s)
	label := fmt.Sprintf("%d/%d @%d\\n×%d", s.count, s.total, s.capacity(), s.Refs())
	*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(s.isLeaf()))
	if s.kids == nil {
		return
	}
	for _, kid := range s.kids.Slots()[:s.count+1] {
		if kid.s == nil {
			continue
		}
		dotNode(kid.s, ids, nodelist, edgelist)
		*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(kid.s))
	}
}

func nodeDotStyles(leaf bool) string {
	if leaf {
		return "style=filled,fillcolor=lightgray,shape=box"
	}
	return "style=filled,fillcolor=lightblue,shape=ellipse"
}
