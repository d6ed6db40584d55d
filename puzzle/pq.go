package puzzle

// node is one entry in the search tree. Nodes are immutable after
// creation; parent pointers form a tree back to the root, which is all
// path reconstruction needs.
type node struct {
	state  State
	parent *node
	move   Move // meaningful only when parent != nil
	g, h   int
	seq    uint64
	index  int
}

func (n *node) f() int { return n.g + n.h }

// frontier is a min-heap ordered by f, ties broken by push sequence.
// The sequence number keeps exploration order fully deterministic.
type frontier []*node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	fi, fj := q[i].f(), q[j].f()
	if fi == fj {
		return q[i].seq < q[j].seq
	}
	return fi < fj
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	item.index = -1
	*q = old[:n-1]
	return item
}
