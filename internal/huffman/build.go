package huffman

import (
	"cmp"
	"container/heap"
)

// Build builds a Huffman tree from the given leaves,
// returning the root of the tree.
//
// It repeatedly merges the two lightest trees
// until only one tree remains.
// Trees of equal weight are merged in the order they were added:
// first the leaves in the order provided, then merged trees
// in the order they were built.
// So the same leaves always produce the same tree.
//
// If there is only one leaf, it is returned as-is.
// Build panics with ErrEmptyAlphabet if leaves is empty.
func Build[S cmp.Ordered](leaves []*Node[S]) *Node[S] {
	// This uses the priority queue method outlined on Wikipedia [1].
	//
	// [1]: https://en.wikipedia.org/wiki/Huffman_coding#Basic_technique
	switch len(leaves) {
	case 0:
		panic(ErrEmptyAlphabet)
	case 1:
		return leaves[0]
	}

	q := make(nodeQueue[S], len(leaves))
	for i, leaf := range leaves {
		q[i] = queued[S]{Node: leaf, Seq: i}
	}
	heap.Init(&q)

	seq := len(leaves)
	for len(q) > 1 {
		left := heap.Pop(&q).(queued[S])
		right := heap.Pop(&q).(queued[S])
		heap.Push(&q, queued[S]{
			Node: merge(left.Node, right.Node),
			Seq:  seq,
		})
		seq++
	}

	return q[0].Node
}

type queued[S cmp.Ordered] struct {
	Node *Node[S]

	// Order in which the node entered the queue.
	// Breaks ties between nodes of equal weight.
	Seq int
}

type nodeQueue[S cmp.Ordered] []queued[S]

var _ heap.Interface = (*nodeQueue[rune])(nil)

func (q nodeQueue[S]) Len() int { return len(q) }

func (q nodeQueue[S]) Less(i, j int) bool {
	if wi, wj := q[i].Node.weight, q[j].Node.weight; wi != wj {
		return wi < wj
	}
	return q[i].Seq < q[j].Seq
}

func (q nodeQueue[S]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *nodeQueue[S]) Push(e any) {
	*q = append(*q, e.(queued[S]))
}

func (q *nodeQueue[S]) Pop() any {
	n := len(*q) - 1
	v := (*q)[n]
	*q = (*q)[:n]
	return v
}
