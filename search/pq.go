package search

import "container/heap"

// openItem is one cell in the open set.
type openItem struct {
	cell     int // grid index
	priority int
	seq      int // insertion rank, breaks priority ties
	pos      int // position in the heap, maintained by Swap
}

// openQueue is a min-heap of *openItem ordered by priority, then seq.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].pos = i
	q[j].pos = j
}

func (q *openQueue) Push(x interface{}) {
	item := x.(*openItem)
	item.pos = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	item.pos = -1

	return item
}

// openSet is the frontier of the best-first searches. Each cell is present at
// most once. set keeps a cell's insertion rank when its priority improves;
// requeue gives it a fresh one.
type openSet struct {
	q     openQueue
	items []*openItem // by grid index; nil when not open
	seq   int
}

func newOpenSet(size int) *openSet {
	return &openSet{
		q:     make(openQueue, 0, 64),
		items: make([]*openItem, size),
	}
}

func (o *openSet) Len() int { return o.q.Len() }

// contains reports whether cell is currently open.
func (o *openSet) contains(cell int) bool {
	return o.items[cell] != nil
}

// set inserts cell with priority p, or updates its priority if already open.
func (o *openSet) set(cell, p int) {
	if item := o.items[cell]; item != nil {
		item.priority = p
		heap.Fix(&o.q, item.pos)
		return
	}
	item := &openItem{cell: cell, priority: p, seq: o.seq}
	o.seq++
	o.items[cell] = item
	heap.Push(&o.q, item)
}

// rank returns the insertion rank of an open cell; ok is false otherwise.
func (o *openSet) rank(cell int) (seq int, ok bool) {
	if item := o.items[cell]; item != nil {
		return item.seq, true
	}
	return 0, false
}

// requeue sets the priority of cell to p and ranks it after every cell
// inserted or requeued so far.
func (o *openSet) requeue(cell, p int) {
	item := o.items[cell]
	if item == nil {
		o.set(cell, p)
		return
	}
	item.priority = p
	item.seq = o.seq
	o.seq++
	heap.Fix(&o.q, item.pos)
}

// pop removes and returns the open cell with the lowest priority.
func (o *openSet) pop() int {
	item := heap.Pop(&o.q).(*openItem)
	o.items[item.cell] = nil

	return item.cell
}
