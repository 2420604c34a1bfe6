package graph

import "container/heap"

type NodeQueueIndex interface {
	SetIndex(index int)
	GetIndex() int
}

type NodeQueue[T any] interface {
	Poll() T         // pops the top of the heap
	Update(any) bool // restores heap order after a priority change
	Offer(T)
	Reset()
	Empty() bool
	Len() int
}

// priority queue
type nodeQueue[T any] struct {
	data []T
	less func(t1, t2 T) bool
}

func NewNodeQueue[T any](less func(t1, t2 T) bool) NodeQueue[T] {
	q := &nodeQueue[T]{less: less}
	heap.Init(q)
	return q
}

// Reset empties the queue and keeps its storage.
func (q *nodeQueue[T]) Reset() {
	for _, v := range q.data {
		if i, ok := any(v).(NodeQueueIndex); ok {
			i.SetIndex(-1)
		}
	}
	clear(q.data)
	q.data = q.data[:0]
}

func (q *nodeQueue[T]) Poll() T { return heap.Pop(q).(T) }

func (q *nodeQueue[T]) Update(value any) bool {
	if v, ok := value.(NodeQueueIndex); ok && v.GetIndex() >= 0 {
		heap.Fix(q, v.GetIndex())
		return true
	}
	return false
}

func (q *nodeQueue[T]) Offer(value T) { heap.Push(q, value) }

func (q *nodeQueue[T]) Push(x any) {
	q.data = append(q.data, x.(T))
	if v, ok := x.(NodeQueueIndex); ok {
		v.SetIndex(len(q.data) - 1)
	}
}

func (q *nodeQueue[T]) Pop() (res any) {
	n := len(q.data) - 1
	res = q.data[n]
	var zero T
	q.data[n] = zero
	q.data = q.data[:n]
	if v, ok := res.(NodeQueueIndex); ok {
		v.SetIndex(-1)
	}
	return res
}

func (q *nodeQueue[T]) Len() int {
	return len(q.data)
}

func (q *nodeQueue[T]) Empty() bool {
	return q.Len() == 0
}

func (q *nodeQueue[T]) Less(i, j int) bool { return q.less(q.data[i], q.data[j]) }

func (q *nodeQueue[T]) Swap(i, j int) {
	var vi any = q.data[i]
	var vj any = q.data[j]
	if v, ok := vi.(NodeQueueIndex); ok {
		v.SetIndex(j)
	}
	if v, ok := vj.(NodeQueueIndex); ok {
		v.SetIndex(i)
	}
	q.data[i], q.data[j] = q.data[j], q.data[i]
}
