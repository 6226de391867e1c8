package core

// ProcessQueue is a FIFO ready queue. It is owned by one simulation run and
// is not safe for concurrent use.
type ProcessQueue[T any] struct {
	queue []T
	head  int
}

func NewProcessQueue[T any]() *ProcessQueue[T] {
	return &ProcessQueue[T]{queue: make([]T, 0)}
}

func (p *ProcessQueue[T]) AddToEnd(item T) {
	p.queue = append(p.queue, item)
}

func (p *ProcessQueue[T]) RemoveFromTop() (T, bool) {
	var zero T
	if p.Len() == 0 {
		return zero, false
	}
	item := p.queue[p.head]
	p.queue[p.head] = zero
	p.head++
	// reclaim the consumed prefix once it dominates the backing array
	if p.head > len(p.queue)/2 {
		p.queue = append(p.queue[:0], p.queue[p.head:]...)
		p.head = 0
	}
	return item, true
}

func (p *ProcessQueue[T]) Len() int {
	return len(p.queue) - p.head
}
