package watershed

// taskQueue is a min-heap of taskPoint ordered by level, then distance,
// then insertion order. It implements container/heap.Interface.
type taskQueue []taskPoint

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	a, b := &q[i], &q[j]
	if a.level != b.level {
		return a.level < b.level
	}
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return a.seq < b.seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be a taskPoint.
func (q *taskQueue) Push(x any) { *q = append(*q, x.(taskPoint)) }

// Pop is called by heap.Pop.
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
