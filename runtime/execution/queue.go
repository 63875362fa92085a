package execution

// ReadyQueue is an insertion-ordered set of pids: FIFO iteration with
// constant-time membership.
type ReadyQueue struct {
	order   []int
	members map[int]bool
}

// NewReadyQueue creates an empty queue
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{members: make(map[int]bool)}
}

// Push appends pid at the tail; it returns false when pid is already queued.
func (q *ReadyQueue) Push(pid int) bool {
	if q.members[pid] {
		return false
	}
	q.members[pid] = true
	q.order = append(q.order, pid)
	return true
}

// Remove takes pid out of the queue preserving the order of the others.
func (q *ReadyQueue) Remove(pid int) bool {
	if !q.members[pid] {
		return false
	}
	delete(q.members, pid)
	for i, candidate := range q.order {
		if candidate == pid {
			q.order = append(q.order[:i:i], q.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains returns true if pid is queued
func (q *ReadyQueue) Contains(pid int) bool {
	return q.members[pid]
}

// Len returns queue size
func (q *ReadyQueue) Len() int {
	return len(q.order)
}

// PIDs returns a copy of the queued pids, head first
func (q *ReadyQueue) PIDs() []int {
	return append([]int(nil), q.order...)
}
