package view

// ring is a fixed-capacity FIFO that overwrites its oldest entry when full.
// It is not safe for concurrent use.
type ring[T any] struct {
	items []T
	next  int
	full  bool
}

func newRing[T any](capacity int) *ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) push(v T) {
	r.items[r.next] = v
	r.next = (r.next + 1) % len(r.items)
	if r.next == 0 {
		r.full = true
	}
}

func (r *ring[T]) size() int {
	if r.full {
		return len(r.items)
	}
	return r.next
}

// tail returns up to n of the newest entries, oldest first.
func (r *ring[T]) tail(n int) []T {
	if have := r.size(); n > have {
		n = have
	}
	if n <= 0 {
		return nil
	}

	out := make([]T, n)
	c := len(r.items)
	for i := range out {
		out[i] = r.items[(r.next-n+i+c)%c]
	}
	return out
}
