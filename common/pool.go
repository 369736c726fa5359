package common

// Pool keeps a fixed set of pre-allocated objects. Active objects occupy
// Items[:Active]; releasing swaps the released object with the last active
// one, so iteration order is not stable across releases.
type Pool[T any] struct {
	Items   []*T
	Active  int
	MaxSize int
}

// NewPool creates a pool with maxSize pre-allocated objects.
func NewPool[T any](maxSize int) *Pool[T] {
	p := &Pool[T]{
		Items:   make([]*T, maxSize),
		MaxSize: maxSize,
	}
	for i := range p.Items {
		p.Items[i] = new(T)
	}
	return p
}

// Acquire returns a zeroed object, or nil when the pool is exhausted.
func (p *Pool[T]) Acquire() *T {
	if p.Active >= p.MaxSize {
		return nil
	}
	obj := p.Items[p.Active]
	var zero T
	*obj = zero
	p.Active++
	return obj
}

// Release returns the object at index to the pool using swap-and-pop.
func (p *Pool[T]) Release(index int) {
	if index >= p.Active || index < 0 {
		return
	}
	last := p.Active - 1
	if index != last {
		p.Items[index], p.Items[last] = p.Items[last], p.Items[index]
	}
	p.Active--
}

// Clear marks every object inactive.
func (p *Pool[T]) Clear() {
	p.Active = 0
}

// Len returns the number of active objects.
func (p *Pool[T]) Len() int {
	return p.Active
}

// Slice returns the active objects. The slice aliases the pool and is only
// valid until the next Acquire or Release.
func (p *Pool[T]) Slice() []*T {
	return p.Items[:p.Active]
}

// ForEachReverse iterates over active objects in reverse order. fn may
// release the object it is given.
func (p *Pool[T]) ForEachReverse(fn func(*T, int)) {
	for i := p.Active - 1; i >= 0; i-- {
		fn(p.Items[i], i)
	}
}
