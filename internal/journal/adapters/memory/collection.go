package memory

import (
	"cmp"
	"slices"
	"time"
)

// collection хранит сущности одного типа и порядок их добавления.
// Синхронизация выполняется на уровне Store.
type collection[T any] struct {
	items   map[string]*T
	order   map[string]uint64
	seq     uint64
	clone   func(*T) *T
	primary func(*T) time.Time
}

func newCollection[T any](items map[string]*T, clone func(*T) *T, primary func(*T) time.Time) *collection[T] {
	if items == nil {
		items = make(map[string]*T)
	}
	c := &collection[T]{
		items:   items,
		order:   make(map[string]uint64, len(items)),
		clone:   clone,
		primary: primary,
	}

	// Порядок загруженных записей восстанавливается по времени, затем по id.
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if n := primary(items[a]).Compare(primary(items[b])); n != 0 {
			return n
		}
		return cmp.Compare(a, b)
	})
	for _, id := range ids {
		c.seq++
		c.order[id] = c.seq
	}

	return c
}

func (c *collection[T]) get(id string) (*T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.items[id]
	return ok
}

func (c *collection[T]) put(id string, v *T) {
	if _, ok := c.items[id]; !ok {
		c.seq++
		c.order[id] = c.seq
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) {
	delete(c.items, id)
	delete(c.order, id)
}

// sorted возвращает копии по убыванию основного времени,
// равные значения идут в порядке добавления.
func (c *collection[T]) sorted() []*T {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if n := c.primary(c.items[b]).Compare(c.primary(c.items[a])); n != 0 {
			return n
		}
		return cmp.Compare(c.order[a], c.order[b])
	})

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.clone(c.items[id]))
	}
	return out
}
