package ringlist

import (
	"github.com/sirkon/errors"
)

const defaultSlabSize = 256

// NewArena конструктор аренного аллокатора слотов.
func NewArena[T any](opts ...ArenaOption) (*Arena[T], error) {
	c := arenaConfig{
		slab: defaultSlabSize,
	}
	for _, opt := range opts {
		if err := opt.apply(&c); err != nil {
			return nil, errors.Wrapf(err, "apply arena option '%s'", opt)
		}
	}

	return &Arena[T]{
		free:  nilSlot,
		slab:  c.slab,
		limit: c.limit,
		obs:   c.obs,
	}, nil
}

func newDefaultArena[T any]() *Arena[T] {
	return &Arena[T]{
		free: nilSlot,
		slab: defaultSlabSize,
	}
}

// Arena аллокатор раздающий слоты из слэбов фиксированного размера.
// Слэбы только добавляются, поэтому адрес узла стабилен на всё время
// жизни арены. Освобождённые слоты нанизываются на интрузивный список
// свободных прямо через ссылку next и выдаются повторно раньше, чем
// растёт арена.
type Arena[T any] struct {
	slabs [][]Node[T]
	free  uint32 // голова списка свободных слотов, nilSlot если его нет
	inuse int
	total int
	slab  int
	limit int // 0 — без ограничения
	obs   Observer
}

// Alloc выделение слота с размещением в нём данного значения.
func (a *Arena[T]) Alloc(v T) (uint32, error) {
	id, err := a.grab()
	if err != nil {
		if a.obs != nil {
			a.obs.AllocFailed(err)
		}
		return 0, err
	}

	n := a.At(id)
	n.value = v
	n.next = nilSlot
	n.prev = nilSlot

	a.inuse++
	if a.obs != nil {
		a.obs.NodeAllocated(id)
	}
	return id, nil
}

// Free уничтожение значения и возврат слота в свободные.
func (a *Arena[T]) Free(id uint32) {
	n := a.At(id)

	var zero T
	n.value = zero // отпускаем значение для GC
	n.prev = nilSlot
	n.next = a.free
	a.free = id

	a.inuse--
	if a.obs != nil {
		a.obs.NodeFreed(id)
	}
}

// At разрешение индекса слота в узел.
func (a *Arena[T]) At(id uint32) *Node[T] {
	return &a.slabs[int(id)/a.slab][int(id)%a.slab]
}

// Len число занятых слотов.
func (a *Arena[T]) Len() int {
	return a.inuse
}

// Cap предельное число слотов. 0 означает отсутствие ограничения.
func (a *Arena[T]) Cap() int {
	return a.limit
}

func (a *Arena[T]) grab() (uint32, error) {
	if a.free != nilSlot {
		id := a.free
		a.free = a.At(id).next
		return id, nil
	}

	if a.limit > 0 && a.total >= a.limit {
		return 0, errorArenaExhausted{limit: a.limit}
	}

	if len(a.slabs) == 0 || len(a.slabs[len(a.slabs)-1]) == a.slab {
		a.slabs = append(a.slabs, make([]Node[T], 0, a.slab))
	}

	last := len(a.slabs) - 1
	a.slabs[last] = append(a.slabs[last], Node[T]{})
	a.total++

	return uint32(last*a.slab + len(a.slabs[last]) - 1), nil
}
