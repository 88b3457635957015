package ringlist

import (
	"github.com/sirkon/errors"
)

// New конструктор пустого списка над собственной ареной.
func New[T any]() *List[T] {
	l, err := NewIn[T](newDefaultArena[T]())
	if err != nil {
		// Свежая арена без ограничений не может отказать.
		panic(errors.Wrap(err, "allocate sentinel slot on a fresh arena"))
	}

	return l
}

// NewIn конструктор пустого списка над данным аллокатором. Слот под
// ограничитель кольца выделяется сразу, поэтому создание может
// завершиться ошибкой исчерпания.
func NewIn[T any](alloc Allocator[T]) (*List[T], error) {
	var zero T
	head, err := alloc.Alloc(zero)
	if err != nil {
		return nil, errors.Wrap(err, "allocate sentinel slot")
	}

	s := alloc.At(head)
	s.next = head
	s.prev = head

	return &List[T]{
		alloc: alloc,
		head:  head,
	}, nil
}

// List последовательность значений на кольце двусвязанных слотов с
// ограничителем. Все слоты принадлежат аллокатору списка и
// освобождаются только через него.
// WARNING: не предоставляет гарантий безопасности при многопоточном
// доступе.
type List[T any] struct {
	alloc Allocator[T]
	head  uint32 // слот ограничителя
	size  int
}

// Len число элементов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// Empty проверка что список пуст.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front значение первого элемента. Вызов на пустом списке запрещён.
func (l *List[T]) Front() T {
	if l.size == 0 {
		panic("ringlist: Front on an empty list")
	}

	return l.at(l.at(l.head).next).value
}

// Back значение последнего элемента. Вызов на пустом списке запрещён.
func (l *List[T]) Back() T {
	if l.size == 0 {
		panic("ringlist: Back on an empty list")
	}

	return l.at(l.at(l.head).prev).value
}

// Begin итератор на первый элемент. На пустом списке совпадает с End.
func (l *List[T]) Begin() Iter[T] {
	return Iter[T]{list: l, at: l.at(l.head).next}
}

// End итератор на позицию за последним элементом.
func (l *List[T]) End() Iter[T] {
	return Iter[T]{list: l, at: l.head}
}

// PushFront добавление значения в начало списка. При неудаче
// выделения слота наблюдаемое состояние списка не меняется.
func (l *List[T]) PushFront(v T) error {
	id, err := l.alloc.Alloc(v)
	if err != nil {
		return errors.Wrap(err, "allocate node")
	}

	l.linkBefore(l.at(l.head).next, id)
	l.size++
	return nil
}

// PushBack добавление значения в конец списка. При неудаче выделения
// слота наблюдаемое состояние списка не меняется.
func (l *List[T]) PushBack(v T) error {
	id, err := l.alloc.Alloc(v)
	if err != nil {
		return errors.Wrap(err, "allocate node")
	}

	l.linkBefore(l.head, id)
	l.size++
	return nil
}

// Insert вставка значения перед позицией итератора с возвратом
// итератора на новый элемент. Гарантии те же, что у PushBack.
func (l *List[T]) Insert(it Iter[T], v T) (Iter[T], error) {
	id, err := l.alloc.Alloc(v)
	if err != nil {
		return Iter[T]{}, errors.Wrap(err, "allocate node")
	}

	l.linkBefore(it.at, id)
	l.size++
	return Iter[T]{list: l, at: id}, nil
}

// PopFront удаление первого элемента. Вызов на пустом списке запрещён.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic("ringlist: PopFront on an empty list")
	}

	l.remove(l.at(l.head).next)
}

// PopBack удаление последнего элемента. Вызов на пустом списке запрещён.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		panic("ringlist: PopBack on an empty list")
	}

	l.remove(l.at(l.head).prev)
}

// Erase удаление элемента на позиции итератора с возвратом итератора
// на следующую позицию. Недействительным становится только итератор
// удалённого элемента, остальные, включая соседние, продолжают
// работать и обходят образовавшийся стык.
func (l *List[T]) Erase(it Iter[T]) Iter[T] {
	if it.at == l.head {
		panic("ringlist: Erase at the end position")
	}

	next := l.at(it.at).next
	l.remove(it.at)
	return Iter[T]{list: l, at: next}
}

// Clear удаление всех элементов с возвратом их слотов аллокатору.
func (l *List[T]) Clear() {
	for cur := l.at(l.head).next; cur != l.head; {
		next := l.at(cur).next
		l.alloc.Free(cur)
		cur = next
	}

	s := l.at(l.head)
	s.next = l.head
	s.prev = l.head
	l.size = 0
}

// Close освобождение всех элементов вместе со слотом ограничителя.
// Использовать список после этого нельзя. Имеет смысл только для
// списков над разделяемой ареной, иначе арена умирает вместе со
// списком сама.
func (l *List[T]) Close() {
	l.Clear()
	l.alloc.Free(l.head)
	l.alloc = nil
}

// Clone глубокая копия списка над собственной новой ареной. При
// неудаче частично построенная копия освобождается целиком.
func (l *List[T]) Clone() (*List[T], error) {
	return l.CloneIn(newDefaultArena[T]())
}

// CloneIn глубокая копия списка над данным аллокатором.
func (l *List[T]) CloneIn(alloc Allocator[T]) (*List[T], error) {
	res, err := NewIn(alloc)
	if err != nil {
		return nil, errors.Wrap(err, "allocate target list")
	}

	if err := res.Assign(l); err != nil {
		res.Close()
		return nil, errors.Wrap(err, "copy elements")
	}

	return res, nil
}

// Assign замена содержимого копиями элементов другого списка в их
// порядке. Сам донор не меняется. Присваивание списка самому себе
// ничего не делает.
func (l *List[T]) Assign(other *List[T]) error {
	if l == other {
		return nil
	}

	l.Clear()
	for it := other.Begin(); it != other.End(); it.Next() {
		if err := l.PushBack(it.Value()); err != nil {
			return errors.Wrap(err, "copy element")
		}
	}

	return nil
}

func (l *List[T]) at(id uint32) *Node[T] {
	return l.alloc.At(id)
}

// linkBefore вшивка слота id в кольцо перед слотом pos.
func (l *List[T]) linkBefore(pos, id uint32) {
	n := l.at(id)
	p := l.at(pos)

	n.next = pos
	n.prev = p.prev
	l.at(p.prev).next = id
	p.prev = id
}

// unlink исключение слота из кольца без освобождения.
func (l *List[T]) unlink(id uint32) {
	n := l.at(id)
	l.at(n.prev).next = n.next
	l.at(n.next).prev = n.prev
}

func (l *List[T]) remove(id uint32) {
	l.unlink(id)
	l.alloc.Free(id)
	l.size--
}
