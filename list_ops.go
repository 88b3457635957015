package ringlist

import (
	"github.com/sirkon/errors"
)

// Swap обмен содержимым двух списков без выделений и копирования
// значений. Обмен списка с самим собой ничего не делает.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}

	l.alloc, other.alloc = other.alloc, l.alloc
	l.head, other.head = other.head, l.head
	l.size, other.size = other.size, l.size
}

// Take перенос содержимого другого списка в данный с заменой текущего
// содержимого. Донор остаётся действительным пустым списком. Перенос
// из списка в него же ничего не делает.
//
// При общем аллокаторе перенос выполняется за O(1), иначе элементы
// переезжают по одному, см. Splice.
func (l *List[T]) Take(other *List[T]) error {
	if l == other {
		return nil
	}

	l.Clear()
	return l.Splice(other)
}

// Splice перенос всех элементов другого списка в конец данного с
// сохранением их порядка. Донор остаётся пустым. Перенос из списка в
// него же ничего не делает.
//
// Если оба списка делят один аллокатор, узлы пришиваются к кольцу как
// есть за O(1). Иначе значения переезжают по одному с освобождением
// слотов донора; при исчерпании арены приёмника перенос прерывается,
// не пересаженные элементы остаются в доноре.
func (l *List[T]) Splice(other *List[T]) error {
	if l == other || other.size == 0 {
		return nil
	}

	if l.alloc != other.alloc {
		return l.spliceForeign(other)
	}

	s := l.at(l.head)
	os := other.at(other.head)

	l.at(s.prev).next = os.next
	l.at(os.next).prev = s.prev
	l.at(os.prev).next = l.head
	s.prev = os.prev

	os.next = other.head
	os.prev = other.head

	l.size += other.size
	other.size = 0

	return nil
}

func (l *List[T]) spliceForeign(other *List[T]) error {
	for other.size > 0 {
		front := other.at(other.head).next
		if err := l.PushBack(other.at(front).value); err != nil {
			return errors.Wrap(err, "move element between arenas")
		}

		other.remove(front)
	}

	return nil
}

// Merge добавление копий всех элементов другого списка в конец
// данного с сохранением их порядка. Сам донор структурно не меняется.
// Копии сначала собираются во временном списке над аллокатором
// приёмника и пришиваются только после полного успеха, поэтому при
// неудаче наблюдаемое состояние приёмника остаётся прежним.
func (l *List[T]) Merge(other *List[T]) error {
	if l == other || other.size == 0 {
		return nil
	}

	tmp, err := NewIn(l.alloc)
	if err != nil {
		return errors.Wrap(err, "allocate staging list")
	}
	defer tmp.Close()

	for it := other.Begin(); it != other.End(); it.Next() {
		if err := tmp.PushBack(it.Value()); err != nil {
			return errors.Wrap(err, "copy element")
		}
	}

	return l.Splice(tmp)
}

// Sort устойчивая сортировка на месте перешивкой ссылок, без
// выделений и без копирования значений между узлами. Порядок задаёт
// строгое сравнение less; убывающий порядок получается перестановкой
// операндов того же сравнения (Desc), отдельного алгоритма нет.
// Сложность O(n²) в худшем случае.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}

	// Вставочная сортировка: префикс перед cur уже упорядочен,
	// очередной узел уходит назад ровно за всех строго больших его
	// предшественников. Остановка на первом не большем предшественнике
	// сохраняет исходный взаимный порядок равных значений.
	cur := l.at(l.at(l.head).next).next
	for cur != l.head {
		next := l.at(cur).next
		v := l.at(cur).value

		pos := l.at(cur).prev
		for pos != l.head && less(v, l.at(pos).value) {
			pos = l.at(pos).prev
		}

		if pos != l.at(cur).prev {
			l.unlink(cur)
			l.linkBefore(l.at(pos).next, cur)
		}

		cur = next
	}
}

// Reverse разворот списка на месте: у каждого узла кольца, включая
// ограничитель, переворачиваются ссылки. Один проход, без выделений.
func (l *List[T]) Reverse() {
	cur := l.head
	for {
		n := l.at(cur)
		next := n.next
		n.next, n.prev = n.prev, next

		if next == l.head {
			return
		}
		cur = next
	}
}
