package ringlist

// Iter двунаправленный курсор по кольцу списка. Позиция End обозначает
// конец последовательности, разыменование на ней запрещено. Итераторы
// одного списка сравниваются обычным ==.
//
// Итератор действителен пока его элемент не удалён из списка. Слот
// удалённого элемента может быть выдан повторно, поэтому курсор
// переживший удаление своего элемента использовать нельзя.
type Iter[T any] struct {
	list *List[T]
	at   uint32
}

// Next переход к следующему элементу.
func (i *Iter[T]) Next() {
	i.at = i.list.at(i.at).next
}

// Prev переход к предыдущему элементу.
func (i *Iter[T]) Prev() {
	i.at = i.list.at(i.at).prev
}

// AtEnd проверка что курсор стоит на позиции конца.
func (i Iter[T]) AtEnd() bool {
	return i.at == i.list.head
}

// Value значение элемента под курсором.
func (i Iter[T]) Value() T {
	return *i.Ref()
}

// Ref ссылка на значение элемента под курсором для изменения на месте.
func (i Iter[T]) Ref() *T {
	if i.at == i.list.head {
		panic("ringlist: dereference of the end position")
	}

	return i.list.at(i.at).Ref()
}

// Set замена значения элемента под курсором.
func (i Iter[T]) Set(v T) {
	*i.Ref() = v
}

// RO преобразование в итератор для чтения.
func (i Iter[T]) RO() RIter[T] {
	return RIter[T]{i: i}
}

// RIter курсор с тем же обходом что и Iter, но позволяющий только
// чтение значений.
type RIter[T any] struct {
	i Iter[T]
}

// Next переход к следующему элементу.
func (r *RIter[T]) Next() {
	r.i.Next()
}

// Prev переход к предыдущему элементу.
func (r *RIter[T]) Prev() {
	r.i.Prev()
}

// AtEnd проверка что курсор стоит на позиции конца.
func (r RIter[T]) AtEnd() bool {
	return r.i.AtEnd()
}

// Value значение элемента под курсором.
func (r RIter[T]) Value() T {
	return r.i.Value()
}
