package ringlist

// nilSlot значение-заглушка для ссылок не указывающих ни на какой слот.
const nilSlot = ^uint32(0)

// Node узел кольца содержащий одно значение и индексные ссылки на
// соседей. Узлы живут в слотах аллокатора, принадлежат ровно одному
// списку и никогда не копируются как значения.
type Node[T any] struct {
	next uint32
	prev uint32

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// Ref ссылка на значение узла для изменения на месте.
func (n *Node[T]) Ref() *T {
	return &n.value
}
