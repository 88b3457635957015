package ringlist

import "golang.org/x/exp/constraints"

// Asc сравнение для сортировки упорядоченных типов по возрастанию.
func Asc[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Desc сравнение для сортировки по убыванию: те же операнды в
// обратном порядке.
func Desc[T constraints.Ordered](a, b T) bool {
	return b < a
}
