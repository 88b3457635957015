package ringlist

//go:generate mockgen -destination internal/mocks/observer.go -package mocks github.com/sirkon/ringlist Observer

// Allocator абстракция выделения слотов под узлы списка. Каждый слот
// обязан освобождаться тем же экземпляром аллокатора, которым был
// выделен — список добивается этого тем, что всегда ходит через
// собственный экземпляр.
//
// Несколько списков построенных над общим аллокатором могут
// обмениваться узлами без копирования значений, см. Splice и Take.
type Allocator[T any] interface {
	// Alloc выделение слота с размещением в нём данного значения.
	Alloc(v T) (uint32, error)

	// Free уничтожение значения и возврат слота в свободные.
	Free(id uint32)

	// At разрешение индекса слота в узел. Полученную ссылку нельзя
	// удерживать через последующие вызовы Alloc.
	At(id uint32) *Node[T]
}

// Observer абстракция для наблюдения за событиями выделения и
// освобождения слотов. Реализация делается пользователями библиотеки.
type Observer interface {
	NodeAllocated(id uint32)
	NodeFreed(id uint32)
	AllocFailed(err error)
}
