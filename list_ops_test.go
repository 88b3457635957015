package ringlist_test

import (
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/ringlist"
	"github.com/sirkon/ringlist/internal/mocks"
	"github.com/sirkon/ringlist/internal/tlog"
	"golang.org/x/exp/slices"
)

func TestListSwap(t *testing.T) {
	// Обмен содержимым не имеет права трогать аллокаторы, поэтому
	// наблюдатели обеих арен ждут ровно столько событий, сколько
	// производит первоначальное наполнение.
	ctrl := gomock.NewController(t)

	obsA := mocks.NewMockObserver(ctrl)
	obsA.EXPECT().NodeAllocated(gomock.Any()).Times(3)
	arenaA, err := ringlist.NewArena[int](ringlist.WithObserver(obsA))
	if tlog.Check(t, err) {
		return
	}
	a, err := ringlist.NewIn[int](arenaA)
	if tlog.Check(t, err) {
		return
	}
	fill(t, a, 1, 2)

	obsB := mocks.NewMockObserver(ctrl)
	obsB.EXPECT().NodeAllocated(gomock.Any()).Times(2)
	arenaB, err := ringlist.NewArena[int](ringlist.WithObserver(obsB))
	if tlog.Check(t, err) {
		return
	}
	b, err := ringlist.NewIn[int](arenaB)
	if tlog.Check(t, err) {
		return
	}
	fill(t, b, 9)

	a.Swap(b)
	checkBothWays(t, "first list", a, []int{9})
	checkBothWays(t, "second list", b, []int{1, 2})

	a.Swap(a)
	checkBothWays(t, "self swap", a, []int{9})
}

func TestListSplice(t *testing.T) {
	t.Run("shared-arena", func(t *testing.T) {
		// Пришивка в пределах одной арены обязана обходиться
		// без выделений и освобождений вовсе.
		ctrl := gomock.NewController(t)
		obs := mocks.NewMockObserver(ctrl)
		obs.EXPECT().NodeAllocated(gomock.Any()).Times(7)

		arena, err := ringlist.NewArena[int](ringlist.WithObserver(obs))
		if tlog.Check(t, err) {
			return
		}

		l, err := ringlist.NewIn[int](arena)
		if tlog.Check(t, err) {
			return
		}
		fill(t, l, 1, 3, 5)

		donor, err := ringlist.NewIn[int](arena)
		if tlog.Check(t, err) {
			return
		}
		fill(t, donor, 2, 4)

		if err := l.Splice(donor); tlog.Check(t, err) {
			return
		}
		checkBothWays(t, "spliced", l, []int{1, 3, 5, 2, 4})
		checkBothWays(t, "emptied donor", donor, []int{})
		if donor.Begin() != donor.End() {
			t.Error("donor must be left in the empty ring state")
		}
	})

	t.Run("foreign-arena", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 1, 3, 5)

		donor := ringlist.New[int]()
		fill(t, donor, 2, 4)

		if err := l.Splice(donor); tlog.Check(t, err) {
			return
		}
		checkBothWays(t, "spliced", l, []int{1, 3, 5, 2, 4})
		checkBothWays(t, "emptied donor", donor, []int{})
	})

	t.Run("foreign-arena-exhausted", func(t *testing.T) {
		arena, err := ringlist.NewArena[int](ringlist.WithCapacity(2))
		if tlog.Check(t, err) {
			return
		}
		l, err := ringlist.NewIn[int](arena)
		if tlog.Check(t, err) {
			return
		}

		donor := ringlist.New[int]()
		fill(t, donor, 7, 8)

		err = l.Splice(donor)
		if err == nil {
			t.Error("arena exhaustion error expected")
			return
		}
		if !ringlist.IsArenaExhausted(err) {
			tlog.Error(t, err)
			return
		}
		tlog.Log(t, err)

		// Пересаженное остаётся у приёмника, остальное у донора.
		checkBothWays(t, "receiver", l, []int{7})
		checkBothWays(t, "donor", donor, []int{8})
	})

	t.Run("self", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 1, 2)

		if err := l.Splice(l); tlog.Check(t, err) {
			return
		}
		checkBothWays(t, "self splice", l, []int{1, 2})
	})
}

func TestListTake(t *testing.T) {
	// Перенос по общей арене: освобождается только прежнее
	// содержимое приёмника, новых выделений нет.
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().NodeAllocated(gomock.Any()).Times(6)
	obs.EXPECT().NodeFreed(gomock.Any()).Times(2)

	arena, err := ringlist.NewArena[int](ringlist.WithObserver(obs))
	if tlog.Check(t, err) {
		return
	}

	dst, err := ringlist.NewIn[int](arena)
	if tlog.Check(t, err) {
		return
	}
	fill(t, dst, 1, 2)

	donor, err := ringlist.NewIn[int](arena)
	if tlog.Check(t, err) {
		return
	}
	fill(t, donor, 5, 6)

	if err := dst.Take(donor); tlog.Check(t, err) {
		return
	}
	checkBothWays(t, "destination", dst, []int{5, 6})
	checkBothWays(t, "donor", donor, []int{})
	if donor.Begin() != donor.End() {
		t.Error("donor must be left in the empty ring state")
	}
}

func TestListMerge(t *testing.T) {
	t.Run("copies-in-order", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 1, 3, 5)

		donor := ringlist.New[int]()
		fill(t, donor, 2, 4)

		if err := l.Merge(donor); tlog.Check(t, err) {
			return
		}
		checkBothWays(t, "merged", l, []int{1, 3, 5, 2, 4})
		checkBothWays(t, "intact donor", donor, []int{2, 4})
	})

	t.Run("strong-guarantee", func(t *testing.T) {
		// Предел в 4 слота: ограничитель, один элемент, ограничитель
		// временного списка и единственная скопированная копия. Вторая
		// копия упирается в предел и приёмник обязан остаться прежним.
		arena, err := ringlist.NewArena[int](ringlist.WithCapacity(4))
		if tlog.Check(t, err) {
			return
		}

		l, err := ringlist.NewIn[int](arena)
		if tlog.Check(t, err) {
			return
		}
		fill(t, l, 1)

		donor := ringlist.New[int]()
		fill(t, donor, 8, 9)

		err = l.Merge(donor)
		if err == nil {
			t.Error("arena exhaustion error expected")
			return
		}
		if !ringlist.IsArenaExhausted(err) {
			tlog.Error(t, err)
			return
		}
		tlog.Log(t, err)

		checkBothWays(t, "unchanged receiver", l, []int{1})
		checkBothWays(t, "intact donor", donor, []int{8, 9})
		if arena.Len() != 2 {
			t.Errorf("staging must be released, 2 slots in use expected, got %d", arena.Len())
		}
	})

	t.Run("self", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 1, 2)

		if err := l.Merge(l); tlog.Check(t, err) {
			return
		}
		checkBothWays(t, "self merge", l, []int{1, 2})
	})
}

func TestListSort(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 11, 5, 4, 1, 2, 3, 7, 6, 12, 9, 10, 8)

		l.Sort(ringlist.Asc[int])
		checkBothWays(t, "sorted", l, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	})

	t.Run("descending", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 3, 1, 2, 2)

		l.Sort(ringlist.Desc[int])
		checkBothWays(t, "sorted", l, []int{3, 2, 2, 1})
	})

	t.Run("sorted-input-keeps-links", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 1, 2, 3)

		first := l.Begin()
		l.Sort(ringlist.Asc[int])

		checkBothWays(t, "still sorted", l, []int{1, 2, 3})
		if l.Begin() != first {
			t.Error("sorting of sorted data must not relink adjacent ordered nodes")
		}
	})

	t.Run("stability", func(t *testing.T) {
		type pair struct {
			Key int
			Tag string
		}

		l := ringlist.New[pair]()
		fill(t, l, pair{1, "a"}, pair{1, "b"}, pair{0, "c"})

		l.Sort(func(a, b pair) bool { return a.Key < b.Key })
		deepequal.SideBySide(
			t,
			"stable order",
			[]pair{{0, "c"}, {1, "a"}, {1, "b"}},
			content(l),
		)
	})

	t.Run("trivial", func(t *testing.T) {
		l := ringlist.New[int]()
		l.Sort(ringlist.Asc[int])
		checkBothWays(t, "empty", l, []int{})

		fill(t, l, 1)
		l.Sort(ringlist.Asc[int])
		checkBothWays(t, "single", l, []int{1})
	})
}

func TestListSortProperty(t *testing.T) {
	// Сверка с эталонной устойчивой сортировкой среза на случайных
	// данных, в обоих направлениях. Значения переезжать между узлами
	// не должны: взятые до сортировки итераторы обязаны показывать
	// прежние значения.
	r := rand.New(rand.NewSource(0x5EED))

	for round := 0; round < 50; round++ {
		data := make([]string, r.Intn(40))
		for i := range data {
			data[i] = uuid.NewString()
		}

		l := ringlist.New[string]()
		fill(t, l, data...)

		var its []ringlist.Iter[string]
		var vals []string
		for it := l.Begin(); it != l.End(); it.Next() {
			its = append(its, it)
			vals = append(vals, it.Value())
		}

		l.Sort(ringlist.Asc[string])
		want := make([]string, len(data))
		copy(want, data)
		slices.SortStableFunc(want, func(a, b string) bool { return a < b })
		deepequal.SideBySide(t, "ascending order", want, content(l))

		for i, it := range its {
			if it.Value() != vals[i] {
				t.Errorf("round %d: sort must relink nodes, not move values", round)
				break
			}
		}

		l.Sort(ringlist.Desc[string])
		slices.SortStableFunc(want, func(a, b string) bool { return b < a })
		deepequal.SideBySide(t, "descending order", want, content(l))
	}
}

func TestListSortStableProperty(t *testing.T) {
	type rec struct {
		Key int
		Seq int
	}

	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		data := make([]rec, r.Intn(60))
		for i := range data {
			data[i] = rec{Key: r.Intn(5), Seq: i}
		}

		l := ringlist.New[rec]()
		fill(t, l, data...)

		less := func(a, b rec) bool { return a.Key < b.Key }
		l.Sort(less)

		want := make([]rec, len(data))
		copy(want, data)
		slices.SortStableFunc(want, less)
		deepequal.SideBySide(t, "stable order", want, content(l))
	}
}

func TestListReverse(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		l := ringlist.New[int]()
		fill(t, l, 1, 2, 3)

		l.Reverse()
		checkBothWays(t, "reversed", l, []int{3, 2, 1})
	})

	t.Run("involution", func(t *testing.T) {
		data := []string{"a", "b", "c", "d", "e"}
		l := ringlist.New[string]()
		fill(t, l, data...)

		l.Reverse()
		l.Reverse()
		checkBothWays(t, "double reverse", l, data)
	})

	t.Run("trivial", func(t *testing.T) {
		l := ringlist.New[int]()
		l.Reverse()
		checkBothWays(t, "empty", l, []int{})

		fill(t, l, 1)
		l.Reverse()
		checkBothWays(t, "single", l, []int{1})
	})
}
