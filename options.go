package ringlist

import (
	"fmt"

	"github.com/sirkon/errors"
)

// ArenaOption тип опции создания арены.
type ArenaOption interface {
	String() string
	apply(c *arenaConfig) error
}

type arenaConfig struct {
	slab  int
	limit int
	obs   Observer
}

// WithSlabSize задаёт число слотов в одном слэбе арены.
func WithSlabSize(size int) ArenaOption {
	return arenaSlabSize(size)
}

type arenaSlabSize int

func (o arenaSlabSize) String() string {
	return fmt.Sprintf("set arena slab size to %d slots", int(o))
}

func (o arenaSlabSize) apply(c *arenaConfig) error {
	if o < 1 {
		return errors.Newf("slab size must be positive, got %d", int(o))
	}

	c.slab = int(o)
	return nil
}

// WithCapacity задаёт предельное число слотов арены. Слот ограничителя
// каждого списка построенного над ареной тоже расходует предел.
func WithCapacity(limit int) ArenaOption {
	return arenaCapacity(limit)
}

type arenaCapacity int

func (o arenaCapacity) String() string {
	return fmt.Sprintf("limit arena to %d slots", int(o))
}

func (o arenaCapacity) apply(c *arenaConfig) error {
	if o < 1 {
		return errors.Newf("arena limit must be positive, got %d", int(o))
	}

	c.limit = int(o)
	return nil
}

// WithObserver задаёт наблюдателя за событиями арены.
func WithObserver(obs Observer) ArenaOption {
	return arenaObserver{obs: obs}
}

type arenaObserver struct {
	obs Observer
}

func (o arenaObserver) String() string {
	return "set arena allocation observer"
}

func (o arenaObserver) apply(c *arenaConfig) error {
	if o.obs == nil {
		return errors.New("arena observer must not be nil")
	}

	c.obs = o.obs
	return nil
}
