package ringlist

import (
	stderrors "errors"
	"fmt"
)

// IsArenaExhausted такая ошибка указывает на то, что арена достигла
// заданного предела слотов и вставка невозможна пока какие-нибудь
// элементы не будут освобождены.
func IsArenaExhausted(err error) bool {
	var e errorArenaExhausted
	return stderrors.As(err, &e)
}

type errorArenaExhausted struct {
	limit int
}

func (e errorArenaExhausted) Error() string {
	return fmt.Sprintf("arena limit of %d slots exhausted", e.limit)
}
