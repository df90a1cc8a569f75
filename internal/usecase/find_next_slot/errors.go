package find_next_slot

import "errors"

// ErrInternal возвращается при ошибках хранилища
var ErrInternal = errors.New("find_next_slot: internal error")
