package check_availability

import "errors"

// ErrInternal возвращается при ошибках хранилища
var ErrInternal = errors.New("check_availability: internal error")
