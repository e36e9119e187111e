package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключ отсутствует в кэше
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrMarshal возвращается при ошибке сериализации значения
	ErrMarshal = errors.New("cache: failed to marshal value")

	// ErrUnmarshal возвращается при ошибке десериализации значения
	ErrUnmarshal = errors.New("cache: failed to unmarshal value")
)
