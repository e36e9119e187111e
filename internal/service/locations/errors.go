package locations

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("locations.service: location not found")

	// ErrInvalidTimezone возвращается при неизвестном имени таймзоны
	ErrInvalidTimezone = errors.New("locations.service: invalid timezone name")
)
