package models

// DayHoursIn график одного дня недели при сохранении.
// Weekday по ISO: понедельник = 1, воскресенье = 7
type DayHoursIn struct {
	Weekday   int
	OpenTime  *string
	CloseTime *string
	IsClosed  bool
}

// SaveHoursIn полный недельный график для записи.
// Дни, отсутствующие в списке, считаются выходными
type SaveHoursIn struct {
	Days []DayHoursIn
}
