package get_daily_schedule

// In параметры запроса дневного календаря
type In struct {
	LocationID int64
	Date       string
}
