package models

// EmployeeServiceIn назначение услуги сотруднику.
// Price nil означает цену из каталога
type EmployeeServiceIn struct {
	ServiceID int64
	SortOrder int
	Price     *float64
}

// ScheduleBreakIn перерыв внутри рабочего дня
type ScheduleBreakIn struct {
	Start string
	End   string
}

// ScheduleDayIn рабочий график одного дня недели
type ScheduleDayIn struct {
	Weekday   int
	IsWorking bool
	Start     *string
	End       *string
	Breaks    []ScheduleBreakIn
}

// CreateEmployeeIn данные для создания сотрудника
type CreateEmployeeIn struct {
	Name        string
	Email       string
	Phone       string
	Visibility  string
	LocationIDs []int64
	Services    []EmployeeServiceIn
	Schedule    []ScheduleDayIn
}

// UpdateEmployeeIn данные для частичного обновления сотрудника.
// Nil поля и nil срезы не изменяются
type UpdateEmployeeIn struct {
	Name        *string
	Email       *string
	Phone       *string
	Visibility  *string
	LocationIDs []int64
	Services    []EmployeeServiceIn
	Schedule    []ScheduleDayIn
}

// EnrichedService назначение услуги, дополненное данными каталога.
// Price содержит эффективную цену: переопределение сотрудника или цену каталога
type EnrichedService struct {
	ServiceID       int64
	Name            string
	DurationMinutes int
	Price           float64
	SortOrder       int
}
