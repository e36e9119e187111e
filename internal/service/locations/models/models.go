package models

// CreateLocationIn данные для создания локации
type CreateLocationIn struct {
	Name     string
	Address  string
	City     string
	Phone    string
	Email    string
	Timezone string
	Industry string
}

// UpdateLocationIn данные для частичного обновления локации.
// Nil поля не изменяются
type UpdateLocationIn struct {
	Name     *string
	Address  *string
	City     *string
	Phone    *string
	Email    *string
	Timezone *string
	Industry *string
}
