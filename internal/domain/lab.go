package domain

// Lab лаборатория (PI) — организационная группа для отображения
// и учета. Не может быть удалена, пока на нее ссылается хотя бы
// один пользователь
type Lab struct {
	ID          int64
	Name        string
	Description string
}
