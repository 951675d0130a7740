package models

import "github.com/kitty100176/nmr-booking-system/internal/domain"

// CreateLabRequest запрос на создание лаборатории
type CreateLabRequest struct {
	Requester   string `json:"-"` // Учетная запись администратора
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLabRequest запрос на изменение лаборатории
type UpdateLabRequest struct {
	Requester   string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LabResponse ответ с данными лаборатории
type LabResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LabListResponse ответ со списком лабораторий
type LabListResponse struct {
	Labs []*LabResponse `json:"labs"`
}

// FromDomainLab конвертирует domain модель в response
func FromDomainLab(lab *domain.Lab) *LabResponse {
	return &LabResponse{
		ID:          lab.ID,
		Name:        lab.Name,
		Description: lab.Description,
	}
}

// FromDomainLabList конвертирует список domain моделей в response
func FromDomainLabList(labs []*domain.Lab) *LabListResponse {
	result := make([]*LabResponse, 0, len(labs))
	for _, lab := range labs {
		result = append(result, FromDomainLab(lab))
	}
	return &LabListResponse{Labs: result}
}
