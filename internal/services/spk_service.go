package services

import (
	"fmt"

	"dealership/internal/domain"
	"dealership/internal/domain/models"
	"dealership/internal/repositories"
	"dealership/internal/utils"
)

// SPKService exposes the order screen's operations: paged listing and the
// finish/editable flag transitions. Everything else on an order is read-only.
type SPKService struct {
	OrderRepo repositories.OrderRepository
	RequestID string
}

func (s SPKService) List(q domain.ListQuery) ([]models.Order, domain.Pagination, error) {
	return s.OrderRepo.List(q)
}

func (s SPKService) Get(documentID string) (models.Order, error) {
	return s.OrderRepo.GetByDocumentID(documentID)
}

// SetFlags applies the only mutation the admin panel performs on an order.
// Marking an order finished also locks it against further edits upstream.
func (s SPKService) SetFlags(documentID string, finish, editable *bool) (models.Order, error) {
	order, err := s.OrderRepo.UpdateFlags(documentID, finish, editable)
	if err != nil {
		return models.Order{}, err
	}
	utils.LogEvent(s.RequestID, "spk", "set_flags",
		fmt.Sprintf("document_id=%s finish=%t editable=%t", documentID, order.Finish, order.Editable))
	return order, nil
}
