package rest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// groupDTO uses the same field names as the persisted group list so the
// front-end can treat both alike.
type groupDTO struct {
	Name       string    `json:"name"`
	ID         int       `json:"id"`
	UUID       uuid.UUID `json:"uuid"`
	Status     string    `json:"status"`
	IsDelete   bool      `json:"isDelete"`
	UpdateTime int64     `json:"updateTime"`
}

type detailDTO struct {
	ID         int       `json:"id"`
	UUID       uuid.UUID `json:"uuid"`
	Content    string    `json:"content"`
	UpdateTime int64     `json:"updateTime"`
}

func toGroupDTO(g domain.Group) groupDTO {
	return groupDTO{
		Name:       g.Name,
		ID:         g.ID,
		UUID:       g.UUID,
		Status:     g.Status.String(),
		IsDelete:   g.IsDeleted(),
		UpdateTime: g.UpdateTime,
	}
}

func toGroupDTOs(list domain.GroupList) []groupDTO {
	out := make([]groupDTO, 0, len(list))
	for _, g := range list {
		out = append(out, toGroupDTO(g))
	}
	return out
}

// fromGroupDTOs converts a client-supplied list, collecting a field error for
// every record with a negative id or an unknown status.
func fromGroupDTOs(in []groupDTO) (domain.GroupList, error) {
	var errs []domain.FieldError
	out := make(domain.GroupList, 0, len(in))
	for i, d := range in {
		valid := true
		if d.ID < 0 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("[%d].id", i),
				Message: "must not be negative",
			})
			valid = false
		}
		status := domain.Status(d.Status)
		if !status.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("[%d].status", i),
				Message: "must be ON or OFF",
			})
			valid = false
		}
		if !valid {
			continue
		}
		out = append(out, domain.Group{
			ID:         d.ID,
			UUID:       d.UUID,
			Name:       d.Name,
			Status:     status,
			Lifecycle:  domain.LifecycleFromFlag(d.IsDelete),
			UpdateTime: d.UpdateTime,
		})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}

func toDetailDTO(d domain.GroupDetail) detailDTO {
	return detailDTO{
		ID:         d.ID,
		UUID:       d.UUID,
		Content:    d.Content,
		UpdateTime: d.UpdateTime,
	}
}
