package service

import (
	"github.com/mmynk/finapi/internal/models"
	"github.com/mmynk/finapi/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAPIStatement(s *models.Statement) *api.Statement {
	return &api.Statement{
		ID:          s.ID,
		UserID:      s.UserID,
		SenderID:    s.SenderID,
		Type:        s.Type.String(),
		Amount:      s.Amount,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toAPIStatements(statements []models.Statement) []*api.Statement {
	out := make([]*api.Statement, 0, len(statements))
	for i := range statements {
		out = append(out, toAPIStatement(&statements[i]))
	}
	return out
}
