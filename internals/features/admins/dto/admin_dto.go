// file: internals/features/admins/dto/admin_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ithra_backend/internals/features/admins/model"
)

/* =======================
   Request DTO
======================= */

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequestDTO) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type AdminRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super_admin"`
	IsActive *bool  `json:"isActive,omitempty"`
}

func (r *AdminRequestDTO) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

/* =======================
   Response DTO
======================= */

// Password tidak pernah ikut keluar.
type AdminResponseDTO struct {
	ID        uuid.UUID `json:"_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromModel(ent model.AdminModel) AdminResponseDTO {
	return AdminResponseDTO{
		ID:        ent.AdminID,
		Email:     ent.AdminEmail,
		Role:      ent.AdminRole,
		IsActive:  ent.AdminIsActive,
		CreatedAt: ent.AdminCreatedAt,
	}
}

func FromModels(rows []model.AdminModel) []AdminResponseDTO {
	out := make([]AdminResponseDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
