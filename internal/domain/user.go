package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de acesso do sistema
const (
	RoleMaster = "master"
	RoleSeller = "seller"
)

// Filiais conhecidas
const (
	BranchLoja    = "Loja"
	BranchOficina = "Oficina"
)

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"password,omitempty"`
	Role         string     `json:"role"`
	Branch       *string    `json:"branch"`
	Active       bool       `json:"active"`
	TokenVersion int        `json:"-"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsMaster indica se o usuário tem papel de administração
func (u *User) IsMaster() bool {
	return u.Role == RoleMaster
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Branch   *string `json:"branch"`
	Active   *bool   `json:"active"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	Username     string
	UserName     string
	UserRole     string
	UserBranch   *string
	TokenVersion int
	jwt.RegisteredClaims
}
