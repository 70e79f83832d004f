package entity

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleOperator UserRole = "OPERATOR"
)

type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       UserRole `json:"role"`
	Password   string   `json:"password,omitempty"`
	BranchID   string   `json:"branchId,omitempty"`
	CreatedAt  string   `json:"createdAt"` // ISO-8601
	IsApproved bool     `json:"isApproved,omitempty"`
}
