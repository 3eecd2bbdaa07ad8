package models

import (
	"time"
)

// Role is stored as a plain string on the user row.
type Role string

const (
	RoleAcademic Role = "ACADEMIC"
	RoleHOD      Role = "HOD"
	RoleDean     Role = "DEAN"
	RoleDVC      Role = "DVC"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAcademic, RoleHOD, RoleDean, RoleDVC, RoleHR, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint       `gorm:"primaryKey;column:id" json:"id"`
	FullName     string     `gorm:"column:full_name" json:"full_name"`
	Email        string     `gorm:"column:email;unique" json:"email"`
	Password     string     `gorm:"column:password" json:"-"`
	Role         Role       `gorm:"column:role" json:"role"`
	DepartmentID *uint      `gorm:"column:department_id" json:"department_id,omitempty"`
	SchoolID     *uint      `gorm:"column:school_id" json:"school_id,omitempty"`
	PhoneNumber  *string    `gorm:"column:phone_number" json:"phone_number,omitempty"`
	EmployeeID   *string    `gorm:"column:employee_id" json:"employee_id,omitempty"`
	CurrentRank  *string    `gorm:"column:current_rank" json:"current_rank,omitempty"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	School     *School     `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
}

func (User) TableName() string {
	return "users"
}
