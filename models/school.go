package models

import (
	"time"
)

type School struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Code        string    `gorm:"column:code;unique" json:"code"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	DeanID      *uint     `gorm:"column:dean_id" json:"dean_id,omitempty"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Dean *User `gorm:"foreignKey:DeanID" json:"dean,omitempty"`
}

type Department struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Code        string    `gorm:"column:code;unique" json:"code"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	SchoolID    uint      `gorm:"column:school_id" json:"school_id"`
	HeadID      *uint     `gorm:"column:hod_id" json:"hod_id,omitempty"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	School           *School `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	HeadOfDepartment *User   `gorm:"foreignKey:HeadID" json:"head_of_department,omitempty"`
}

func (School) TableName() string {
	return "schools"
}

func (Department) TableName() string {
	return "departments"
}
