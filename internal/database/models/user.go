package models

// User is an account that owns bicycles
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;size:200;not null" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"not null"`

	Bicycles []Bicycle `json:"bicycles,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
