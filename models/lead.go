package models

// Lead is a contact-form message from the public site
type Lead struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null;index" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
}
