package models

import "time"

// Owner represents the owner of a server or another resource.
type Owner struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:25;uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Domains  []Domain  `json:"-" gorm:"foreignKey:OwnerID"`
	Servers  []Server  `json:"-" gorm:"foreignKey:OwnerID"`
	Products []Product `json:"-" gorm:"foreignKey:OwnerID"`
}

// RefName returns the unique name clients use to reference an owner.
func (o Owner) RefName() string {
	return o.Name
}
