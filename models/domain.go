package models

import "time"

// Domain is a DNS domain servers are registered under.
type Domain struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:253;uniqueIndex;not null"`
	Location    string    `json:"location" gorm:"size:50"`
	OwnerID     uint      `json:"-" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Status      Status    `json:"status" gorm:"size:8;not null;default:'ACTIVE'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Owner   Owner    `json:"-" gorm:"foreignKey:OwnerID"`
	Servers []Server `json:"-" gorm:"foreignKey:DomainID"`
}

// RefName returns the unique name clients use to reference a domain.
func (d Domain) RefName() string {
	return d.Name
}
