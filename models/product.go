package models

import "time"

// Product represents a product hosted on the inventoried servers.
type Product struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Port       *int      `json:"port"`
	Version    string    `json:"version" gorm:"size:20;not null"`
	OwnerID    uint      `json:"-" gorm:"not null;index"`
	Link       string    `json:"link"`
	Repository string    `json:"repository"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Owner Owner `json:"-" gorm:"foreignKey:OwnerID"`
}

// RefName returns the unique name clients use to reference a product.
func (p Product) RefName() string {
	return p.Name
}
