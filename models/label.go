package models

import "time"

// Label is a tag that can be attached to any number of servers.
type Label struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:25;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Servers []Server `json:"-" gorm:"many2many:server_labels"`
}

// RefName returns the unique name clients use to reference a label.
func (l Label) RefName() string {
	return l.Name
}
