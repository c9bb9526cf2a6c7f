package models

import "time"

// Cluster represents a group of servers operated together.
type Cluster struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:25;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Servers []Server `json:"-" gorm:"foreignKey:ClusterID"`
}

// RefName returns the unique name clients use to reference a cluster.
func (c Cluster) RefName() string {
	return c.Name
}
