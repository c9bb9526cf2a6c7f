package models

import (
	"fmt"
	"time"
)

// ServerCategory classifies the role a server plays.
type ServerCategory string

const (
	ServerCategoryMail  ServerCategory = "MAIL"
	ServerCategoryFTP   ServerCategory = "FTP"
	ServerCategoryWeb   ServerCategory = "WEB"
	ServerCategoryProxy ServerCategory = "PROXY"
	ServerCategoryApp   ServerCategory = "APP"
	ServerCategoryBuild ServerCategory = "BUILD"
)

// Valid reports whether the category is one of the known codes.
func (c ServerCategory) Valid() bool {
	switch c {
	case ServerCategoryMail, ServerCategoryFTP, ServerCategoryWeb,
		ServerCategoryProxy, ServerCategoryApp, ServerCategoryBuild:
		return true
	}
	return false
}

// ServerCategoryChoices lists the accepted category codes.
func ServerCategoryChoices() []string {
	return []string{
		string(ServerCategoryMail),
		string(ServerCategoryFTP),
		string(ServerCategoryWeb),
		string(ServerCategoryProxy),
		string(ServerCategoryApp),
		string(ServerCategoryBuild),
	}
}

// Server represents a server running on-prem or in the cloud.
type Server struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"size:25;uniqueIndex;not null"`
	IPAddress         string         `json:"ip_address" gorm:"size:39;uniqueIndex;not null"`
	Category          ServerCategory `json:"category" gorm:"size:5;not null;default:'WEB'"`
	OwnerID           uint           `json:"-" gorm:"not null;index"`
	DomainID          uint           `json:"-" gorm:"not null;index"`
	ClusterID         *uint          `json:"-" gorm:"index"`
	OperatingSystemID uint           `json:"-" gorm:"not null;index"`
	Description       string         `json:"description" gorm:"type:text"`
	Status            Status         `json:"status" gorm:"size:8;not null;default:'INACTIVE'"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	// Relations
	Owner           Owner           `json:"-" gorm:"foreignKey:OwnerID"`
	Domain          Domain          `json:"-" gorm:"foreignKey:DomainID"`
	Cluster         *Cluster        `json:"-" gorm:"foreignKey:ClusterID"`
	OperatingSystem OperatingSystem `json:"-" gorm:"foreignKey:OperatingSystemID"`
	Environments    []Environment   `json:"-" gorm:"many2many:server_environments"`
	Labels          []Label         `json:"-" gorm:"many2many:server_labels"`
}

// RefName returns the unique name clients use to reference a server.
func (s Server) RefName() string {
	return s.Name
}

// FQDN returns the fully qualified domain name of the server. The domain
// relation must be loaded.
func (s Server) FQDN() string {
	return fmt.Sprintf("%s.%s", s.Name, s.Domain.Name)
}
