package models

import "time"

// EnvironmentCategory classifies what an environment is used for.
type EnvironmentCategory string

const (
	EnvironmentDev   EnvironmentCategory = "DEV"
	EnvironmentBeta  EnvironmentCategory = "BETA"
	EnvironmentStage EnvironmentCategory = "STAGE"
	EnvironmentProd  EnvironmentCategory = "PROD"
)

// Valid reports whether the category is one of the known codes.
func (c EnvironmentCategory) Valid() bool {
	switch c {
	case EnvironmentDev, EnvironmentBeta, EnvironmentStage, EnvironmentProd:
		return true
	}
	return false
}

// EnvironmentCategoryChoices lists the accepted category codes.
func EnvironmentCategoryChoices() []string {
	return []string{
		string(EnvironmentDev),
		string(EnvironmentBeta),
		string(EnvironmentStage),
		string(EnvironmentProd),
	}
}

// Environment represents a runtime environment servers are assigned to.
type Environment struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Name        string              `json:"name" gorm:"size:25;uniqueIndex;not null"`
	Category    EnvironmentCategory `json:"category" gorm:"size:5;not null;default:'DEV'"`
	Description string              `json:"description" gorm:"type:text"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	// Relations
	Servers []Server `json:"-" gorm:"many2many:server_environments"`
}

// RefName returns the unique name clients use to reference an environment.
func (e Environment) RefName() string {
	return e.Name
}
