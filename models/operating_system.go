package models

import "time"

// OSFamily is the broad family an operating system belongs to.
type OSFamily string

const (
	OSFamilyLinux   OSFamily = "LINUX"
	OSFamilyUnix    OSFamily = "UNIX"
	OSFamilyWindows OSFamily = "WINDOWS"
)

// Valid reports whether the family is one of the known codes.
func (f OSFamily) Valid() bool {
	switch f {
	case OSFamilyLinux, OSFamilyUnix, OSFamilyWindows:
		return true
	}
	return false
}

// OSFamilyChoices lists the accepted family codes.
func OSFamilyChoices() []string {
	return []string{string(OSFamilyLinux), string(OSFamilyUnix), string(OSFamilyWindows)}
}

// OSArchitecture is the word size of an operating system build.
type OSArchitecture string

const (
	OSArch32 OSArchitecture = "32"
	OSArch64 OSArchitecture = "64"
)

// Valid reports whether the architecture is one of the known codes.
func (a OSArchitecture) Valid() bool {
	return a == OSArch32 || a == OSArch64
}

// OSArchitectureChoices lists the accepted architecture codes.
func OSArchitectureChoices() []string {
	return []string{string(OSArch32), string(OSArch64)}
}

// OperatingSystem represents an operating system release installed on servers.
type OperatingSystem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Family       OSFamily       `json:"family" gorm:"size:7;not null;default:'LINUX'"`
	Architecture OSArchitecture `json:"architecture" gorm:"size:2;not null;default:'64'"`
	Version      string         `json:"version" gorm:"size:20;not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relations
	Servers []Server `json:"-" gorm:"foreignKey:OperatingSystemID"`
}

// RefName returns the unique name clients use to reference an operating system.
func (o OperatingSystem) RefName() string {
	return o.Name
}
