package models

// Status is the lifecycle state shared by domains and servers.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusDecom    Status = "DECOM"
)

// Valid reports whether the status is one of the known codes.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDecom:
		return true
	}
	return false
}

// StatusChoices lists the accepted status codes.
func StatusChoices() []string {
	return []string{string(StatusActive), string(StatusInactive), string(StatusDecom)}
}
