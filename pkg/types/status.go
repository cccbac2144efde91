package types

import "time"

type ServerTime struct {
	Time    time.Time
	RFC1123 string
}

type SystemStatusType string

const (
	SystemStatusOnline      SystemStatusType = "online"
	SystemStatusMaintenance SystemStatusType = "maintenance"
	SystemStatusCancelOnly  SystemStatusType = "cancel_only"
	SystemStatusPostOnly    SystemStatusType = "post_only"
)

type SystemStatus struct {
	Status SystemStatusType
	Time   time.Time
}

func (s SystemStatus) Online() bool {
	return s.Status == SystemStatusOnline
}
