package models

import "time"

// Device is an SNMP-manageable network device.
type Device struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Community string    `json:"community"`
	SysDescr  string    `json:"sys_descr,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Interface is one row discovered from a device's interface table.
type Interface struct {
	ID          int64  `json:"id"`
	DeviceID    int64  `json:"device_id"`
	IfIndex     int    `json:"if_index"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SpeedMbps   uint64 `json:"speed_mbps,omitempty"`
}
