package snmp

import "time"

// Well-known IF-MIB object identifiers. Counter reads use the 64-bit
// HC columns; devices without them are not supported for bandwidth
// monitoring.
const (
	oidSysDescr     = "1.3.6.1.2.1.1.1.0"
	oidIfName       = "1.3.6.1.2.1.31.1.1.1.1"
	oidIfSpeed      = "1.3.6.1.2.1.2.2.1.5"
	oidIfHighSpeed  = "1.3.6.1.2.1.31.1.1.1.15"
	oidIfAlias      = "1.3.6.1.2.1.31.1.1.1.18"
	oidIfHCInOctets = "1.3.6.1.2.1.31.1.1.1.6"
	oidIfHCOutOct   = "1.3.6.1.2.1.31.1.1.1.10"
)

// ClientConfig carries the session defaults applied to every device.
type ClientConfig struct {
	Port    uint16        `json:"port"`
	Timeout time.Duration `json:"timeout"`
	Retries int           `json:"retries"`
}

// DefaultClientConfig returns the settings used when a field is unset.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Port:    161,
		Timeout: 5 * time.Second,
		Retries: 3,
	}
}
