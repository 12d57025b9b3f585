package snmp

import "errors"

var (
	ErrTargetHostRequired  = errors.New("target host is required")
	ErrSNMPConnect         = errors.New("SNMP connect failed")
	ErrSNMPGet             = errors.New("SNMP get failed")
	ErrSNMPWalk            = errors.New("SNMP walk failed")
	ErrUnsupportedSNMPType = errors.New("unsupported SNMP type")
	ErrNoSysDescr          = errors.New("device returned no sysDescr")
)
