package snmp

import (
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	tests := []struct {
		name        string
		cfg         ClientConfig
		wantPort    uint16
		wantTimeout time.Duration
		wantRetries int
	}{
		{
			name:        "empty config gets defaults",
			cfg:         ClientConfig{},
			wantPort:    161,
			wantTimeout: 5 * time.Second,
			wantRetries: 3,
		},
		{
			name: "explicit values kept",
			cfg: ClientConfig{
				Port:    1161,
				Timeout: 2 * time.Second,
				Retries: 1,
			},
			wantPort:    1161,
			wantTimeout: 2 * time.Second,
			wantRetries: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.cfg)
			assert.Equal(t, tt.wantPort, c.cfg.Port)
			assert.Equal(t, tt.wantTimeout, c.cfg.Timeout)
			assert.Equal(t, tt.wantRetries, c.cfg.Retries)
		})
	}
}

func TestIndexFromOID(t *testing.T) {
	tests := []struct {
		name      string
		oid       string
		base      string
		wantIndex int
		wantOK    bool
	}{
		{
			name:      "in octets with leading dot",
			oid:       ".1.3.6.1.2.1.31.1.1.1.6.4",
			base:      oidIfHCInOctets,
			wantIndex: 4,
			wantOK:    true,
		},
		{
			name:      "out octets without leading dot",
			oid:       "1.3.6.1.2.1.31.1.1.1.10.12",
			base:      oidIfHCOutOct,
			wantIndex: 12,
			wantOK:    true,
		},
		{
			name:   "wrong column",
			oid:    ".1.3.6.1.2.1.31.1.1.1.10.12",
			base:   oidIfHCInOctets,
			wantOK: false,
		},
		{
			name:   "trailing garbage",
			oid:    ".1.3.6.1.2.1.31.1.1.1.6.4.1",
			base:   oidIfHCInOctets,
			wantOK: false,
		},
		{
			name:   "base itself",
			oid:    ".1.3.6.1.2.1.31.1.1.1.6",
			base:   oidIfHCInOctets,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := indexFromOID(tt.oid, tt.base)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantIndex, idx)
			}
		})
	}
}

func TestCounterValue(t *testing.T) {
	tests := []struct {
		name      string
		pdu       gosnmp.SnmpPDU
		wantValue uint64
		wantOK    bool
	}{
		{
			name:      "counter64",
			pdu:       gosnmp.SnmpPDU{Type: gosnmp.Counter64, Value: uint64(18446744073709551615)},
			wantValue: 18446744073709551615,
			wantOK:    true,
		},
		{
			name:      "counter32",
			pdu:       gosnmp.SnmpPDU{Type: gosnmp.Counter32, Value: uint(4294967295)},
			wantValue: 4294967295,
			wantOK:    true,
		},
		{
			name:      "gauge32",
			pdu:       gosnmp.SnmpPDU{Type: gosnmp.Gauge32, Value: uint(1000)},
			wantValue: 1000,
			wantOK:    true,
		},
		{
			name:   "no such instance",
			pdu:    gosnmp.SnmpPDU{Type: gosnmp.NoSuchInstance},
			wantOK: false,
		},
		{
			name:   "octet string",
			pdu:    gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte("eth0")},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := counterValue(tt.pdu)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestSNMPErrorWrapping(t *testing.T) {
	err := &SNMPError{Op: "get", Target: "192.168.1.1", Wrapped: ErrNoSysDescr}

	assert.Contains(t, err.Error(), "get")
	assert.Contains(t, err.Error(), "192.168.1.1")
	assert.ErrorIs(t, err, ErrNoSysDescr)
}
