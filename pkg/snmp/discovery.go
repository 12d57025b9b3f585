// Package snmp pkg/snmp/discovery.go

package snmp

import (
	"context"
	"sort"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/netwatch/pkg/models"
)

// DiscoverInterfaces walks the IF-MIB name, alias and speed columns and
// merges the rows by interface index. DeviceID is left for the caller
// to fill in.
func (c *Client) DiscoverInterfaces(ctx context.Context, address, community string) ([]models.Interface, error) {
	conn, err := c.session(ctx, address, community)
	if err != nil {
		return nil, err
	}
	defer conn.Conn.Close()

	rows := make(map[int]*models.Interface)

	row := func(idx int) *models.Interface {
		if r, ok := rows[idx]; ok {
			return r
		}

		r := &models.Interface{IfIndex: idx}
		rows[idx] = r

		return r
	}

	err = conn.BulkWalk(oidIfName, func(pdu gosnmp.SnmpPDU) error {
		if idx, ok := indexFromOID(pdu.Name, oidIfName); ok {
			if b, ok := pdu.Value.([]byte); ok {
				row(idx).Name = string(b)
			}
		}

		return nil
	})
	if err != nil {
		return nil, &SNMPError{Op: "walk ifName", Target: address, Wrapped: err}
	}

	err = conn.BulkWalk(oidIfAlias, func(pdu gosnmp.SnmpPDU) error {
		if idx, ok := indexFromOID(pdu.Name, oidIfAlias); ok {
			if b, ok := pdu.Value.([]byte); ok {
				row(idx).Description = string(b)
			}
		}

		return nil
	})
	if err != nil {
		return nil, &SNMPError{Op: "walk ifAlias", Target: address, Wrapped: err}
	}

	err = conn.BulkWalk(oidIfHighSpeed, func(pdu gosnmp.SnmpPDU) error {
		if idx, ok := indexFromOID(pdu.Name, oidIfHighSpeed); ok {
			if speed, ok := counterValue(pdu); ok {
				row(idx).SpeedMbps = speed
			}
		}

		return nil
	})
	if err != nil {
		return nil, &SNMPError{Op: "walk ifHighSpeed", Target: address, Wrapped: err}
	}

	// Older gear reports zero in ifHighSpeed; fall back to the 32-bit
	// ifSpeed column (bits per second) for rows we already know about.
	err = conn.BulkWalk(oidIfSpeed, func(pdu gosnmp.SnmpPDU) error {
		if idx, ok := indexFromOID(pdu.Name, oidIfSpeed); ok {
			r, known := rows[idx]
			if !known || r.SpeedMbps != 0 {
				return nil
			}

			if speed, ok := counterValue(pdu); ok {
				r.SpeedMbps = speed / 1000000
			}
		}

		return nil
	})
	if err != nil {
		return nil, &SNMPError{Op: "walk ifSpeed", Target: address, Wrapped: err}
	}

	ifaces := make([]models.Interface, 0, len(rows))
	for _, r := range rows {
		ifaces = append(ifaces, *r)
	}

	sort.Slice(ifaces, func(i, j int) bool { return ifaces[i].IfIndex < ifaces[j].IfIndex })

	return ifaces, nil
}
