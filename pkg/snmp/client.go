// Package snmp pkg/snmp/client.go

package snmp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/netwatch/pkg/models"
)

// Client performs SNMP v2c reads against managed devices. Sessions are
// opened per call; SNMP runs over UDP so there is no handshake to
// amortize, and per-call sessions keep the client free of per-device
// connection state.
type Client struct {
	cfg ClientConfig
}

// SNMPError wraps SNMP-specific errors with additional context.
type SNMPError struct {
	Op      string
	Target  string
	Wrapped error
}

func (e *SNMPError) Error() string {
	return fmt.Sprintf("SNMP %s failed for target %s: %v", e.Op, e.Target, e.Wrapped)
}

func (e *SNMPError) Unwrap() error {
	return e.Wrapped
}

// NewClient returns a Client with unset config fields defaulted.
func NewClient(cfg ClientConfig) *Client {
	def := DefaultClientConfig()

	if cfg.Port == 0 {
		cfg.Port = def.Port
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}

	if cfg.Retries == 0 {
		cfg.Retries = def.Retries
	}

	return &Client{cfg: cfg}
}

// session builds a connected gosnmp session for one device.
func (c *Client) session(ctx context.Context, address, community string) (*gosnmp.GoSNMP, error) {
	if address == "" {
		return nil, ErrTargetHostRequired
	}

	conn := &gosnmp.GoSNMP{
		Context:            ctx,
		Target:             address,
		Port:               c.cfg.Port,
		Community:          community,
		Version:            gosnmp.Version2c,
		Timeout:            c.cfg.Timeout,
		Retries:            c.cfg.Retries,
		ExponentialTimeout: true,
		MaxOids:            gosnmp.MaxOids,
	}

	if err := conn.Connect(); err != nil {
		return nil, &SNMPError{Op: "connect", Target: address, Wrapped: err}
	}

	return conn, nil
}

// ReadCounters fetches the HC octet counters for the given interface
// indexes in one request batch. Indexes the device does not answer for
// are absent from the returned map; the caller decides whether that is
// an error.
func (c *Client) ReadCounters(ctx context.Context, address, community string, ifIndexes []int) (map[int]models.CounterSample, error) {
	conn, err := c.session(ctx, address, community)
	if err != nil {
		return nil, err
	}
	defer conn.Conn.Close()

	oids := make([]string, 0, len(ifIndexes)*2)
	for _, idx := range ifIndexes {
		oids = append(oids,
			fmt.Sprintf("%s.%d", oidIfHCInOctets, idx),
			fmt.Sprintf("%s.%d", oidIfHCOutOct, idx))
	}

	samples := make(map[int]models.CounterSample)

	for i := 0; i < len(oids); i += gosnmp.MaxOids {
		end := i + gosnmp.MaxOids
		if end > len(oids) {
			end = len(oids)
		}

		result, err := conn.Get(oids[i:end])
		if err != nil {
			return nil, &SNMPError{Op: "get", Target: address, Wrapped: err}
		}

		capturedAt := time.Now()
		ins := make(map[int]uint64)
		outs := make(map[int]uint64)

		for _, variable := range result.Variables {
			value, ok := counterValue(variable)
			if !ok {
				// NoSuchInstance and friends: the index is simply absent.
				continue
			}

			if idx, ok := indexFromOID(variable.Name, oidIfHCInOctets); ok {
				ins[idx] = value
				continue
			}

			if idx, ok := indexFromOID(variable.Name, oidIfHCOutOct); ok {
				outs[idx] = value
			}
		}

		// A sample needs both directions; an index answering only one
		// column would otherwise produce a phantom rate of zero.
		for idx, in := range ins {
			out, ok := outs[idx]
			if !ok {
				continue
			}

			samples[idx] = models.CounterSample{
				InOctets:   in,
				OutOctets:  out,
				CapturedAt: capturedAt,
			}
		}
	}

	return samples, nil
}

// Validate checks that a device answers SNMP at all by fetching
// sysDescr, returning the description on success.
func (c *Client) Validate(ctx context.Context, address, community string) (string, error) {
	conn, err := c.session(ctx, address, community)
	if err != nil {
		return "", err
	}
	defer conn.Conn.Close()

	result, err := conn.Get([]string{oidSysDescr})
	if err != nil {
		return "", &SNMPError{Op: "get", Target: address, Wrapped: err}
	}

	for _, variable := range result.Variables {
		if variable.Type == gosnmp.OctetString {
			return string(variable.Value.([]byte)), nil
		}
	}

	return "", &SNMPError{Op: "get", Target: address, Wrapped: ErrNoSysDescr}
}

// counterValue extracts an octet counter from a PDU. HC columns are
// Counter64; Counter32/Gauge32 are accepted for devices that alias the
// columns.
func counterValue(variable gosnmp.SnmpPDU) (uint64, bool) {
	switch variable.Type {
	case gosnmp.Counter64:
		return variable.Value.(uint64), true
	case gosnmp.Counter32, gosnmp.Gauge32:
		return uint64(variable.Value.(uint)), true
	default:
		return 0, false
	}
}

// indexFromOID extracts the interface index from a column instance OID,
// e.g. ".1.3.6.1.2.1.31.1.1.1.6.4" with base ifHCInOctets yields 4.
func indexFromOID(name, base string) (int, bool) {
	rest, found := strings.CutPrefix(strings.TrimPrefix(name, "."), base+".")
	if !found {
		return 0, false
	}

	idx, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}

	return idx, true
}
