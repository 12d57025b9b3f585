package config

import (
	"encoding/json"
	"fmt"
	"time"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// PingConfig holds the ICMP probe settings.
type PingConfig struct {
	Timeout    Duration `json:"timeout"`     // per-probe reply deadline
	RateLimit  int      `json:"rate_limit"`  // max echo requests per second
	ListenAddr string   `json:"listen_addr"` // e.g., "0.0.0.0"
}

// SNMPConfig holds the defaults applied to device sessions.
type SNMPConfig struct {
	Port    uint16   `json:"port"`
	Timeout Duration `json:"timeout"`
	Retries int      `json:"retries"`
}

// Config represents the netwatchd service configuration.
type Config struct {
	ListenAddr      string     `json:"listen_addr"` // e.g., :8090
	DBPath          string     `json:"db_path"`
	TickInterval    Duration   `json:"tick_interval"`
	ShutdownTimeout Duration   `json:"shutdown_timeout"`
	GraphPoints     int        `json:"graph_points"`   // live points kept per monitor
	RetentionDays   int        `json:"retention_days"` // event/metric history window
	Ping            PingConfig `json:"ping"`
	SNMP            SNMPConfig `json:"snmp"`
}

const (
	defaultListenAddr      = ":8090"
	defaultDBPath          = "/var/lib/netwatch/netwatch.db"
	defaultTickInterval    = 1 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultGraphPoints     = 60
	defaultRetentionDays   = 30
	defaultPingTimeout     = 1 * time.Second
	defaultPingRateLimit   = 50
	defaultSNMPPort        = 161
	defaultSNMPTimeout     = 5 * time.Second
	defaultSNMPRetries     = 3
)

// Validate fills in defaults for unset fields and rejects values the
// service cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}

	if c.TickInterval == 0 {
		c.TickInterval = Duration(defaultTickInterval)
	}

	if time.Duration(c.TickInterval) < 100*time.Millisecond {
		return fmt.Errorf("%w: tick_interval %s below 100ms", errInvalidConfig, time.Duration(c.TickInterval))
	}

	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = Duration(defaultShutdownTimeout)
	}

	if c.GraphPoints <= 0 {
		c.GraphPoints = defaultGraphPoints
	}

	if c.RetentionDays <= 0 {
		c.RetentionDays = defaultRetentionDays
	}

	if c.Ping.Timeout == 0 {
		c.Ping.Timeout = Duration(defaultPingTimeout)
	}

	if c.Ping.RateLimit <= 0 {
		c.Ping.RateLimit = defaultPingRateLimit
	}

	if c.Ping.ListenAddr == "" {
		c.Ping.ListenAddr = "0.0.0.0"
	}

	if c.SNMP.Port == 0 {
		c.SNMP.Port = defaultSNMPPort
	}

	if c.SNMP.Timeout == 0 {
		c.SNMP.Timeout = Duration(defaultSNMPTimeout)
	}

	if c.SNMP.Retries <= 0 {
		c.SNMP.Retries = defaultSNMPRetries
	}

	return nil
}
