// Package monitor pkg/monitor/builders.go

package monitor

import (
	"fmt"
	"strconv"

	"github.com/carverauto/netwatch/pkg/models"
)

// NewBuilders wires the kind-specific constructors to the probe
// capabilities they run on.
func NewBuilders(pinger Pinger, reader CounterReader, resolver InterfaceResolver) *BuilderRegistry {
	builders := NewBuilderRegistry()

	builders.Register(models.KindPing, func(conf *models.MonitorConfig) (Monitor, error) {
		return NewPingMonitor(conf, pinger)
	})

	builders.Register(models.KindBandwidth, func(conf *models.MonitorConfig) (Monitor, error) {
		if err := validateTarget(conf); err != nil {
			return nil, err
		}

		ifaceID, err := strconv.ParseInt(conf.Target, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bandwidth target %q is not an interface id", ErrInvalidTarget, conf.Target)
		}

		binding, err := resolver.GetInterfaceBinding(ifaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve interface %d: %w", ifaceID, err)
		}

		return NewBandwidthMonitor(conf, *binding, reader)
	})

	return builders
}
