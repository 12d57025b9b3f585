// Package api pkg/api/devices.go

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/models"
)

const defaultCommunity = "public"

func (s *Server) listDevices(w http.ResponseWriter, _ *http.Request) {
	devices, err := s.store.GetDevices()
	if err != nil {
		log.Printf("Error listing devices: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list devices")

		return
	}

	if devices == nil {
		devices = []models.Device{}
	}

	writeJSON(w, http.StatusOK, devices)
}

// createDevice validates the device over SNMP before storing it, then
// runs an initial interface discovery so bandwidth monitors can be set
// up right away.
func (s *Server) createDevice(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Address == "" {
		writeError(w, http.StatusBadRequest, "device address is required")
		return
	}

	if req.Name == "" {
		req.Name = req.Address
	}

	if req.Community == "" {
		req.Community = defaultCommunity
	}

	sysDescr, err := s.discoverer.Validate(r.Context(), req.Address, req.Community)
	if err != nil {
		log.Printf("Error validating device %s: %v", req.Address, err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("SNMP validation failed for %s", req.Address))

		return
	}

	device := &models.Device{
		Name:      req.Name,
		Address:   req.Address,
		Community: req.Community,
		SysDescr:  sysDescr,
	}

	id, err := s.store.AddDevice(device)
	if err != nil {
		if errors.Is(err, db.ErrDeviceExists) {
			writeError(w, http.StatusConflict, fmt.Sprintf("device %s already exists", req.Address))
			return
		}

		log.Printf("Error storing device %s: %v", req.Address, err)
		writeError(w, http.StatusInternalServerError, "failed to store device")

		return
	}

	device.ID = id

	ifaces := s.refreshInterfaces(r, device)

	writeJSON(w, http.StatusCreated, deviceResponse{Device: *device, Interfaces: ifaces})
}

func (s *Server) deleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid device id")
		return
	}

	removed, err := s.store.DeleteDevice(id)
	if err != nil {
		log.Printf("Error deleting device %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete device")

		return
	}

	// Monitors that polled the deleted device's interfaces were removed
	// from storage; drop their live entries and graph buffers too.
	for _, monitorID := range removed {
		s.engine.Remove(monitorID)
		s.collector.Remove(monitorID)
	}

	if removed == nil {
		removed = []int64{}
	}

	writeJSON(w, http.StatusOK, deleteDeviceResponse{Status: "deleted", RemovedMonitors: removed})
}

// listInterfaces serves the cached interface rows, running a discovery
// walk first when the cache is empty.
func (s *Server) listInterfaces(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid device id")
		return
	}

	device, err := s.store.GetDevice(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "device not found")
			return
		}

		log.Printf("Error loading device %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load device")

		return
	}

	ifaces, err := s.store.GetInterfaces(id)
	if err != nil {
		log.Printf("Error listing interfaces for device %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to list interfaces")

		return
	}

	if len(ifaces) == 0 {
		ifaces = s.refreshInterfaces(r, device)
	}

	if ifaces == nil {
		ifaces = []models.Interface{}
	}

	writeJSON(w, http.StatusOK, ifaces)
}

// discoverDevice forces a fresh interface walk, replacing the cached
// rows.
func (s *Server) discoverDevice(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid device id")
		return
	}

	device, err := s.store.GetDevice(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "device not found")
			return
		}

		log.Printf("Error loading device %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load device")

		return
	}

	discovered, err := s.discoverer.DiscoverInterfaces(r.Context(), device.Address, device.Community)
	if err != nil {
		log.Printf("Error discovering interfaces on %s: %v", device.Address, err)
		writeError(w, http.StatusBadGateway, fmt.Sprintf("interface discovery failed for %s", device.Address))

		return
	}

	if err := s.store.ReplaceInterfaces(id, discovered); err != nil {
		log.Printf("Error storing interfaces for device %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to store interfaces")

		return
	}

	ifaces, err := s.store.GetInterfaces(id)
	if err != nil {
		log.Printf("Error listing interfaces for device %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to list interfaces")

		return
	}

	if ifaces == nil {
		ifaces = []models.Interface{}
	}

	writeJSON(w, http.StatusOK, ifaces)
}

// refreshInterfaces walks the device and swaps the cached rows,
// returning whatever ends up stored. Discovery failures leave the
// cache alone; the device stays usable for ping monitoring.
func (s *Server) refreshInterfaces(r *http.Request, device *models.Device) []models.Interface {
	discovered, err := s.discoverer.DiscoverInterfaces(r.Context(), device.Address, device.Community)
	if err != nil {
		log.Printf("Error discovering interfaces on %s: %v", device.Address, err)
		return nil
	}

	if err := s.store.ReplaceInterfaces(device.ID, discovered); err != nil {
		log.Printf("Error storing interfaces for device %d: %v", device.ID, err)
		return nil
	}

	ifaces, err := s.store.GetInterfaces(device.ID)
	if err != nil {
		log.Printf("Error listing interfaces for device %d: %v", device.ID, err)
		return nil
	}

	return ifaces
}
