package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"vigia/models"

	"github.com/sirupsen/logrus"
)

// ErrNoActiveTrip is the defined "no active trip" outcome of the
// active-trip-by-driver lookup. It is an expected absence, not a failure;
// no other endpoint maps 404 to it.
var ErrNoActiveTrip = errors.New("driver has no active trip")

// APIError is the single error surface for upstream failures. Transport
// errors and non-2xx responses both collapse into it; the dashboard only
// needs a human-readable message, not the distinction.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// FleetClient wraps the fleet monitoring REST backend. It owns request
// plumbing and error normalization only; record tolerance lives in the
// models' decoders.
type FleetClient struct {
	baseURL string
	http    *http.Client
}

func NewFleetClient(baseURL string, timeout time.Duration) *FleetClient {
	return &FleetClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// =================== DRIVERS ===================

func (fc *FleetClient) ListDrivers(ctx context.Context, limit int) ([]models.Driver, error) {
	var drivers []models.Driver
	err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/conductores/?limit=%d", limit), nil, &drivers)
	return drivers, err
}

func (fc *FleetClient) GetDriver(ctx context.Context, driverID int) (*models.Driver, error) {
	var driver models.Driver
	if err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/conductores/%d", driverID), nil, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (fc *FleetClient) CreateDriver(ctx context.Context, req models.CreateDriverRequest) (*models.Driver, error) {
	body := map[string]interface{}{
		"nombre": req.Name,
		"activo": true,
	}
	if req.Active != nil {
		body["activo"] = *req.Active
	}
	if req.MedicalCondition != nil {
		body["condicion_medica"] = *req.MedicalCondition
	}
	if req.RiskSchedule != nil {
		body["horario_riesgo"] = *req.RiskSchedule
	}

	var driver models.Driver
	if err := fc.do(ctx, http.MethodPost, "/conductores/", body, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// UpdateDriver sends only the fields present in the request, matching the
// backend's partial-update contract.
func (fc *FleetClient) UpdateDriver(ctx context.Context, driverID int, req models.UpdateDriverRequest) (*models.Driver, error) {
	body := map[string]interface{}{}
	if req.Name != nil {
		body["nombre"] = *req.Name
	}
	if req.MedicalCondition != nil {
		body["condicion_medica"] = *req.MedicalCondition
	}
	if req.RiskSchedule != nil {
		body["horario_riesgo"] = *req.RiskSchedule
	}
	if req.Active != nil {
		body["activo"] = *req.Active
	}

	var driver models.Driver
	if err := fc.do(ctx, http.MethodPut, fmt.Sprintf("/conductores/%d", driverID), body, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (fc *FleetClient) DeleteDriver(ctx context.Context, driverID int) error {
	return fc.do(ctx, http.MethodDelete, fmt.Sprintf("/conductores/%d", driverID), nil, nil)
}

// =================== TRIPS ===================

func (fc *FleetClient) ListTrips(ctx context.Context, skip, limit int, driverID *int) ([]models.Trip, error) {
	params := url.Values{}
	params.Set("skip", strconv.Itoa(skip))
	params.Set("limit", strconv.Itoa(limit))
	if driverID != nil {
		params.Set("conductor_id", strconv.Itoa(*driverID))
	}

	var trips []models.Trip
	err := fc.do(ctx, http.MethodGet, "/viajes/?"+params.Encode(), nil, &trips)
	return trips, err
}

func (fc *FleetClient) GetTrip(ctx context.Context, tripID int) (*models.Trip, error) {
	var trip models.Trip
	if err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/viajes/%d", tripID), nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// ActiveTripByDriver looks up the driver's in-progress trip. A 404 here
// means "no active trip" and surfaces as ErrNoActiveTrip.
func (fc *FleetClient) ActiveTripByDriver(ctx context.Context, driverID int) (*models.Trip, error) {
	var trip models.Trip
	err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/viajes/conductor/%d/activo", driverID), nil, &trip)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrNoActiveTrip
		}
		return nil, err
	}
	return &trip, nil
}

func (fc *FleetClient) StartTrip(ctx context.Context, req models.StartTripRequest) (*models.Trip, error) {
	body := map[string]interface{}{"id_conductor": req.DriverID}
	if req.VehicleID != nil {
		body["id_vehiculo"] = *req.VehicleID
	}

	var trip models.Trip
	if err := fc.do(ctx, http.MethodPost, "/viajes/", body, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (fc *FleetClient) FinalizeTrip(ctx context.Context, tripID int) (*models.Trip, error) {
	body := models.FinalizeTripRequest{EndTime: models.NowEndTime()}

	var trip models.Trip
	if err := fc.do(ctx, http.MethodPut, fmt.Sprintf("/viajes/%d/finalizar", tripID), body, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (fc *FleetClient) TripStats(ctx context.Context, tripID int) (*models.TripStats, error) {
	var stats models.TripStats
	if err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/viajes/%d/estadisticas", tripID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// =================== ALERTS ===================

func (fc *FleetClient) RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/alertas/recientes?limit=%d", limit), nil, &alerts)
	return alerts, err
}

func (fc *FleetClient) AlertsByTrip(ctx context.Context, tripID int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/alertas/?viaje_id=%d", tripID), nil, &alerts)
	return alerts, err
}

// =================== VEHICLES ===================

func (fc *FleetClient) ListVehicles(ctx context.Context, skip, limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := fc.do(ctx, http.MethodGet, fmt.Sprintf("/vehiculos/?skip=%d&limit=%d", skip, limit), nil, &vehicles)
	return vehicles, err
}

func (fc *FleetClient) CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	body := map[string]interface{}{"nombre": req.Name}
	if req.Plate != nil {
		body["placa"] = *req.Plate
	}

	var vehicle models.Vehicle
	if err := fc.do(ctx, http.MethodPost, "/vehiculos/", body, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// =================== REQUEST PLUMBING ===================

func (fc *FleetClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{StatusCode: 0, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fc.baseURL+path, reader)
	if err != nil {
		return &APIError{StatusCode: 0, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := fc.http.Do(req)
	if err != nil {
		return &APIError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    parseErrorBody(resp),
		}
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("Upstream request failed: ", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// parseErrorBody extracts a human-readable message from an error
// response: the JSON body's "detail" field when present, else the raw
// body, else a generic "Error <status>".
func parseErrorBody(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Sprintf("Error %d", resp.StatusCode)
	}

	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return string(raw)
}
