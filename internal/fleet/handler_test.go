package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*gin.Engine, *Handler) {
	gin.SetMode(gin.TestMode)
	h := NewMemoryHandler()
	r := gin.New()
	api := r.Group("/api")
	h.Register(api)
	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestVehicleLifecycle(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", VehicleCreate{
		Plate: "B-1234-XY", Brand: "Toyota", Model: "HiAce", Type: "Van",
		Year: 2022, Mileage: 40000, FuelType: "Diesel",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[Vehicle](t, w)
	assert.NotEmpty(t, created.VehicleID)
	assert.Equal(t, "Active", created.Status)
	assert.NotNil(t, created.Photos)
	assert.NotNil(t, created.Documents)
	assert.False(t, created.CreatedAt.IsZero())

	// Fetch returns exactly what create returned, server fields included.
	w = doJSON(t, r, http.MethodGet, "/api/vehicles/"+created.VehicleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[Vehicle](t, w)
	assert.Equal(t, created, got)

	w = doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]Vehicle](t, w), 1)

	// Update replaces payload fields and keeps id and created_at.
	w = doJSON(t, r, http.MethodPut, "/api/vehicles/"+created.VehicleID, VehicleCreate{
		Plate: "B-1234-XY", Brand: "Toyota", Model: "HiAce", Type: "Van",
		Year: 2022, Mileage: 45000, FuelType: "Diesel", Status: "Maintenance",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[Vehicle](t, w)
	assert.Equal(t, created.VehicleID, updated.VehicleID)
	assert.Equal(t, 45000, updated.Mileage)
	assert.Equal(t, "Maintenance", updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	w = doJSON(t, r, http.MethodDelete, "/api/vehicles/"+created.VehicleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted successfully")

	w = doJSON(t, r, http.MethodGet, "/api/vehicles/"+created.VehicleID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/vehicles/"+created.VehicleID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleUpdateClearsOptionalFields(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", VehicleCreate{
		Plate: "B-1234-XY", Brand: "Toyota", Model: "HiAce", Type: "Van",
		Year: 2022, Mileage: 40000, FuelType: "Diesel",
		VIN: "VIN-123", Color: "White", RegistrationExpiry: "2027-06-30",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[Vehicle](t, w)

	// A full replace with emptied optionals must clear them, not keep the
	// stale values.
	w = doJSON(t, r, http.MethodPut, "/api/vehicles/"+created.VehicleID, VehicleCreate{
		Plate: "B-1234-XY", Brand: "Toyota", Model: "HiAce", Type: "Van",
		Year: 2022, Mileage: 40000, FuelType: "Diesel", Status: "Active",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/vehicles/"+created.VehicleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[Vehicle](t, w)
	assert.Empty(t, got.VIN)
	assert.Empty(t, got.Color)
	assert.Empty(t, got.RegistrationExpiry)
}

func TestWorkOrderUpdateClearsCompletedDate(t *testing.T) {
	r, _ := newTestRouter()

	done := time.Now().UTC().Truncate(time.Second)
	w := doJSON(t, r, http.MethodPost, "/api/work-orders", WorkOrderCreate{
		VehicleID: "veh_1", Status: "Completed", Priority: "High",
		Description: "Replace brake pads", ScheduledDate: time.Now().UTC(),
		CompletedDate: &done,
	})
	require.Equal(t, http.StatusOK, w.Code)
	wo := decode[WorkOrder](t, w)
	require.NotNil(t, wo.CompletedDate)

	// Reopening the order drops the completion timestamp.
	w = doJSON(t, r, http.MethodPut, "/api/work-orders/"+wo.OrderID, WorkOrderCreate{
		VehicleID: "veh_1", Status: "In Progress", Priority: "High",
		Description: "Replace brake pads", ScheduledDate: wo.ScheduledDate,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[WorkOrder](t, w).CompletedDate)
}

func TestUnknownIDsReturn404(t *testing.T) {
	r, _ := newTestRouter()

	for _, path := range []string{
		"/api/vehicles/veh_missing",
		"/api/drivers/drv_missing",
		"/api/maintenance/mnt_missing",
		"/api/work-orders/wo_missing",
		"/api/fuel/fuel_missing",
		"/api/parts/prt_missing",
		"/api/tires/tire_missing",
		"/api/inspections/insp_missing",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "not found", path)
	}
}

func TestDriverAssignments(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/drivers", DriverCreate{
		Name: "Budi", LicenseNumber: "SIM-001", LicenseExpiry: "2027-01-01", Phone: "0812",
	})
	require.Equal(t, http.StatusOK, w.Code)
	drv := decode[Driver](t, w)
	assert.Equal(t, "Active", drv.Status)

	// driver_id is taken from the path when the payload leaves it empty.
	w = doJSON(t, r, http.MethodPost, "/api/drivers/"+drv.DriverID+"/assignments", DriverAssignmentCreate{
		VehicleID: "veh_1", StartDate: time.Now().UTC(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	asn := decode[DriverAssignment](t, w)
	assert.Equal(t, drv.DriverID, asn.DriverID)
	assert.NotEmpty(t, asn.AssignmentID)

	// A second assignment for another driver stays out of the listing.
	w = doJSON(t, r, http.MethodPost, "/api/drivers/drv_other/assignments", DriverAssignmentCreate{
		VehicleID: "veh_2", StartDate: time.Now().UTC(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/drivers/"+drv.DriverID+"/assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]DriverAssignment](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, asn.AssignmentID, list[0].AssignmentID)
}

func TestFuelLogCostPerKm(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/fuel", FuelLogCreate{
		VehicleID: "veh_1", Date: time.Now().UTC(),
		Quantity: 40, Cost: 615000, Odometer: 40250, FuelType: "Diesel",
	})
	require.Equal(t, http.StatusOK, w.Code)
	log := decode[FuelLog](t, w)
	assert.Equal(t, 15375.0, log.CostPerKm)

	// Caller-supplied value wins over derivation.
	w = doJSON(t, r, http.MethodPost, "/api/fuel", FuelLogCreate{
		VehicleID: "veh_1", Date: time.Now().UTC(),
		Quantity: 40, Cost: 615000, Odometer: 40500, FuelType: "Diesel", CostPerKm: 1.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.5, decode[FuelLog](t, w).CostPerKm)

	// Zero quantity skips derivation instead of dividing by zero.
	w = doJSON(t, r, http.MethodPost, "/api/fuel", FuelLogCreate{
		VehicleID: "veh_1", Date: time.Now().UTC(),
		Quantity: 0, Cost: 100, Odometer: 40600, FuelType: "Diesel",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[FuelLog](t, w).CostPerKm)
}

func TestPartUpdateRecomputesTimestamp(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/parts", PartCreate{
		Name: "Oil filter", PartNumber: "OF-90915", Quantity: 12, MinStock: 4, Cost: 55000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[Part](t, w)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	time.Sleep(5 * time.Millisecond)
	w = doJSON(t, r, http.MethodPut, "/api/parts/"+p.PartID, PartCreate{
		Name: "Oil filter", PartNumber: "OF-90915", Quantity: 9, MinStock: 4, Cost: 55000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	upd := decode[Part](t, w)
	assert.Equal(t, 9, upd.Quantity)
	assert.Equal(t, p.CreatedAt, upd.CreatedAt)
	assert.True(t, upd.UpdatedAt.After(p.UpdatedAt))
}

func TestInspectionApprove(t *testing.T) {
	r, h := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/inspections", InspectionCreate{
		VehicleID: "veh_1", DriverID: "drv_1", Type: "Pre-Trip", Date: time.Now().UTC(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	ins := decode[Inspection](t, w)
	assert.Equal(t, "Pending", ins.Status)
	assert.NotNil(t, ins.Checklist)
	assert.NotNil(t, ins.Photos)

	w = doJSON(t, r, http.MethodPost, "/api/inspections/"+ins.InspectionID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := h.Inspections.Get(context.Background(), ins.InspectionID)
	require.NoError(t, err)
	assert.Equal(t, "Approved", got.Status)

	w = doJSON(t, r, http.MethodPost, "/api/inspections/insp_missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlertStatusTransitions(t *testing.T) {
	r, h := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/alerts", AlertCreate{
		Type: "ServiceDue", VehicleID: "veh_1", Message: "Service due at 45000 km", Priority: "High",
	})
	require.Equal(t, http.StatusOK, w.Code)
	a := decode[Alert](t, w)
	assert.Equal(t, "Active", a.Status)
	assert.Nil(t, a.ResolvedAt)

	// A non-resolving status leaves resolved_at unset.
	w = doJSON(t, r, http.MethodPut, "/api/alerts/"+a.AlertID+"?status=Active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got, err := h.Alerts.Get(context.Background(), a.AlertID)
	require.NoError(t, err)
	assert.Nil(t, got.ResolvedAt)

	// Resolving stamps resolved_at.
	w = doJSON(t, r, http.MethodPut, "/api/alerts/"+a.AlertID+"?status=Resolved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got, err = h.Alerts.Get(context.Background(), a.AlertID)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", got.Status)
	require.NotNil(t, got.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *got.ResolvedAt, time.Minute)

	// Status may also arrive in the body.
	w = doJSON(t, r, http.MethodPut, "/api/alerts/"+a.AlertID, map[string]string{"status": "Dismissed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/alerts/"+a.AlertID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/alerts/alt_missing?status=Resolved", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaintenanceCreateAndDelete(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/maintenance", MaintenanceRecordCreate{
		VehicleID: "veh_1", ServiceType: "Oil Change", Date: time.Now().UTC(),
		Mileage: 41000, Cost: 350000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[MaintenanceRecord](t, w)
	assert.NotEmpty(t, rec.RecordID)
	assert.NotNil(t, rec.Parts)

	w = doJSON(t, r, http.MethodDelete, "/api/maintenance/"+rec.RecordID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/maintenance/"+rec.RecordID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkOrderDefaults(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/work-orders", WorkOrderCreate{
		VehicleID: "veh_1", Priority: "High", Description: "Replace brake pads",
		ScheduledDate: time.Now().UTC(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	wo := decode[WorkOrder](t, w)
	assert.Equal(t, "Pending", wo.Status)
	assert.NotEmpty(t, wo.OrderID)
}

func TestTireDefaults(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/tires", TireCreate{
		VehicleID: "veh_1", Position: "Front Left", Brand: "Bridgestone", Size: "195/70R15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tire := decode[Tire](t, w)
	assert.Equal(t, "Active", tire.Status)
	assert.NotEmpty(t, tire.TireID)
}
