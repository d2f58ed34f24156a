package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/joglo66/fleet-backend/internal/fleet"
	"github.com/joglo66/fleet-backend/internal/store"
)

// Window is the trailing period used for cost and mileage aggregation.
const Window = 30 * 24 * time.Hour

// Stats is the point-in-time fleet snapshot. Field names match the wire
// contract the frontend consumes.
type Stats struct {
	TotalVehicles         int64   `json:"totalVehicles"`
	ActiveVehicles        int64   `json:"activeVehicles"`
	MaintenanceVehicles   int64   `json:"maintenanceVehicles"`
	TotalDrivers          int64   `json:"totalDrivers"`
	ActiveDrivers         int64   `json:"activeDrivers"`
	PendingWorkOrders     int64   `json:"pendingWorkOrders"`
	CompletedWorkOrders   int64   `json:"completedWorkOrders"`
	TotalAlerts           int64   `json:"totalAlerts"`
	MonthlyFuelCost       float64 `json:"monthlyFuelCost"`
	MonthlyMaintenanceCost float64 `json:"monthlyMaintenanceCost"`
	AvgFuelEfficiency     float64 `json:"avgFuelEfficiency"`
	TotalMileageThisMonth int     `json:"totalMileageThisMonth"`
}

// Service recomputes every metric from the stores on each call; nothing is
// cached between requests.
type Service struct {
	Vehicles    store.Store[fleet.Vehicle]
	Drivers     store.Store[fleet.Driver]
	WorkOrders  store.Store[fleet.WorkOrder]
	Alerts      store.Store[fleet.Alert]
	Fuel        store.Store[fleet.FuelLog]
	Maintenance store.Store[fleet.MaintenanceRecord]
}

func NewService(h *fleet.Handler) *Service {
	return &Service{
		Vehicles:    h.Vehicles,
		Drivers:     h.Drivers,
		WorkOrders:  h.WorkOrders,
		Alerts:      h.Alerts,
		Fuel:        h.Fuel,
		Maintenance: h.Maintenance,
	}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	var err error

	if st.TotalVehicles, err = s.Vehicles.Count(ctx); err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	if st.ActiveVehicles, err = s.Vehicles.CountWhere(ctx, "status", "Active"); err != nil {
		return nil, fmt.Errorf("count active vehicles: %w", err)
	}
	if st.MaintenanceVehicles, err = s.Vehicles.CountWhere(ctx, "status", "Maintenance"); err != nil {
		return nil, fmt.Errorf("count maintenance vehicles: %w", err)
	}
	if st.TotalDrivers, err = s.Drivers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}
	if st.ActiveDrivers, err = s.Drivers.CountWhere(ctx, "status", "Active"); err != nil {
		return nil, fmt.Errorf("count active drivers: %w", err)
	}
	if st.PendingWorkOrders, err = s.WorkOrders.CountWhere(ctx, "status", "Pending"); err != nil {
		return nil, fmt.Errorf("count pending work orders: %w", err)
	}
	if st.CompletedWorkOrders, err = s.WorkOrders.CountWhere(ctx, "status", "Completed"); err != nil {
		return nil, fmt.Errorf("count completed work orders: %w", err)
	}
	if st.TotalAlerts, err = s.Alerts.CountWhere(ctx, "status", "Active"); err != nil {
		return nil, fmt.Errorf("count active alerts: %w", err)
	}

	since := time.Now().UTC().Add(-Window)

	fuelLogs, err := s.Fuel.ListSince(ctx, "date", since)
	if err != nil {
		return nil, fmt.Errorf("fuel window: %w", err)
	}
	var totalFuel, totalOdometer float64
	for _, l := range fuelLogs {
		st.MonthlyFuelCost += l.Cost
		totalFuel += l.Quantity
		totalOdometer += float64(l.Odometer)
	}

	records, err := s.Maintenance.ListSince(ctx, "date", since)
	if err != nil {
		return nil, fmt.Errorf("maintenance window: %w", err)
	}
	for _, r := range records {
		st.MonthlyMaintenanceCost += r.Cost
	}

	// zero logs and zero quantity both report efficiency 0: "no data" and
	// "zero efficiency" are deliberately conflated
	if len(fuelLogs) > 0 && totalFuel > 0 {
		st.AvgFuelEfficiency = math.Round(totalOdometer/totalFuel*100) / 100
	}
	st.TotalMileageThisMonth = int(totalOdometer)

	return st, nil
}
