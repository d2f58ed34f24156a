package fleet

import "time"

// Creation payloads carry everything the caller supplies; the full records
// embed them and add the server-assigned fields (id, created_at, defaulted
// list fields). vehicle_id/driver_id references are free strings; no
// referential integrity is enforced across collections.
//
// Payload bson tags carry no omitempty: updates replace every payload field,
// so an emptied optional must be written through, not dropped from the $set.

type VehicleCreate struct {
	Plate              string  `json:"plate" bson:"plate"`
	Brand              string  `json:"brand" bson:"brand"`
	Model              string  `json:"model" bson:"model"`
	Type               string  `json:"type" bson:"type"` // Car, Van, Bus, Truck
	Year               int     `json:"year" bson:"year"`
	VIN                string  `json:"vin,omitempty" bson:"vin"`
	Color              string  `json:"color,omitempty" bson:"color"`
	RegistrationExpiry string  `json:"registration_expiry,omitempty" bson:"registration_expiry"`
	Mileage            int     `json:"mileage" bson:"mileage"`
	FuelType           string  `json:"fuel_type" bson:"fuel_type"` // Petrol, Diesel, Electric, Hybrid
	OwnershipStatus    string  `json:"ownership_status" bson:"ownership_status"`
	Status             string  `json:"status" bson:"status"` // Active, Maintenance, Inactive
	TotalValue         float64 `json:"total_value" bson:"total_value"`
}

type Vehicle struct {
	VehicleCreate `bson:",inline"`
	VehicleID     string                   `json:"vehicle_id" bson:"vehicle_id"`
	Photos        []string                 `json:"photos" bson:"photos"`
	Documents     []map[string]interface{} `json:"documents" bson:"documents"`
	CreatedBy     string                   `json:"created_by" bson:"created_by"`
	CreatedAt     time.Time                `json:"created_at" bson:"created_at"`
}

type MaintenanceRecordCreate struct {
	VehicleID      string                   `json:"vehicle_id" bson:"vehicle_id"`
	ServiceType    string                   `json:"service_type" bson:"service_type"`
	Date           time.Time                `json:"date" bson:"date"`
	Mileage        int                      `json:"mileage" bson:"mileage"`
	Cost           float64                  `json:"cost" bson:"cost"`
	Parts          []map[string]interface{} `json:"parts" bson:"parts"`
	Technician     string                   `json:"technician,omitempty" bson:"technician"`
	WorkOrderID    string                   `json:"work_order_id,omitempty" bson:"work_order_id"`
	WarrantyExpiry *time.Time               `json:"warranty_expiry,omitempty" bson:"warranty_expiry"`
	Notes          string                   `json:"notes,omitempty" bson:"notes"`
}

type MaintenanceRecord struct {
	MaintenanceRecordCreate `bson:",inline"`
	RecordID                string    `json:"record_id" bson:"record_id"`
	CreatedAt               time.Time `json:"created_at" bson:"created_at"`
}

type WorkOrderCreate struct {
	VehicleID     string                   `json:"vehicle_id" bson:"vehicle_id"`
	AssignedTo    string                   `json:"assigned_to,omitempty" bson:"assigned_to"`
	Status        string                   `json:"status" bson:"status"` // Pending, In Progress, Completed, Cancelled
	Priority      string                   `json:"priority" bson:"priority"`
	Description   string                   `json:"description" bson:"description"`
	Parts         []map[string]interface{} `json:"parts" bson:"parts"`
	LaborCost     float64                  `json:"labor_cost" bson:"labor_cost"`
	PartsCost     float64                  `json:"parts_cost" bson:"parts_cost"`
	TotalCost     float64                  `json:"total_cost" bson:"total_cost"`
	ScheduledDate time.Time                `json:"scheduled_date" bson:"scheduled_date"`
	CompletedDate *time.Time               `json:"completed_date,omitempty" bson:"completed_date"`
}

type WorkOrder struct {
	WorkOrderCreate `bson:",inline"`
	OrderID         string    `json:"order_id" bson:"order_id"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

type DriverCreate struct {
	Name          string `json:"name" bson:"name"`
	LicenseNumber string `json:"license_number" bson:"license_number"`
	LicenseExpiry string `json:"license_expiry" bson:"license_expiry"`
	Phone         string `json:"phone" bson:"phone"`
	Email         string `json:"email,omitempty" bson:"email"`
	Status        string `json:"status" bson:"status"` // Active, Inactive
}

type Driver struct {
	DriverCreate     `bson:",inline"`
	DriverID         string                   `json:"driver_id" bson:"driver_id"`
	Documents        []map[string]interface{} `json:"documents" bson:"documents"`
	PerformanceNotes []map[string]interface{} `json:"performance_notes" bson:"performance_notes"`
	CreatedAt        time.Time                `json:"created_at" bson:"created_at"`
}

type DriverAssignmentCreate struct {
	VehicleID string     `json:"vehicle_id" bson:"vehicle_id"`
	DriverID  string     `json:"driver_id" bson:"driver_id"`
	StartDate time.Time  `json:"start_date" bson:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" bson:"end_date"`
	Notes     string     `json:"notes,omitempty" bson:"notes"`
}

type DriverAssignment struct {
	DriverAssignmentCreate `bson:",inline"`
	AssignmentID           string    `json:"assignment_id" bson:"assignment_id"`
	CreatedAt              time.Time `json:"created_at" bson:"created_at"`
}

type FuelLogCreate struct {
	VehicleID  string    `json:"vehicle_id" bson:"vehicle_id"`
	DriverID   string    `json:"driver_id" bson:"driver_id"`
	Date       time.Time `json:"date" bson:"date"`
	Quantity   float64   `json:"quantity" bson:"quantity"`
	Cost       float64   `json:"cost" bson:"cost"`
	Odometer   int       `json:"odometer" bson:"odometer"`
	FuelType   string    `json:"fuel_type" bson:"fuel_type"`
	ReceiptURL string    `json:"receipt_url,omitempty" bson:"receipt_url"`
	CostPerKm  float64   `json:"cost_per_km" bson:"cost_per_km"`
}

type FuelLog struct {
	FuelLogCreate `bson:",inline"`
	LogID         string    `json:"log_id" bson:"log_id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type PartCreate struct {
	Name       string  `json:"name" bson:"name"`
	PartNumber string  `json:"part_number" bson:"part_number"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	MinStock   int     `json:"min_stock" bson:"min_stock"`
	Cost       float64 `json:"cost" bson:"cost"`
	Supplier   string  `json:"supplier,omitempty" bson:"supplier"`
	Location   string  `json:"location,omitempty" bson:"location"`
}

type Part struct {
	PartCreate `bson:",inline"`
	PartID     string    `json:"part_id" bson:"part_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

type TireCreate struct {
	VehicleID        string  `json:"vehicle_id" bson:"vehicle_id"`
	Position         string  `json:"position" bson:"position"` // Front Left, Front Right, Rear Left, Rear Right, Spare
	Brand            string  `json:"brand" bson:"brand"`
	Size             string  `json:"size" bson:"size"`
	InstallationDate string  `json:"installation_date" bson:"installation_date"`
	MileageInstalled int     `json:"mileage_installed" bson:"mileage_installed"`
	Cost             float64 `json:"cost" bson:"cost"`
	Status           string  `json:"status" bson:"status"` // Active, Replaced, Damaged
}

type Tire struct {
	TireCreate `bson:",inline"`
	TireID     string    `json:"tire_id" bson:"tire_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

type InspectionCreate struct {
	VehicleID  string                   `json:"vehicle_id" bson:"vehicle_id"`
	DriverID   string                   `json:"driver_id" bson:"driver_id"`
	Type       string                   `json:"type" bson:"type"` // Pre-Trip, Post-Trip, Monthly
	Date       time.Time                `json:"date" bson:"date"`
	Checklist  []map[string]interface{} `json:"checklist" bson:"checklist"`
	Photos     []string                 `json:"photos" bson:"photos"`
	Status     string                   `json:"status" bson:"status"` // Pending, Approved, Failed
	ApprovedBy string                   `json:"approved_by,omitempty" bson:"approved_by"`
	Notes      string                   `json:"notes,omitempty" bson:"notes"`
}

type Inspection struct {
	InspectionCreate `bson:",inline"`
	InspectionID     string    `json:"inspection_id" bson:"inspection_id"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

type AlertCreate struct {
	Type      string `json:"type" bson:"type"` // ServiceDue, RegistrationExpiry, LicenseExpiry, InspectionOverdue, LowStock, FuelEfficiency
	VehicleID string `json:"vehicle_id,omitempty" bson:"vehicle_id"`
	DriverID  string `json:"driver_id,omitempty" bson:"driver_id"`
	Message   string `json:"message" bson:"message"`
	Status    string `json:"status" bson:"status"` // Active, Dismissed, Resolved
	Priority  string `json:"priority" bson:"priority"`
}

type Alert struct {
	AlertCreate `bson:",inline"`
	AlertID     string     `json:"alert_id" bson:"alert_id"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at" bson:"resolved_at"`
}
