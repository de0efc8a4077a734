// Package models defines the core data structures used throughout showroom
// including car records, patches, and user preference blobs.
package models

// CarRecord represents a single catalog entry. JSON field names match the
// seed document format.
type CarRecord struct {
	ID           int      `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Type         string   `json:"type"` // e.g. "sports", "suv", "electric"
	Engine       string   `json:"engine,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Drivetrain   string   `json:"drivetrain,omitempty"`
	FuelType     string   `json:"fuelType,omitempty"`
	Description  string   `json:"description,omitempty"`
	Image        string   `json:"image,omitempty"`
	Price        int      `json:"price"`
	Horsepower   int      `json:"horsepower"`
	Torque       int      `json:"torque,omitempty"`
	TopSpeed     int      `json:"topSpeed,omitempty"`
	Acceleration float64  `json:"acceleration,omitempty"` // 0-60 mph time in seconds
	Weight       int      `json:"weight,omitempty"`
	Year         int      `json:"year,omitempty"`
	Seats        int      `json:"seats,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// DisplayName returns "Brand Model" for user-facing output.
func (c *CarRecord) DisplayName() string {
	return c.Brand + " " + c.Model
}

// CarPatch is a partial update of a CarRecord. Nil fields are left
// untouched by Apply; present fields overwrite.
type CarPatch struct {
	Brand        *string   `json:"brand,omitempty"`
	Model        *string   `json:"model,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Engine       *string   `json:"engine,omitempty"`
	Transmission *string   `json:"transmission,omitempty"`
	Drivetrain   *string   `json:"drivetrain,omitempty"`
	FuelType     *string   `json:"fuelType,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Price        *int      `json:"price,omitempty"`
	Horsepower   *int      `json:"horsepower,omitempty"`
	Torque       *int      `json:"torque,omitempty"`
	TopSpeed     *int      `json:"topSpeed,omitempty"`
	Acceleration *float64  `json:"acceleration,omitempty"`
	Weight       *int      `json:"weight,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Seats        *int      `json:"seats,omitempty"`
	Features     *[]string `json:"features,omitempty"`
}

// Apply merges the patch into car, field by field. The record's ID is never
// touched.
func (p *CarPatch) Apply(car *CarRecord) {
	if p.Brand != nil {
		car.Brand = *p.Brand
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.Type != nil {
		car.Type = *p.Type
	}
	if p.Engine != nil {
		car.Engine = *p.Engine
	}
	if p.Transmission != nil {
		car.Transmission = *p.Transmission
	}
	if p.Drivetrain != nil {
		car.Drivetrain = *p.Drivetrain
	}
	if p.FuelType != nil {
		car.FuelType = *p.FuelType
	}
	if p.Description != nil {
		car.Description = *p.Description
	}
	if p.Image != nil {
		car.Image = *p.Image
	}
	if p.Price != nil {
		car.Price = *p.Price
	}
	if p.Horsepower != nil {
		car.Horsepower = *p.Horsepower
	}
	if p.Torque != nil {
		car.Torque = *p.Torque
	}
	if p.TopSpeed != nil {
		car.TopSpeed = *p.TopSpeed
	}
	if p.Acceleration != nil {
		car.Acceleration = *p.Acceleration
	}
	if p.Weight != nil {
		car.Weight = *p.Weight
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.Seats != nil {
		car.Seats = *p.Seats
	}
	if p.Features != nil {
		car.Features = append([]string(nil), (*p.Features)...)
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *CarPatch) IsEmpty() bool {
	return p.Brand == nil && p.Model == nil && p.Type == nil &&
		p.Engine == nil && p.Transmission == nil && p.Drivetrain == nil &&
		p.FuelType == nil && p.Description == nil && p.Image == nil &&
		p.Price == nil && p.Horsepower == nil && p.Torque == nil &&
		p.TopSpeed == nil && p.Acceleration == nil && p.Weight == nil &&
		p.Year == nil && p.Seats == nil && p.Features == nil
}
