package dto

import "time"

// CreateTechServiceRequest body para POST /api/techservices.
// device_type, client_id y warehouse_id son obligatorios; el resto es opcional.
type CreateTechServiceRequest struct {
	DeviceType   string     `json:"device_type"`
	Brand        string     `json:"brand,omitempty"`
	Serial       string     `json:"serial,omitempty"`
	Color        string     `json:"color,omitempty"`
	Status       string     `json:"status,omitempty"` // vacío -> EN_REPARACION
	Observations string     `json:"observations,omitempty"`
	LockPassword string     `json:"lock_password,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	ClientID     string     `json:"client_id"`
	WarehouseID  string     `json:"warehouse_id"`
	TechnicianID string     `json:"technician_id,omitempty"`
}

// UpdateTechServiceRequest body para PATCH /api/techservices/:id.
// Solo se escriben los campos presentes; el estado se muta por su propia ruta.
type UpdateTechServiceRequest struct {
	DeviceType   *string    `json:"device_type,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	Serial       *string    `json:"serial,omitempty"`
	Color        *string    `json:"color,omitempty"`
	Observations *string    `json:"observations,omitempty"`
	LockPassword *string    `json:"lock_password,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	TechnicianID *string    `json:"technician_id,omitempty"`
}

// UpdateTechServiceStatusRequest body para PUT /api/techservices/:id.
type UpdateTechServiceStatusRequest struct {
	Status string `json:"status"`
}

// TechServiceResponse ticket en respuestas; Client/Warehouse/Technician se
// expanden en la lectura por id.
type TechServiceResponse struct {
	ID           string             `json:"id"`
	DeviceType   string             `json:"device_type"`
	Brand        string             `json:"brand,omitempty"`
	Serial       string             `json:"serial,omitempty"`
	Color        string             `json:"color,omitempty"`
	Status       string             `json:"status"`
	Observations string             `json:"observations,omitempty"`
	LockPassword string             `json:"lock_password,omitempty"`
	DeliveryDate *time.Time         `json:"delivery_date,omitempty"`
	ClientID     string             `json:"client_id"`
	WarehouseID  string             `json:"warehouse_id"`
	TechnicianID string             `json:"technician_id,omitempty"`
	Client       *ClientResponse    `json:"client,omitempty"`
	Warehouse    *WarehouseResponse `json:"warehouse,omitempty"`
	Technician   *UserResponse      `json:"technician,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
