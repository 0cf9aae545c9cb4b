package entity

import "time"

// Estados del servicio técnico. EN_REPARACION es el inicial; cualquier estado
// puede pasar a cualquier otro (no hay estados terminales).
const (
	StatusEnReparacion = "EN_REPARACION"
	StatusReparado     = "REPARADO"
	StatusEntregado    = "ENTREGADO"
	StatusGarantia     = "GARANTIA"
	StatusDevolucion   = "DEVOLUCION"
)

// TechServiceStatuses lista cerrada de estados válidos.
var TechServiceStatuses = []string{
	StatusEnReparacion,
	StatusReparado,
	StatusEntregado,
	StatusGarantia,
	StatusDevolucion,
}

// ValidTechServiceStatus indica si el valor pertenece al enum.
func ValidTechServiceStatus(s string) bool {
	for _, v := range TechServiceStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// TechService ticket de reparación de un equipo.
type TechService struct {
	ID           string
	DeviceType   string
	Brand        string
	Serial       string // serial o IMEI
	Color        string
	Status       string
	Observations string
	LockPassword string // clave o patrón de desbloqueo del equipo
	DeliveryDate *time.Time
	ClientID     string
	WarehouseID  string
	TechnicianID string // User con rol TECHNICIAN; opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
