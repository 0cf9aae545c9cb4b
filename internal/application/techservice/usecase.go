package techservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// UseCase ciclo de vida del ticket de servicio técnico: creación con estado
// inicial EN_REPARACION, lectura con relaciones expandidas, actualización
// parcial y cambio de estado contra el enum cerrado.
type UseCase struct {
	repo          repository.TechServiceRepository
	clientRepo    repository.ClientRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.TechServiceRepository,
	clientRepo repository.ClientRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{repo: repo, clientRepo: clientRepo, warehouseRepo: warehouseRepo, userRepo: userRepo}
}

// Create valida forma y referencias (cliente, bodega y técnico se resuelven
// antes de escribir, igual que en facturación) y persiste el ticket.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTechServiceRequest) (*dto.TechServiceResponse, error) {
	var details []string
	if in.DeviceType == "" {
		details = append(details, "device_type es requerido")
	}
	if in.ClientID == "" {
		details = append(details, "client_id es requerido")
	}
	if in.WarehouseID == "" {
		details = append(details, "warehouse_id es requerido")
	}
	status := in.Status
	if status == "" {
		status = entity.StatusEnReparacion
	}
	if !entity.ValidTechServiceStatus(status) {
		details = append(details, "status inválido: "+in.Status)
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError(details...)
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	miss := func(msg string) {
		mu.Lock()
		details = append(details, msg)
		mu.Unlock()
	}
	wg.Add(2)
	go func() {
		defer wg.Done()
		c, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil || c == nil {
			miss("cliente no encontrado: " + in.ClientID)
		}
	}()
	go func() {
		defer wg.Done()
		w, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil || w == nil {
			miss("bodega no encontrada: " + in.WarehouseID)
		}
	}()
	if in.TechnicianID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := uc.userRepo.GetByID(in.TechnicianID)
			if err != nil || u == nil {
				miss("técnico no encontrado: " + in.TechnicianID)
			}
		}()
	}
	wg.Wait()
	if len(details) > 0 {
		return nil, domain.NewValidationError(details...)
	}

	now := time.Now()
	ts := &entity.TechService{
		ID:           uuid.New().String(),
		DeviceType:   in.DeviceType,
		Brand:        in.Brand,
		Serial:       in.Serial,
		Color:        in.Color,
		Status:       status,
		Observations: in.Observations,
		LockPassword: in.LockPassword,
		DeliveryDate: in.DeliveryDate,
		ClientID:     in.ClientID,
		WarehouseID:  in.WarehouseID,
		TechnicianID: in.TechnicianID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ts); err != nil {
		return nil, err
	}
	return toResponse(ts), nil
}

// GetByID obtiene el ticket con cliente, bodega y técnico expandidos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.TechServiceResponse, error) {
	ts, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(ts)
	if c, _ := uc.clientRepo.GetByID(ts.ClientID); c != nil {
		resp.Client = &dto.ClientResponse{
			ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone,
			Document: c.Document, Address: c.Address, City: c.City,
			Active: c.Active, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		}
	}
	if w, _ := uc.warehouseRepo.GetByID(ts.WarehouseID); w != nil {
		resp.Warehouse = &dto.WarehouseResponse{ID: w.ID, Name: w.Name, Description: w.Description}
	}
	if ts.TechnicianID != "" {
		if u, _ := uc.userRepo.GetByID(ts.TechnicianID); u != nil {
			resp.Technician = &dto.UserResponse{
				ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role,
				Active: u.Active, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
			}
		}
	}
	return resp, nil
}

// List lista todos los tickets sin filtro, más recientes primero.
func (uc *UseCase) List(ctx context.Context) ([]dto.TechServiceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechServiceResponse, 0, len(list))
	for _, ts := range list {
		out = append(out, *toResponse(ts))
	}
	return out, nil
}

// UpdateStatus cambia únicamente el estado. El valor se valida contra el enum
// antes de cualquier escritura; no hay grafo de transiciones (cualquier estado
// puede pasar a cualquier otro).
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.TechServiceResponse, error) {
	if !entity.ValidTechServiceStatus(status) {
		return nil, domain.NewValidationError("status inválido: " + status)
	}
	ts, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	ts.Status = status
	ts.UpdatedAt = time.Now()
	return toResponse(ts), nil
}

// Update escribe solo los campos presentes en el body (actualización parcial).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateTechServiceRequest) (*dto.TechServiceResponse, error) {
	ts, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, domain.ErrNotFound
	}
	if in.DeviceType != nil {
		ts.DeviceType = *in.DeviceType
	}
	if in.Brand != nil {
		ts.Brand = *in.Brand
	}
	if in.Serial != nil {
		ts.Serial = *in.Serial
	}
	if in.Color != nil {
		ts.Color = *in.Color
	}
	if in.Observations != nil {
		ts.Observations = *in.Observations
	}
	if in.LockPassword != nil {
		ts.LockPassword = *in.LockPassword
	}
	if in.DeliveryDate != nil {
		ts.DeliveryDate = in.DeliveryDate
	}
	if in.TechnicianID != nil {
		if *in.TechnicianID != "" {
			u, err := uc.userRepo.GetByID(*in.TechnicianID)
			if err != nil || u == nil {
				return nil, domain.NewValidationError("técnico no encontrado: " + *in.TechnicianID)
			}
		}
		ts.TechnicianID = *in.TechnicianID
	}
	ts.UpdatedAt = time.Now()
	if err := uc.repo.Update(ts); err != nil {
		return nil, err
	}
	return toResponse(ts), nil
}

func toResponse(ts *entity.TechService) *dto.TechServiceResponse {
	return &dto.TechServiceResponse{
		ID:           ts.ID,
		DeviceType:   ts.DeviceType,
		Brand:        ts.Brand,
		Serial:       ts.Serial,
		Color:        ts.Color,
		Status:       ts.Status,
		Observations: ts.Observations,
		LockPassword: ts.LockPassword,
		DeliveryDate: ts.DeliveryDate,
		ClientID:     ts.ClientID,
		WarehouseID:  ts.WarehouseID,
		TechnicianID: ts.TechnicianID,
		CreatedAt:    ts.CreatedAt,
		UpdatedAt:    ts.UpdatedAt,
	}
}
