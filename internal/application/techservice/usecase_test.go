package techservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/application/techservice"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTechRepo struct {
	byID map[string]*entity.TechService
}

func (r *fakeTechRepo) Create(ts *entity.TechService) error { r.byID[ts.ID] = ts; return nil }
func (r *fakeTechRepo) GetByID(id string) (*entity.TechService, error) {
	return r.byID[id], nil
}
func (r *fakeTechRepo) List() ([]*entity.TechService, error) {
	out := make([]*entity.TechService, 0, len(r.byID))
	for _, ts := range r.byID {
		out = append(out, ts)
	}
	return out, nil
}
func (r *fakeTechRepo) Update(ts *entity.TechService) error { r.byID[ts.ID] = ts; return nil }
func (r *fakeTechRepo) UpdateStatus(id, status string) error {
	ts, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	ts.Status = status
	return nil
}

type fakeClientRepo struct{ byID map[string]*entity.Client }

func (r *fakeClientRepo) Create(c *entity.Client) error                    { return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error)        { return r.byID[id], nil }
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error                    { return nil }

type fakeWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error             { return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.byID[id], nil }
func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error)           { return nil, nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error             { return nil }
func (r *fakeWarehouseRepo) Delete(id string) error                       { return nil }

type fakeUserRepo struct{ byID map[string]*entity.User }

func (r *fakeUserRepo) Create(u *entity.User) error             { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count() (int, error)         { return len(r.byID), nil }
func (r *fakeUserRepo) Update(u *entity.User) error { return nil }

func newFixture(t *testing.T) (*techservice.UseCase, *fakeTechRepo) {
	t.Helper()
	techRepo := &fakeTechRepo{byID: map[string]*entity.TechService{}}
	clientRepo := &fakeClientRepo{byID: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", Name: "María Gómez", Active: true},
	}}
	warehouseRepo := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{
		"wh-1": {ID: "wh-1", Name: "Sede Centro"},
	}}
	userRepo := &fakeUserRepo{byID: map[string]*entity.User{
		"tech-1": {ID: "tech-1", Name: "Carlos", Role: entity.RoleTechnician, Active: true},
	}}
	uc := techservice.NewUseCase(techRepo, clientRepo, warehouseRepo, userRepo)
	return uc, techRepo
}

func validTicket() dto.CreateTechServiceRequest {
	return dto.CreateTechServiceRequest{
		DeviceType:   "celular",
		Brand:        "Samsung",
		Serial:       "SN-1234",
		ClientID:     "cli-1",
		WarehouseID:  "wh-1",
		TechnicianID: "tech-1",
		Observations: "no enciende, posible pin de carga",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un ticket recién creado sin estado explícito queda EN_REPARACION.
func TestCreate_EstadoInicialPorDefecto(t *testing.T) {
	uc, repo := newFixture(t)

	resp, err := uc.Create(context.Background(), validTicket())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusEnReparacion, resp.Status)
	assert.Equal(t, entity.StatusEnReparacion, repo.byID[resp.ID].Status)
}

// Un estado explícito válido se respeta en la creación.
func TestCreate_EstadoExplicitoValido(t *testing.T) {
	uc, _ := newFixture(t)

	in := validTicket()
	in.Status = entity.StatusGarantia
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusGarantia, resp.Status)
}

// Un estado fuera del enum se rechaza en la creación sin escribir nada.
func TestCreate_EstadoInvalidoSeRechaza(t *testing.T) {
	uc, repo := newFixture(t)

	in := validTicket()
	in.Status = "FIXED"
	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "status inválido: FIXED")
	assert.Empty(t, repo.byID)
}

// Campos obligatorios ausentes se reportan todos juntos.
func TestCreate_CamposObligatoriosSeRecolectan(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateTechServiceRequest{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "device_type es requerido")
	assert.Contains(t, verr.Details, "client_id es requerido")
	assert.Contains(t, verr.Details, "warehouse_id es requerido")
}

// Referencias inexistentes (cliente, bodega, técnico) se validan antes de crear.
func TestCreate_ReferenciasInexistentes(t *testing.T) {
	uc, repo := newFixture(t)

	in := validTicket()
	in.ClientID = "cli-fantasma"
	in.TechnicianID = "tech-fantasma"
	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "cliente no encontrado: cli-fantasma")
	assert.Contains(t, verr.Details, "técnico no encontrado: tech-fantasma")
	assert.Empty(t, repo.byID)
}

// Cambio de estado válido: cualquier estado puede pasar a cualquier otro.
func TestUpdateStatus_TransicionValida(t *testing.T) {
	uc, repo := newFixture(t)
	created, err := uc.Create(context.Background(), validTicket())
	require.NoError(t, err)

	for _, status := range []string{
		entity.StatusReparado,
		entity.StatusEntregado,
		entity.StatusGarantia,
		entity.StatusDevolucion,
		entity.StatusEnReparacion,
	} {
		resp, err := uc.UpdateStatus(context.Background(), created.ID, status)
		require.NoError(t, err, "transición a %s", status)
		assert.Equal(t, status, resp.Status)
		assert.Equal(t, status, repo.byID[created.ID].Status)
	}
}

// Un estado fuera del enum se rechaza y el ticket queda intacto.
func TestUpdateStatus_EstadoInvalidoNoEscribe(t *testing.T) {
	uc, repo := newFixture(t)
	created, err := uc.Create(context.Background(), validTicket())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), created.ID, "FIXED")
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, entity.StatusEnReparacion, repo.byID[created.ID].Status,
		"el estado almacenado no debe cambiar")
}

// Cambio de estado sobre un ticket inexistente.
func TestUpdateStatus_TicketNoExiste(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.UpdateStatus(context.Background(), "ts-fantasma", entity.StatusReparado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La actualización parcial solo toca los campos presentes.
func TestUpdate_Parcial(t *testing.T) {
	uc, _ := newFixture(t)
	created, err := uc.Create(context.Background(), validTicket())
	require.NoError(t, err)

	obs := "se cambió el pin de carga"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateTechServiceRequest{
		Observations: &obs,
	})
	require.NoError(t, err)

	assert.Equal(t, obs, resp.Observations)
	assert.Equal(t, "Samsung", resp.Brand, "los campos no enviados se conservan")
	assert.Equal(t, entity.StatusEnReparacion, resp.Status)
}

// Asignar un técnico inexistente en la actualización parcial se rechaza.
func TestUpdate_TecnicoInexistente(t *testing.T) {
	uc, _ := newFixture(t)
	created, err := uc.Create(context.Background(), validTicket())
	require.NoError(t, err)

	ghost := "tech-fantasma"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateTechServiceRequest{
		TechnicianID: &ghost,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "técnico no encontrado: tech-fantasma")
}

// GetByID expande cliente, bodega y técnico.
func TestGetByID_ExpandeRelaciones(t *testing.T) {
	uc, _ := newFixture(t)
	created, err := uc.Create(context.Background(), validTicket())
	require.NoError(t, err)

	resp, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	require.NotNil(t, resp.Client)
	assert.Equal(t, "María Gómez", resp.Client.Name)
	require.NotNil(t, resp.Warehouse)
	assert.Equal(t, "Sede Centro", resp.Warehouse.Name)
	require.NotNil(t, resp.Technician)
	assert.Equal(t, entity.RoleTechnician, resp.Technician.Role)
}
