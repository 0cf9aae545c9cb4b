package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/application/techservice"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	apphttp "github.com/doctorcel/doctorcel-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el handler sobre el caso de uso real
// ──────────────────────────────────────────────────────────────────────────────

type memTechRepo struct{ byID map[string]*entity.TechService }

func (r *memTechRepo) Create(ts *entity.TechService) error            { r.byID[ts.ID] = ts; return nil }
func (r *memTechRepo) GetByID(id string) (*entity.TechService, error) { return r.byID[id], nil }
func (r *memTechRepo) List() ([]*entity.TechService, error)           { return nil, nil }
func (r *memTechRepo) Update(ts *entity.TechService) error            { r.byID[ts.ID] = ts; return nil }
func (r *memTechRepo) UpdateStatus(id, status string) error {
	ts, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	ts.Status = status
	return nil
}

type memClientRepo struct{ byID map[string]*entity.Client }

func (r *memClientRepo) Create(c *entity.Client) error                    { return nil }
func (r *memClientRepo) GetByID(id string) (*entity.Client, error)        { return r.byID[id], nil }
func (r *memClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (r *memClientRepo) Update(c *entity.Client) error                    { return nil }

type memWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error             { return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.byID[id], nil }
func (r *memWarehouseRepo) List() ([]*entity.Warehouse, error)           { return nil, nil }
func (r *memWarehouseRepo) Update(w *entity.Warehouse) error             { return nil }
func (r *memWarehouseRepo) Delete(id string) error                       { return nil }

type memUserRepo struct{ byID map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error                    { return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error)        { return r.byID[id], nil }
func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *memUserRepo) Count() (int, error)                            { return len(r.byID), nil }
func (r *memUserRepo) Update(u *entity.User) error                    { return nil }

// buildTechApp monta las rutas de servicio técnico sin middleware de auth:
// aquí se prueba el mapeo de errores del handler, no el RBAC.
func buildTechApp(t *testing.T) (*fiber.App, *memTechRepo) {
	t.Helper()
	techRepo := &memTechRepo{byID: map[string]*entity.TechService{}}
	uc := techservice.NewUseCase(
		techRepo,
		&memClientRepo{byID: map[string]*entity.Client{"cli-1": {ID: "cli-1", Name: "María"}}},
		&memWarehouseRepo{byID: map[string]*entity.Warehouse{"wh-1": {ID: "wh-1", Name: "Centro"}}},
		&memUserRepo{byID: map[string]*entity.User{}},
	)
	h := apphttp.NewTechServiceHandler(uc)

	app := fiber.New()
	app.Post("/api/techservices", h.Create)
	app.Get("/api/techservices/:id", h.GetByID)
	app.Put("/api/techservices/:id", h.UpdateStatus)
	app.Patch("/api/techservices/:id", h.Update)
	return app, techRepo
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func createTicket(t *testing.T, app *fiber.App) dto.TechServiceResponse {
	t.Helper()
	resp := jsonRequest(t, app, http.MethodPost, "/api/techservices",
		`{"device_type":"celular","brand":"Samsung","client_id":"cli-1","warehouse_id":"wh-1"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.TechServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// POST crea el ticket con estado EN_REPARACION por defecto y responde 201.
func TestTechServiceHandler_Create(t *testing.T) {
	app, repo := buildTechApp(t)

	out := createTicket(t, app)
	assert.Equal(t, entity.StatusEnReparacion, out.Status)
	assert.NotEmpty(t, out.ID)
	assert.Contains(t, repo.byID, out.ID)
}

// PUT con un estado válido del ciclo responde 200 y persiste el cambio.
func TestTechServiceHandler_UpdateStatusValido(t *testing.T) {
	app, repo := buildTechApp(t)
	ticket := createTicket(t, app)

	resp := jsonRequest(t, app, http.MethodPut, "/api/techservices/"+ticket.ID,
		`{"status":"REPARADO"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TechServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.StatusReparado, out.Status)
	assert.Equal(t, entity.StatusReparado, repo.byID[ticket.ID].Status)
}

// PUT con un estado fuera del enum responde 400 con el detalle y no escribe.
func TestTechServiceHandler_UpdateStatusInvalido(t *testing.T) {
	app, repo := buildTechApp(t)
	ticket := createTicket(t, app)

	resp := jsonRequest(t, app, http.MethodPut, "/api/techservices/"+ticket.ID,
		`{"status":"FIXED"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Details, "status inválido: FIXED")

	assert.Equal(t, entity.StatusEnReparacion, repo.byID[ticket.ID].Status,
		"el estado almacenado no debe cambiar")
}

// PUT sobre un ticket inexistente responde 404.
func TestTechServiceHandler_UpdateStatusNoExiste(t *testing.T) {
	app, _ := buildTechApp(t)

	resp := jsonRequest(t, app, http.MethodPut, "/api/techservices/ts-fantasma",
		`{"status":"REPARADO"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// POST con payload incompleto responde 400 con todos los campos que fallan.
func TestTechServiceHandler_CreateInvalido(t *testing.T) {
	app, _ := buildTechApp(t)

	resp := jsonRequest(t, app, http.MethodPost, "/api/techservices", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Details, "device_type es requerido")
	assert.Contains(t, out.Details, "client_id es requerido")
	assert.Contains(t, out.Details, "warehouse_id es requerido")
}

// PATCH actualiza solo los campos presentes.
func TestTechServiceHandler_UpdateParcial(t *testing.T) {
	app, _ := buildTechApp(t)
	ticket := createTicket(t, app)

	resp := jsonRequest(t, app, http.MethodPatch, "/api/techservices/"+ticket.ID,
		`{"observations":"pantalla reemplazada"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TechServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "pantalla reemplazada", out.Observations)
	assert.Equal(t, "Samsung", out.Brand)
}
