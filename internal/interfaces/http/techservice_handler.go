package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/application/techservice"
	"github.com/doctorcel/doctorcel-api/internal/domain"
)

// TechServiceHandler maneja las órdenes de servicio técnico.
type TechServiceHandler struct {
	uc *techservice.UseCase
}

// NewTechServiceHandler construye el handler.
func NewTechServiceHandler(uc *techservice.UseCase) *TechServiceHandler {
	return &TechServiceHandler{uc: uc}
}

// Create registra un equipo que entra a reparación.
// POST /api/techservices
func (h *TechServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTechServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ts, err := h.uc.Create(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "la orden de servicio tiene errores de validación",
				Details: verr.Details,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(ts)
}

// GetByID obtiene una orden con cliente, sede y técnico expandidos.
// GET /api/techservices/:id
func (h *TechServiceHandler) GetByID(c *fiber.Ctx) error {
	ts, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(ts)
}

// List lista las órdenes de servicio (más recientes primero).
// GET /api/techservices
func (h *TechServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus cambia el estado de la orden. Solo acepta los cinco estados
// del ciclo: EN_REPARACION, REPARADO, ENTREGADO, GARANTIA, DEVOLUCION.
// PUT /api/techservices/:id
func (h *TechServiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTechServiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ts, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "estado inválido",
				Details: verr.Details,
			})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(ts)
}

// Update actualiza campos de la orden (parcial, sin tocar el estado).
// PATCH /api/techservices/:id
func (h *TechServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTechServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ts, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "datos inválidos",
				Details: verr.Details,
			})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(ts)
}
