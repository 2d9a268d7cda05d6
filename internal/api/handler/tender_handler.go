package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tendermarket/tendering-api/internal/api/metrics"
	"github.com/tendermarket/tendering-api/internal/core/domain"
	"github.com/tendermarket/tendering-api/internal/core/ports"
)

// TenderHandler handles the client-scoped tender endpoints.
type TenderHandler struct {
	service ports.TenderService
}

func NewTenderHandler(service ports.TenderService) *TenderHandler {
	return &TenderHandler{service: service}
}

// Create handles POST /api/client/tenders.
//
// @Summary      Publish a new tender
// @Tags         tenders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTenderRequest  true  "Tender details"
// @Success      201   {object}  domain.Tender
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/client/tenders [post]
func (h *TenderHandler) Create(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	var req createTenderRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidInput
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return domain.ErrInvalidTenderData
	}

	tender, err := h.service.Create(c.Request().Context(), ports.CreateTenderInput{
		OwnerID:     p.ID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Budget:      req.Budget,
		Attachment:  req.Attachment,
	})
	if err != nil {
		return err
	}

	metrics.TendersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, tender)
}

// List handles GET /api/client/tenders.
//
// @Summary      List the caller's tenders
// @Tags         tenders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Tender
// @Failure      401  {object}  errorResponse
// @Router       /api/client/tenders [get]
func (h *TenderHandler) List(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	tenders, err := h.service.List(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	if tenders == nil {
		tenders = []*domain.Tender{}
	}

	return c.JSON(http.StatusOK, tenders)
}

// UpdateStatus handles PUT /api/client/tenders/:id.
//
// @Summary      Update a tender's status
// @Tags         tenders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Tender id"
// @Param        body  body      updateTenderStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/client/tenders/{id} [put]
func (h *TenderHandler) UpdateStatus(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	var req updateTenderStatusRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidTenderStatus
	}

	if err := h.service.UpdateStatus(c.Request().Context(), p.ID, c.Param("id"), domain.TenderStatus(req.Status)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Tender status updated"})
}

// Delete handles DELETE /api/client/tenders/:id.
//
// @Summary      Delete a tender
// @Tags         tenders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Tender id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/client/tenders/{id} [delete]
func (h *TenderHandler) Delete(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Tender deleted successfully"})
}
