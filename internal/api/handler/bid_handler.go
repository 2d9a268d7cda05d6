package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tendermarket/tendering-api/internal/api/metrics"
	"github.com/tendermarket/tendering-api/internal/core/domain"
	"github.com/tendermarket/tendering-api/internal/core/ports"
)

// BidHandler handles the contractor-scoped bid endpoints and the client-side
// bid listing and award endpoints.
type BidHandler struct {
	service ports.BidService
}

func NewBidHandler(service ports.BidService) *BidHandler {
	return &BidHandler{service: service}
}

// Submit handles POST /api/contractor/tenders/:id/bid.
//
// @Summary      Submit a bid against an open tender
// @Tags         bids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Tender id"
// @Param        body  body      submitBidRequest  true  "Bid details"
// @Success      201   {object}  domain.Bid
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/contractor/tenders/{id}/bid [post]
func (h *BidHandler) Submit(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	var req submitBidRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidBidData
	}

	bid, err := h.service.Submit(c.Request().Context(), ports.SubmitBidInput{
		ContractorID: p.ID,
		TenderID:     c.Param("id"),
		Price:        req.Price,
		DeliveryTime: req.DeliveryTime,
		Comments:     req.Comments,
	})
	if err != nil {
		return err
	}

	metrics.BidsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, bid)
}

// ListMine handles GET /api/contractor/bids.
//
// @Summary      List the caller's bids
// @Tags         bids
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Bid
// @Failure      401  {object}  errorResponse
// @Router       /api/contractor/bids [get]
func (h *BidHandler) ListMine(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	bids, err := h.service.ListByContractor(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	if bids == nil {
		bids = []*domain.Bid{}
	}

	return c.JSON(http.StatusOK, bids)
}

// ListForTender handles GET /api/client/tenders/:id/bids.
//
// @Summary      List bids against the caller's tender
// @Tags         bids
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Tender id"
// @Success      200  {array}   domain.Bid
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/client/tenders/{id}/bids [get]
func (h *BidHandler) ListForTender(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	bids, err := h.service.ListByTender(c.Request().Context(), p.ID, c.Param("id"))
	if err != nil {
		return err
	}
	if bids == nil {
		bids = []*domain.Bid{}
	}

	return c.JSON(http.StatusOK, bids)
}

// Award handles POST /api/client/tenders/:id/award/:bidId.
//
// @Summary      Award a bid
// @Tags         bids
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string  true  "Tender id"
// @Param        bidId  path  string  true  "Bid id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/client/tenders/{id}/award/{bidId} [post]
func (h *BidHandler) Award(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Award(c.Request().Context(), p.ID, c.Param("id"), c.Param("bidId")); err != nil {
		return err
	}

	metrics.BidsAwardedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Bid awarded successfully"})
}

// Delete handles DELETE /api/contractor/bids/:id.
//
// @Summary      Delete a bid
// @Tags         bids
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Bid id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contractor/bids/{id} [delete]
func (h *BidHandler) Delete(c echo.Context) error {
	p, err := principalFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Bid deleted successfully"})
}
