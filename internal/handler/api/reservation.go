package api

import (
	"net/http"

	reqdto "luxstay-api/internal/handler/dto/request"
	resdto "luxstay-api/internal/handler/dto/response"
	"luxstay-api/internal/handler/httperr"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const invalidReservationID = "Invalid reservation ID"

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a room for a stay. Rejects unavailable rooms, over-capacity stays, past check-ins and overlapping active bookings.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), principal, cmd)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ReservationMessageResponse{
		Message:     "Reservation created successfully",
		Reservation: resdto.FromReservationView(view),
	})
}

// @Summary List own reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param sortBy query string false "checkInDate | checkOutDate | totalPrice | createdAt | status"
// @Param sortOrder query string false "asc | desc"
// @Param status query string false "Reservation status"
// @Param fromDate query string false "Check-in on or after"
// @Param toDate query string false "Check-out on or before"
// @Success 200 {object} resdto.PaginatedResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var q reqdto.ReservationListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.q.ListForGuest(c.Request.Context(), principal, q.ToFilter(), q.ToPageRequest(queries.ReservationSort))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPaginated(page, resdto.FromReservationView))
}

// @Summary List reservations in owned hotels
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param hotelId query string false "Hotel ID, ignored unless owned by the caller"
// @Param roomId query string false "Room ID"
// @Param status query string false "Reservation status"
// @Param fromDate query string false "Check-in on or after"
// @Param toDate query string false "Check-out on or before"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Success 200 {object} resdto.PaginatedResponse[resdto.ReservationResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/hotel-owner [get]
func (h *ReservationHandler) ListForHotelOwner(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var q reqdto.ReservationListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.q.ListForHotelOwner(c.Request.Context(), principal, q.ToFilter(), q.ToPageRequest(queries.ReservationSort))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPaginated(page, resdto.FromReservationView))
}

// @Summary Get reservation
// @Description Visible to the guest, the hotel owner and admins
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidReservationID)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ReservationEnvelope{Reservation: resdto.FromReservationView(view)})
}

// @Summary Update reservation
// @Description Change status, dates, guest count or special requests. Only hotel owners and admins may confirm or complete.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Changes"
// @Success 200 {object} resdto.ReservationMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Update(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidReservationID)
	if !ok {
		return
	}

	var req reqdto.UpdateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), principal, id, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ReservationMessageResponse{
		Message:     "Reservation updated successfully",
		Reservation: resdto.FromReservationView(view),
	})
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidReservationID)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), principal, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation cancelled successfully"})
}
