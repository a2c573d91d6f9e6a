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

const (
	invalidRoomID  = "Invalid room ID"
	invalidHotelID = "Invalid hotel ID"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param search query string false "Matches name or description"
// @Param hotelId query string false "Hotel ID"
// @Param roomType query string false "SINGLE | DOUBLE | TWIN | SUITE | DELUXE | PENTHOUSE"
// @Param minPrice query number false "Minimum nightly price"
// @Param maxPrice query number false "Maximum nightly price"
// @Param minCapacity query int false "Minimum capacity"
// @Param isAvailable query bool false "Availability flag"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param sortBy query string false "pricePerNight | capacity | name | createdAt"
// @Param sortOrder query string false "asc | desc"
// @Success 200 {object} resdto.PaginatedResponse[resdto.RoomResponse]
// @Failure 400 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var q reqdto.RoomListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.q.List(c.Request.Context(), q.ToFilter(), q.ToPageRequest(queries.RoomSort))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPaginated(page, resdto.FromRoomView))
}

// @Summary List rooms of a hotel
// @Tags rooms
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} resdto.PaginatedResponse[resdto.RoomResponse]
// @Failure 400 {object} httperr.Response
// @Router /rooms/hotel/{hotelId} [get]
func (h *RoomHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := idParam(c, "hotelId", invalidHotelID)
	if !ok {
		return
	}

	var q reqdto.RoomListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.q.ListByHotel(c.Request.Context(), hotelID, q.ToFilter(), q.ToPageRequest(queries.RoomSort))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPaginated(page, resdto.FromRoomView))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id", invalidRoomID)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RoomEnvelope{Room: resdto.FromRoomView(view)})
}

// @Summary Check room availability
// @Description Counts active reservations overlapping the requested stay
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "Check-in date"
// @Param checkOut query string true "Check-out date"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := idParam(c, "id", invalidRoomID)
	if !ok {
		return
	}

	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	checkIn, checkOut := q.Dates()

	view, err := h.q.CheckAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	details, err := req.ToDetails()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), principal, req.HotelID, details)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.RoomMessageResponse{
		Message: "Room created successfully",
		Room:    resdto.FromRoomView(view),
	})
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Changes"
// @Success 200 {object} resdto.RoomMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidRoomID)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
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

	c.JSON(http.StatusOK, resdto.RoomMessageResponse{
		Message: "Room updated successfully",
		Room:    resdto.FromRoomView(view),
	})
}

// @Summary Delete room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidRoomID)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room deleted successfully"})
}
