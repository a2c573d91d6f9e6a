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

type HotelHandler struct {
	cmds commands.HotelCommands
	q    queries.HotelQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q}
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Param search query string false "Matches name, description or city"
// @Param city query string false "City contains"
// @Param country query string false "Country contains"
// @Param minRating query number false "Minimum rating"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param sortBy query string false "name | rating | createdAt"
// @Param sortOrder query string false "asc | desc"
// @Success 200 {object} resdto.PaginatedResponse[resdto.HotelListItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	var q reqdto.HotelListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.q.List(c.Request.Context(), q.ToFilter(), q.ToPageRequest(queries.HotelSort))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPaginated(page, resdto.FromHotelListItem))
}

// @Summary List own hotels
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaginatedResponse[resdto.HotelListItemResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /hotels/owner/my-hotels [get]
func (h *HotelHandler) ListOwned(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var q reqdto.HotelListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.q.ListOwned(c.Request.Context(), principal, q.ToFilter(), q.ToPageRequest(queries.HotelSort))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPaginated(page, resdto.FromHotelListItem))
}

// @Summary Get hotel
// @Description Hotel with owner and available rooms, cheapest first
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id", invalidHotelID)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.HotelEnvelope{Hotel: resdto.FromHotelView(view)})
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.CreateHotelRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), principal, req.ToDetails())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.HotelMessageResponse{
		Message: "Hotel created successfully",
		Hotel:   resdto.FromHotelView(view),
	})
}

// @Summary Update hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Changes"
// @Success 200 {object} resdto.HotelMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [patch]
func (h *HotelHandler) Update(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidHotelID)
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), principal, id, req.ToPatch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.HotelMessageResponse{
		Message: "Hotel updated successfully",
		Hotel:   resdto.FromHotelView(view),
	})
}

// @Summary Delete hotel
// @Description Deletes the hotel and its rooms
// @Tags hotels
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", invalidHotelID)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Hotel deleted successfully"})
}
