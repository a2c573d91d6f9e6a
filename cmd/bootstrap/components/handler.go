package components

import (
	"luxstay-api/internal/handler"
	"luxstay-api/internal/handler/api"
	reqdto "luxstay-api/internal/handler/dto/request"
	"luxstay-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, hotel *api.HotelHandler, room *api.RoomHandler, reservation *api.ReservationHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Hotel: hotel, Room: room, Reservation: reservation}
		},
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
