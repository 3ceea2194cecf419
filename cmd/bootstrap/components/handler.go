package components

import (
	"medverify/internal/handler"
	"medverify/internal/handler/api"
	"medverify/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMedicineHandler,
		api.NewVerifyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
