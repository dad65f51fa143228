package components

import (
	"agromarket-api/internal/handler"
	"agromarket-api/internal/handler/api"
	"agromarket-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewCatalogHandler,
		api.NewPromotionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
