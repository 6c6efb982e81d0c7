// Package http exposes the order lifecycle over a REST surface.
//
// Authentication is external: an upstream gateway verifies the caller and
// forwards the decoded identity in trusted headers. The middleware here only
// reassembles those headers into an auth.Principal; all permission decisions
// stay in the application layer.
package http

import (
	"net/http"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Trusted identity headers set by the upstream gateway.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserEmail    = "X-User-Email"
	HeaderUserRole     = "X-User-Role"
	HeaderRestaurantID = "X-Restaurant-Id"
)

const principalContextKey = "principal"

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	AddCartItem     commands.AddCartItemCommandHandler
	UpdateCartItem  commands.UpdateCartItemCommandHandler
	RemoveCartItem  commands.RemoveCartItemCommandHandler
	ClearCart       commands.ClearCartCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	UpdateStatus    commands.UpdateOrderStatusCommandHandler
	UpdateDetails   commands.UpdateOrderDetailsCommandHandler
	UpdateDelivery  commands.UpdateOrderDeliveryInfoCommandHandler
	GetCart         queries.GetCartQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	ListUserOrders  queries.ListUserOrdersQueryHandler
	ListRestOrders  queries.ListRestaurantOrdersQueryHandler
	ListAllOrders   queries.ListAllOrdersQueryHandler
	RestaurantStats queries.RestaurantOrderStatsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all routes under /api/v1. Every route runs behind the
// principal middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", s.withPrincipal)

	api.GET("/cart", s.GetCart)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", s.RemoveCartItem)

	api.POST("/orders", s.Checkout)
	api.GET("/orders", s.ListMyOrders)
	api.GET("/orders/all", s.ListAllOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PATCH("/orders/:orderId/details", s.UpdateOrderDetails)
	api.PATCH("/orders/:orderId/delivery", s.UpdateOrderDeliveryInfo)

	api.GET("/restaurants/:restaurantId/orders", s.ListRestaurantOrders)
	api.GET("/restaurants/:restaurantId/orders/stats", s.GetRestaurantOrderStats)
}

// withPrincipal rebuilds the caller identity from the trusted gateway headers.
// Requests without a well-formed identity are rejected before reaching any
// handler.
func (s *Server) withPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header

		id, err := kernel.UUIDFromString(header.Get(HeaderUserID))
		if err != nil {
			return writeErrorBody(ctx, http.StatusUnauthorized, "missing or malformed "+HeaderUserID+" header")
		}

		var restaurantID *kernel.UUID
		if raw := header.Get(HeaderRestaurantID); raw != "" {
			rid, ridErr := kernel.UUIDFromString(raw)
			if ridErr != nil {
				return writeErrorBody(ctx, http.StatusUnauthorized, "malformed "+HeaderRestaurantID+" header")
			}
			restaurantID = &rid
		}

		principal, err := auth.NewPrincipal(id, header.Get(HeaderUserEmail), auth.Role(header.Get(HeaderUserRole)), restaurantID)
		if err != nil {
			return writeErrorBody(ctx, http.StatusUnauthorized, "malformed identity headers")
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

func principalFrom(ctx echo.Context) auth.Principal {
	principal, _ := ctx.Get(principalContextKey).(auth.Principal)
	return principal
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// GetCart handles GET /api/v1/cart - returns the caller's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(principalFrom(ctx).ID)
	if err != nil {
		return writeError(ctx, err)
	}

	cart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartViewFrom(cart))
}

// AddCartItem handles POST /api/v1/cart/items - puts a catalog item into the
// caller's cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var body addCartItemBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed restaurantId")
	}
	catalogItemID, err := kernel.UUIDFromString(body.CatalogItemID)
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed catalogItemId")
	}

	cmd, err := commands.NewAddCartItemCommand(
		principalFrom(ctx).ID,
		restaurantID,
		body.RestaurantName,
		catalogItemID,
		body.Name,
		body.Price,
		body.ImageURL,
		body.Quantity,
		body.Note,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:itemId - changes quantity
// or note of one cart line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	catalogItemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed item id")
	}

	var body updateCartItemBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(principalFrom(ctx).ID, catalogItemID, body.Quantity, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	catalogItemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(principalFrom(ctx).ID, catalogItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the caller's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(principalFrom(ctx).ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders - commits the caller's cart into an
// order.
func (s *Server) Checkout(ctx echo.Context) error {
	var body checkoutBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	address, err := order.NewAddress(
		body.DeliveryAddress.Street,
		body.DeliveryAddress.City,
		body.DeliveryAddress.State,
		body.DeliveryAddress.Zip,
		body.DeliveryAddress.Latitude,
		body.DeliveryAddress.Longitude,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		principalFrom(ctx).ID,
		address,
		body.ContactPhone,
		body.PaymentMethod,
		body.SpecialInstructions,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdOrderView{
		ID:          created.ID().String(),
		Number:      created.Number(),
		Status:      created.Status().String(),
		TotalAmount: created.TotalAmount(),
	})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed order id")
	}

	query, err := queries.NewGetOrderQuery(principalFrom(ctx), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFrom(resp))
}

// ListMyOrders handles GET /api/v1/orders - the caller's own orders, newest
// first.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	query, err := queries.NewListUserOrdersQuery(principalFrom(ctx).ID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.ListUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewsFrom(resp))
}

// ListAllOrders handles GET /api/v1/orders/all - a page of all orders across
// restaurants. System admin only.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	var params struct {
		Limit  int `query:"limit"`
		Offset int `query:"offset"`
	}
	if err := ctx.Bind(&params); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed paging parameters")
	}

	query, err := queries.NewListAllOrdersQuery(principalFrom(ctx), params.Limit, params.Offset)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.ListAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewsFrom(resp))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed order id")
	}

	var body cancelOrderBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(principalFrom(ctx), orderID, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed order id")
	}

	var body updateOrderStatusBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(principalFrom(ctx), orderID, status, body.EstimatedDeliveryTime)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderDetails handles PATCH /api/v1/orders/:orderId/details - partial
// update of address, contact phone, and special instructions.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed order id")
	}

	var body updateOrderDetailsBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	var address *order.Address
	if body.DeliveryAddress != nil {
		parsed, addrErr := order.NewAddress(
			body.DeliveryAddress.Street,
			body.DeliveryAddress.City,
			body.DeliveryAddress.State,
			body.DeliveryAddress.Zip,
			body.DeliveryAddress.Latitude,
			body.DeliveryAddress.Longitude,
		)
		if addrErr != nil {
			return writeError(ctx, addrErr)
		}
		address = &parsed
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(principalFrom(ctx), orderID, address, body.ContactPhone, body.SpecialInstructions)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderDeliveryInfo handles PATCH /api/v1/orders/:orderId/delivery -
// attaches delivery identifiers reported by the delivery subsystem.
func (s *Server) UpdateOrderDeliveryInfo(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed order id")
	}

	var body updateDeliveryInfoBody
	if err := ctx.Bind(&body); err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "invalid request body")
	}

	deliveryID, err := kernel.UUIDFromString(body.DeliveryID)
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed deliveryId")
	}

	var deliveryPersonID *kernel.UUID
	if body.DeliveryPersonID != nil {
		pid, pidErr := kernel.UUIDFromString(*body.DeliveryPersonID)
		if pidErr != nil {
			return writeErrorBody(ctx, http.StatusBadRequest, "malformed deliveryPersonId")
		}
		deliveryPersonID = &pid
	}

	cmd, err := commands.NewUpdateOrderDeliveryInfoCommand(principalFrom(ctx), orderID, deliveryID, deliveryPersonID, body.DeliveryPersonName)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListRestaurantOrders handles GET /api/v1/restaurants/:restaurantId/orders.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed restaurant id")
	}

	query, err := queries.NewListRestaurantOrdersQuery(principalFrom(ctx), restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.ListRestOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewsFrom(resp))
}

// GetRestaurantOrderStats handles GET /api/v1/restaurants/:restaurantId/orders/stats.
func (s *Server) GetRestaurantOrderStats(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeErrorBody(ctx, http.StatusBadRequest, "malformed restaurant id")
	}

	query, err := queries.NewRestaurantOrderStatsQuery(principalFrom(ctx), restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.RestaurantStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statsViewFrom(resp))
}
