package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// errorBody is the uniform error envelope returned on every failed request.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type addressBody struct {
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type addCartItemBody struct {
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	CatalogItemID  string          `json:"catalogItemId"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	Quantity       int             `json:"quantity"`
	Note           string          `json:"note,omitempty"`
}

type updateCartItemBody struct {
	Quantity int     `json:"quantity"`
	Note     *string `json:"note,omitempty"`
}

type checkoutBody struct {
	DeliveryAddress     addressBody `json:"deliveryAddress"`
	ContactPhone        string      `json:"contactPhone"`
	PaymentMethod       string      `json:"paymentMethod,omitempty"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
}

type cancelOrderBody struct {
	Reason string `json:"reason,omitempty"`
}

type updateOrderStatusBody struct {
	Status                string     `json:"status"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
}

type updateOrderDetailsBody struct {
	DeliveryAddress     *addressBody `json:"deliveryAddress,omitempty"`
	ContactPhone        *string      `json:"contactPhone,omitempty"`
	SpecialInstructions *string      `json:"specialInstructions,omitempty"`
}

type updateDeliveryInfoBody struct {
	DeliveryID         string  `json:"deliveryId"`
	DeliveryPersonID   *string `json:"deliveryPersonId,omitempty"`
	DeliveryPersonName string  `json:"deliveryPersonName,omitempty"`
}

type cartItemView struct {
	CatalogItemID string          `json:"catalogItemId"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Quantity      int             `json:"quantity"`
	Note          string          `json:"note,omitempty"`
}

type cartView struct {
	UserID         string          `json:"userId"`
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	Items          []cartItemView  `json:"items"`
	ItemCount      int             `json:"itemCount"`
	Total          decimal.Decimal `json:"total"`
}

type orderItemView struct {
	CatalogItemID string          `json:"catalogItemId"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Quantity      int             `json:"quantity"`
	Note          string          `json:"note,omitempty"`
}

type orderView struct {
	ID                    string          `json:"id"`
	Number                string          `json:"number"`
	UserID                string          `json:"userId"`
	RestaurantID          string          `json:"restaurantId"`
	RestaurantName        string          `json:"restaurantName"`
	Items                 []orderItemView `json:"items"`
	Status                string          `json:"status"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	DeliveryAddress       addressBody     `json:"deliveryAddress"`
	ContactPhone          string          `json:"contactPhone"`
	PaymentMethod         string          `json:"paymentMethod,omitempty"`
	PaymentStatus         string          `json:"paymentStatus"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime,omitempty"`
	SpecialInstructions   string          `json:"specialInstructions,omitempty"`
	DeliveryID            *string         `json:"deliveryId,omitempty"`
	DeliveryPersonID      *string         `json:"deliveryPersonId,omitempty"`
	DeliveryPersonName    string          `json:"deliveryPersonName,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// createdOrderView is the checkout confirmation; clients fetch the full order
// read model separately.
type createdOrderView struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type restaurantOrderStatsView struct {
	RestaurantID      string          `json:"restaurantId"`
	TotalOrders       int             `json:"totalOrders"`
	TodayOrders       int             `json:"todayOrders"`
	ActiveOrders      int             `json:"activeOrders"`
	StatusCounts      map[string]int  `json:"statusCounts"`
	TodayStatusCounts map[string]int  `json:"todayStatusCounts"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TodayRevenue      decimal.Decimal `json:"todayRevenue"`
}

func cartViewFrom(resp queries.CartResponse) cartView {
	items := make([]cartItemView, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = cartItemView{
			CatalogItemID: item.CatalogItemID.String(),
			Name:          item.Name,
			Price:         item.Price,
			ImageURL:      item.ImageURL,
			Quantity:      item.Quantity,
			Note:          item.Note,
		}
	}

	return cartView{
		UserID:         resp.UserID.String(),
		RestaurantID:   resp.RestaurantID.String(),
		RestaurantName: resp.RestaurantName,
		Items:          items,
		ItemCount:      resp.ItemCount,
		Total:          resp.Total,
	}
}

func orderViewFrom(resp queries.OrderResponse) orderView {
	items := make([]orderItemView, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = orderItemView{
			CatalogItemID: item.CatalogItemID.String(),
			Name:          item.Name,
			Price:         item.Price,
			ImageURL:      item.ImageURL,
			Quantity:      item.Quantity,
			Note:          item.Note,
		}
	}

	var deliveryID, deliveryPersonID *string
	if resp.DeliveryID != nil {
		s := resp.DeliveryID.String()
		deliveryID = &s
	}
	if resp.DeliveryPersonID != nil {
		s := resp.DeliveryPersonID.String()
		deliveryPersonID = &s
	}

	return orderView{
		ID:             resp.ID.String(),
		Number:         resp.Number,
		UserID:         resp.UserID.String(),
		RestaurantID:   resp.RestaurantID.String(),
		RestaurantName: resp.RestaurantName,
		Items:          items,
		Status:         resp.Status,
		TotalAmount:    resp.TotalAmount,
		DeliveryAddress: addressBody{
			Street:    resp.DeliveryAddress.Street,
			City:      resp.DeliveryAddress.City,
			State:     resp.DeliveryAddress.State,
			Zip:       resp.DeliveryAddress.Zip,
			Latitude:  resp.DeliveryAddress.Latitude,
			Longitude: resp.DeliveryAddress.Longitude,
		},
		ContactPhone:          resp.ContactPhone,
		PaymentMethod:         resp.PaymentMethod,
		PaymentStatus:         resp.PaymentStatus,
		EstimatedDeliveryTime: resp.EstimatedDeliveryTime,
		SpecialInstructions:   resp.SpecialInstructions,
		DeliveryID:            deliveryID,
		DeliveryPersonID:      deliveryPersonID,
		DeliveryPersonName:    resp.DeliveryPersonName,
		CreatedAt:             resp.CreatedAt,
	}
}

func orderViewsFrom(resps []queries.OrderResponse) []orderView {
	views := make([]orderView, len(resps))
	for i, resp := range resps {
		views[i] = orderViewFrom(resp)
	}
	return views
}

func statsViewFrom(resp queries.RestaurantOrderStatsResponse) restaurantOrderStatsView {
	return restaurantOrderStatsView{
		RestaurantID:      resp.RestaurantID.String(),
		TotalOrders:       resp.TotalOrders,
		TodayOrders:       resp.TodayOrders,
		ActiveOrders:      resp.ActiveOrders,
		StatusCounts:      resp.StatusCounts,
		TodayStatusCounts: resp.TodayStatusCounts,
		TotalRevenue:      resp.TotalRevenue,
		TodayRevenue:      resp.TodayRevenue,
	}
}

// writeError maps application errors onto HTTP status codes. Validation
// failures surface their message; everything unclassified collapses into an
// opaque 500 so infrastructure details never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorBody(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeErrorBody(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return writeErrorBody(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidOrderState),
		errors.Is(err, errs.ErrCartIsEmpty):
		return writeErrorBody(ctx, http.StatusConflict, err.Error())
	default:
		return writeErrorBody(ctx, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorBody(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, errorBody{Code: code, Message: message})
}
