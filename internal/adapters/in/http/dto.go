package http

import (
	"time"

	"toyrental/internal/core/application/usecases/queries"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the checkout request body.
type CreateOrderRequest struct {
	CustomerID       string                   `json:"customerId"`
	Items            []CreateOrderItemRequest `json:"items"`
	DeliveryAddress  string                   `json:"deliveryAddress"`
	DeliveryCity     string                   `json:"deliveryCity"`
	DeliveryDate     time.Time                `json:"deliveryDate"`
	DeliveryTimeSlot string                   `json:"deliveryTimeSlot"`
	ReturnDate       *time.Time               `json:"returnDate,omitempty"`
	ReturnTimeSlot   string                   `json:"returnTimeSlot,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
}

// CreateOrderItemRequest is one toy line in the checkout request.
type CreateOrderItemRequest struct {
	ToyID              string  `json:"toyId"`
	Quantity           int     `json:"quantity"`
	RentalPrice        float64 `json:"rentalPrice"`
	RentalDurationDays int     `json:"rentalDurationDays"`
}

// UpdateOrderStatusRequest carries the target lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateToyPricesRequest carries the new rental rates for a toy. Absent
// rates stay unchanged.
type UpdateToyPricesRequest struct {
	DailyRate   *float64 `json:"dailyRate,omitempty"`
	WeeklyRate  *float64 `json:"weeklyRate,omitempty"`
	MonthlyRate *float64 `json:"monthlyRate,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	ChangedBy   string   `json:"changedBy"`
}

// OrderResponse is the full order representation returned by the write
// endpoints and GET /orders/{orderId}.
type OrderResponse struct {
	ID               string                  `json:"id"`
	Number           string                  `json:"number"`
	CustomerID       string                  `json:"customerId"`
	Customer         *OrderCustomerResponse  `json:"customer,omitempty"`
	Status           string                  `json:"status"`
	TotalAmount      float64                 `json:"totalAmount"`
	DepositAmount    float64                 `json:"depositAmount"`
	DeliveryAddress  string                  `json:"deliveryAddress"`
	DeliveryCity     string                  `json:"deliveryCity"`
	DeliveryDate     time.Time               `json:"deliveryDate"`
	DeliveryTimeSlot string                  `json:"deliveryTimeSlot"`
	ReturnDate       *time.Time              `json:"returnDate,omitempty"`
	ReturnTimeSlot   string                  `json:"returnTimeSlot,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	Items            []OrderItemResponse     `json:"items"`
	Deliveries       []OrderDeliveryResponse `json:"deliveries"`
}

// OrderCustomerResponse is the customer contact block expanded on
// GET /orders/{orderId}.
type OrderCustomerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// OrderItemResponse is one toy line of an order.
type OrderItemResponse struct {
	ToyID              string  `json:"toyId"`
	ToyName            string  `json:"toyName,omitempty"`
	Quantity           int     `json:"quantity"`
	RentalPrice        float64 `json:"rentalPrice"`
	RentalDurationDays int     `json:"rentalDurationDays"`
	ConditionBefore    string  `json:"conditionBefore"`
}

// OrderDeliveryResponse is one scheduled trip of an order.
type OrderDeliveryResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	ScheduledDate  time.Time `json:"scheduledDate"`
	TimeSlot       string    `json:"timeSlot"`
	RecipientName  string    `json:"recipientName"`
	RecipientPhone string    `json:"recipientPhone"`
}

// OrderListResponse is one page of order summaries.
type OrderListResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Limit  int                    `json:"limit"`
}

// OrderSummaryResponse is one order header in a listing.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	CustomerID   string    `json:"customerId"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"totalAmount"`
	DeliveryCity string    `json:"deliveryCity"`
	DeliveryDate time.Time `json:"deliveryDate"`
}

// ToyResponse is the toy representation returned after a price update.
type ToyResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	RentalPriceDaily   float64 `json:"rentalPriceDaily"`
	RentalPriceWeekly  float64 `json:"rentalPriceWeekly"`
	RentalPriceMonthly float64 `json:"rentalPriceMonthly"`
	StockQuantity      int     `json:"stockQuantity"`
	AvailableQuantity  int     `json:"availableQuantity"`
	Status             string  `json:"status"`
	Condition          string  `json:"condition"`
}

// PriceHistoryResponse is the audit trail for one toy.
type PriceHistoryResponse struct {
	Changes []PriceChangeResponse `json:"changes"`
}

// PriceChangeResponse is one recorded price change.
type PriceChangeResponse struct {
	ID            string    `json:"id"`
	ToyID         string    `json:"toyId"`
	RuleID        *string   `json:"ruleId,omitempty"`
	PricingType   string    `json:"pricingType"`
	OldPrice      float64   `json:"oldPrice"`
	NewPrice      float64   `json:"newPrice"`
	Reason        string    `json:"reason,omitempty"`
	ChangedBy     string    `json:"changedBy"`
	EffectiveDate time.Time `json:"effectiveDate"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ToyID:              item.ToyID().String(),
			Quantity:           item.Quantity(),
			RentalPrice:        item.RentalPrice(),
			RentalDurationDays: item.RentalDurationDays(),
			ConditionBefore:    string(item.ConditionBefore()),
		})
	}

	deliveries := make([]OrderDeliveryResponse, 0, len(aggregate.Deliveries()))
	for _, trip := range aggregate.Deliveries() {
		deliveries = append(deliveries, OrderDeliveryResponse{
			ID:             trip.ID().String(),
			Type:           string(trip.Type()),
			Status:         string(trip.Status()),
			ScheduledDate:  trip.ScheduledDate(),
			TimeSlot:       trip.TimeSlot(),
			RecipientName:  trip.RecipientName(),
			RecipientPhone: trip.RecipientPhone(),
		})
	}

	return OrderResponse{
		ID:               aggregate.ID().String(),
		Number:           aggregate.Number(),
		CustomerID:       aggregate.CustomerID().String(),
		Status:           aggregate.Status().String(),
		TotalAmount:      aggregate.TotalAmount(),
		DepositAmount:    aggregate.DepositAmount(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		DeliveryCity:     aggregate.DeliveryCity(),
		DeliveryDate:     aggregate.DeliveryDate(),
		DeliveryTimeSlot: aggregate.DeliveryTimeSlot(),
		ReturnDate:       aggregate.ReturnDate(),
		ReturnTimeSlot:   aggregate.ReturnTimeSlot(),
		Notes:            aggregate.Notes(),
		Items:            items,
		Deliveries:       deliveries,
	}
}

func orderResponseFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			ToyID:              item.ToyID.String(),
			ToyName:            item.ToyName,
			Quantity:           item.Quantity,
			RentalPrice:        item.RentalPrice,
			RentalDurationDays: item.RentalDurationDays,
			ConditionBefore:    item.ConditionBefore,
		})
	}

	deliveries := make([]OrderDeliveryResponse, 0, len(model.Deliveries))
	for _, trip := range model.Deliveries {
		deliveries = append(deliveries, OrderDeliveryResponse{
			ID:             trip.ID.String(),
			Type:           trip.Type,
			Status:         trip.Status,
			ScheduledDate:  trip.ScheduledDate,
			TimeSlot:       trip.TimeSlot,
			RecipientName:  trip.RecipientName,
			RecipientPhone: trip.RecipientPhone,
		})
	}

	return OrderResponse{
		ID:         model.ID.String(),
		Number:     model.Number,
		CustomerID: model.CustomerID.String(),
		Customer: &OrderCustomerResponse{
			Name:    model.Customer.Name,
			Phone:   model.Customer.Phone,
			Address: model.Customer.Address,
			City:    model.Customer.City,
		},
		Status:           model.Status,
		TotalAmount:      model.TotalAmount,
		DepositAmount:    model.DepositAmount,
		DeliveryAddress:  model.DeliveryAddress,
		DeliveryCity:     model.DeliveryCity,
		DeliveryDate:     model.DeliveryDate,
		DeliveryTimeSlot: model.DeliveryTimeSlot,
		ReturnDate:       model.ReturnDate,
		ReturnTimeSlot:   model.ReturnTimeSlot,
		Notes:            model.Notes,
		Items:            items,
		Deliveries:       deliveries,
	}
}

func toyResponseFromAggregate(aggregate *toy.Toy) ToyResponse {
	return ToyResponse{
		ID:                 aggregate.ID().String(),
		Name:               aggregate.Name(),
		RentalPriceDaily:   aggregate.RentalPriceDaily(),
		RentalPriceWeekly:  aggregate.RentalPriceWeekly(),
		RentalPriceMonthly: aggregate.RentalPriceMonthly(),
		StockQuantity:      aggregate.StockQuantity(),
		AvailableQuantity:  aggregate.AvailableQuantity(),
		Status:             aggregate.Status().String(),
		Condition:          string(aggregate.Condition()),
	}
}
