package queries

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/pkg/errs"
	"toyrental/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of order headers matching the given
// filters. Every filter is optional; absent filters match everything.
type ListOrdersQuery struct {
	customerID *kernel.UUID
	status     *order.Status
	city       string
	dateFrom   *time.Time
	dateTo     *time.Time
	page       int
	limit      int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged order listing query. A zero page or
// limit falls back to the first page and the default page size.
func NewListOrdersQuery(
	customerID *kernel.UUID,
	status *order.Status,
	city string,
	dateFrom, dateTo *time.Time,
	page, limit int,
) (ListOrdersQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if page < 0 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, int(^uint(0)>>1))
	}
	if limit < 0 || limit > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	return ListOrdersQuery{
		customerID: customerID,
		status:     status,
		city:       city,
		dateFrom:   dateFrom,
		dateTo:     dateTo,
		page:       page,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, if set.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter, if set.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// City returns the delivery city filter, or empty for no filter.
func (q ListOrdersQuery) City() string {
	return q.city
}

// DateFrom returns the lower delivery date bound, if set.
func (q ListOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the upper delivery date bound, if set.
func (q ListOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// OrderSummaryResponse represents one order header in the listing.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerID   kernel.UUID
	Status       string
	TotalAmount  float64
	DeliveryCity string
	DeliveryDate time.Time
}

// ListOrdersQueryResponse is one page of matching orders together with the
// total match count.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse
	Total  int64
	Page   int
	Limit  int
}
