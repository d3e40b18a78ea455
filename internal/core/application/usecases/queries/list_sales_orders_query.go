package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrListSalesOrdersQueryIsNotConstructed = errors.New(
	"ListSalesOrdersQuery must be created via NewListSalesOrdersQuery constructor",
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListSalesOrdersParams filters and pages the order list. Zero Page and Size
// select the first page and the default size.
type ListSalesOrdersParams struct {
	AccountID string
	Status    string
	Page      int
	Size      int
}

// ListSalesOrdersQuery lists orders newest first, optionally narrowed to one
// account and one status.
type ListSalesOrdersQuery struct {
	accountID *kernel.AccountID
	status    salesorder.Status
	page      int
	size      int

	guard guard.ConstructorGuard
}

func NewListSalesOrdersQuery(params ListSalesOrdersParams) (ListSalesOrdersQuery, error) {
	q := ListSalesOrdersQuery{
		page:  params.Page,
		size:  params.Size,
		guard: guard.NewConstructorGuard(),
	}
	if q.page == 0 {
		q.page = 1
	}
	if q.size == 0 {
		q.size = DefaultPageSize
	}

	err := errors.Join(
		q.setAccountID(params.AccountID),
		q.setStatus(params.Status),
		q.checkPaging(),
	)
	if err != nil {
		return ListSalesOrdersQuery{}, err
	}

	return q, nil
}

func (q ListSalesOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListSalesOrdersQueryIsNotConstructed)
}

// AccountID returns the account filter, if any.
func (q ListSalesOrdersQuery) AccountID() (kernel.AccountID, bool) {
	if q.accountID == nil {
		return kernel.AccountID{}, false
	}
	return *q.accountID, true
}

// Status returns the status filter; salesorder.Unknown means no filter.
func (q ListSalesOrdersQuery) Status() salesorder.Status {
	return q.status
}

func (q ListSalesOrdersQuery) Page() int {
	return q.page
}

func (q ListSalesOrdersQuery) Size() int {
	return q.size
}

func (q ListSalesOrdersQuery) Offset() int {
	return (q.page - 1) * q.size
}

func (q *ListSalesOrdersQuery) setAccountID(raw string) error {
	if raw == "" {
		return nil
	}

	accountID, err := kernel.NewAccountID(raw)
	if err != nil {
		return err
	}
	q.accountID = &accountID
	return nil
}

func (q *ListSalesOrdersQuery) setStatus(raw string) error {
	if raw == "" {
		return nil
	}

	status, err := salesorder.ParseStatus(raw)
	if err != nil {
		return err
	}
	q.status = status
	return nil
}

func (q *ListSalesOrdersQuery) checkPaging() error {
	if q.page < 1 {
		return errs.NewValueIsOutOfRangeError("page", q.page, 1, "unbounded")
	}
	if q.size < 1 || q.size > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("size", q.size, 1, MaxPageSize)
	}
	return nil
}

// ListSalesOrdersQueryResponse is one page of documents. Pages is the number
// of pages needed to hold Total at the requested size.
type ListSalesOrdersQueryResponse struct {
	Items []salesorder.Document
	Total int64
	Page  int
	Size  int
	Pages int
}
