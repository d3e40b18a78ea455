package http

import (
	"errors"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type CreatedResponse struct {
	ID string `json:"id"`
}

// ListSalesOrdersResponse keeps the field names of the original list API.
type ListSalesOrdersResponse struct {
	Total  int64                 `json:"total"`
	Pages  int                   `json:"pages"`
	Size   int                   `json:"size"`
	Page   int                   `json:"page"`
	Result []salesorder.Document `json:"result"`
}

type ErrorResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Kind    string        `json:"kind,omitempty"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one node of a domain failure tree.
type ErrorDetail struct {
	Kind      string             `json:"kind,omitempty"`
	Message   string             `json:"message"`
	Value     any                `json:"value,omitempty"`
	Rejection *RejectionResponse `json:"rejection,omitempty"`
	Inner     []ErrorDetail      `json:"inner,omitempty"`
}

type RejectionResponse struct {
	LineItemID string                      `json:"lineItemId"`
	LineNumber int                         `json:"lineNumber"`
	Properties []lineitem.PropertyDocument `json:"properties"`
	Flags      []lineitem.FlagDocument     `json:"flags"`
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps an application error onto a status code. Domain failures are
// returned as a tree so clients see every problem at once.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Errorw("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: http.StatusText(status),
		})
	}

	resp := ErrorResponse{
		Code:    status,
		Message: err.Error(),
	}
	var domainErr *errs.DomainError
	if errors.As(err, &domainErr) {
		root := detailOf(domainErr)
		resp.Kind = root.Kind
		resp.Message = domainErr.Message
		resp.Errors = root.Inner
		if root.Rejection != nil {
			resp.Errors = []ErrorDetail{root}
		}
	}

	return ctx.JSON(status, resp)
}

// statusOf maps an error onto a status code. Stored state that no longer loads
// is a server fault, not bad input, whatever its kind.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.FailedToLoadSalesOrder),
		errors.Is(err, errs.FailedToLoadLineItems),
		errors.Is(err, errs.FailedToLoadLineItem):
		return http.StatusInternalServerError
	case errs.KindOf(err) == errs.LineItemNotFound:
		return http.StatusNotFound
	case errs.KindOf(err) != "",
		errors.Is(err, commands.ErrUnknownVariant):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrSalesOrderAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func detailOf(err error) ErrorDetail {
	var domainErr *errs.DomainError
	if !errors.As(err, &domainErr) {
		return ErrorDetail{Message: err.Error()}
	}

	detail := ErrorDetail{
		Kind:    string(domainErr.Kind),
		Message: domainErr.Message,
	}
	switch v := domainErr.Value.(type) {
	case string, int:
		detail.Value = v
	case lineitem.Rejection:
		detail.Rejection = rejectionOf(v)
	}
	for _, inner := range domainErr.Inner {
		detail.Inner = append(detail.Inner, detailOf(inner))
	}
	return detail
}

func rejectionOf(r lineitem.Rejection) *RejectionResponse {
	props := make([]lineitem.PropertyDocument, 0, len(r.Properties))
	for _, p := range r.Properties {
		props = append(props, lineitem.PropertyDocument{Name: p.Name, Value: p.Value})
	}
	flags := make([]lineitem.FlagDocument, 0, len(r.Flags))
	for _, f := range r.Flags {
		flags = append(flags, lineitem.FlagDocument{
			Type:     string(f.Type),
			Property: f.Property,
			Value:    f.Value,
			Pattern:  f.Pattern,
		})
	}

	return &RejectionResponse{
		LineItemID: r.LineItemID.String(),
		LineNumber: r.LineNumber,
		Properties: props,
		Flags:      flags,
	}
}
