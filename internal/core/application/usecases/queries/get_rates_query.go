// Package queries contains read operations: the customer rate calculation and
// the operator settings reads.
package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/guard"
)

var ErrGetRatesQueryIsNotConstructed = errors.New(
	"GetRatesQuery must be created via NewGetRatesQuery constructor",
)

// GetRatesQuery asks for the priced quote list of one shipment.
//
// Example:
//
//	query, err := NewGetRatesQuery(req)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment: %w", err)
//	}
//	rates, err := handler.Handle(ctx, query)
type GetRatesQuery struct { //nolint:recvcheck //using for validation
	request shipment.Request

	guard guard.ConstructorGuard
}

// NewGetRatesQuery wraps a validated shipment request.
func NewGetRatesQuery(req shipment.Request) (GetRatesQuery, error) {
	if err := req.Validate(); err != nil {
		return GetRatesQuery{}, err
	}
	return GetRatesQuery{request: req, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetRatesQueryIsNotConstructed)
}

func (q GetRatesQuery) Request() shipment.Request {
	return q.request
}

// GetRatesQueryResponse is the priced quote list with the source that produced it.
type GetRatesQueryResponse struct {
	Quotes quote.List
	Source quote.Source
}
