package domain

import "errors"

var (
	// ErrProductNotFound is returned when the upstream database has no match
	// for a barcode or search term.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyProduct is returned when upstream found a record but nothing
	// usable survived normalization.
	ErrEmptyProduct = errors.New("product contains no usable data")

	// ErrUpstreamTimeout is returned when the upstream call exceeds the
	// configured timeout.
	ErrUpstreamTimeout = errors.New("external API timed out")

	// ErrUpstreamUnreachable is returned when a connection to upstream
	// cannot be established.
	ErrUpstreamUnreachable = errors.New("external API unreachable")

	// ErrUpstreamFailure is returned for any other upstream request failure.
	ErrUpstreamFailure = errors.New("external API request failed")
)
