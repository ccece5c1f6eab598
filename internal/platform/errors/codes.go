// Package errors provides structured error handling for sheet generation.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Sheet configuration errors
	CodeSheetGeometryInvalid Code = "SHEET_GEOMETRY_INVALID"
	CodeSheetWeightsInvalid  Code = "SHEET_WEIGHTS_INVALID"

	// Environment errors
	CodeSheetEntropyUnavailable Code = "SHEET_ENTROPY_UNAVAILABLE"

	// Output errors
	CodeSheetRenderFailed Code = "SHEET_RENDER_FAILED"
)

// HTTPStatus maps domain codes to HTTP status codes.
//
// Geometry and weights come from server configuration rather than request
// input, so they surface as server errors.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeSheetEntropyUnavailable:
		return http.StatusServiceUnavailable
	case CodeSheetGeometryInvalid,
		CodeSheetWeightsInvalid,
		CodeSheetRenderFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
