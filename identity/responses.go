package identity

import (
	"github.com/akitasoftware/go-utils/optionals"
)

// responseKey is the sum-typed key for the classification table: one cell per
// (status, method) combination the pipeline knows how to describe.
type responseKey struct {
	Status int
	Method Method
}

// Fixed descriptions for the cross product of the known status codes
// {200, 201, 202, 204, 400, 401, 404, 405} and documented methods. Cells
// absent from the table deliberately have no description; the caller records
// the example anyway but synthesizes no response text.
var responseDescriptions = buildResponseTable()

func buildResponseTable() map[responseKey]string {
	table := make(map[responseKey]string)

	cell := func(status int, m Method, desc string) {
		table[responseKey{Status: status, Method: m}] = desc
	}
	row := func(status int, desc string) {
		for _, m := range Methods {
			cell(status, m, desc)
		}
	}

	cell(200, GET, "Success")
	cell(200, POST, "Item created")
	cell(200, PUT, "Item updated")
	cell(200, PATCH, "Item updated")
	cell(200, DELETE, "Item deleted")

	cell(201, POST, "Item created")
	cell(201, PUT, "Item created")

	cell(202, POST, "Accepted for processing")
	cell(202, PUT, "Accepted for processing")
	cell(202, PATCH, "Accepted for processing")
	cell(202, DELETE, "Accepted for processing")

	cell(204, GET, "Success - no content")
	cell(204, PUT, "Item updated")
	cell(204, PATCH, "Item updated")
	cell(204, DELETE, "Item deleted")

	row(400, "Bad request")
	cell(400, DELETE, "Deletion failed - item in use")

	row(401, "Unauthorized")
	row(404, "Item not found")
	row(405, "Method not allowed")

	return table
}

// ClassifyResponse returns the canonical description for a (status, method)
// cell, or None when the combination is outside the table.
func ClassifyResponse(status int, method Method) optionals.Optional[string] {
	if desc, ok := responseDescriptions[responseKey{Status: status, Method: method}]; ok {
		return optionals.Some(desc)
	}
	return optionals.None[string]()
}
