// Package dto holds the API-facing shapes of every resource plus the
// row↔DTO translation tables. Column names on the store side are part of the
// storage contract and are reproduced verbatim, including historical quirks.
package dto

// setField writes a store column only when the input field is present, so
// partial updates leave every other column untouched.
func setField[T any](fields map[string]interface{}, column string, value *T) {
	if value == nil {
		return
	}
	fields[column] = *value
}
