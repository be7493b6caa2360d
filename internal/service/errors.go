package service

import "fmt"

// MalformedRequestError indicates a structural violation in the request
// body, detected before any catalog lookup. Field is the path of the
// offending field (e.g. "items[2].quantity").
type MalformedRequestError struct {
	Field  string
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("malformed request: %s: %s", e.Field, e.Reason)
}

// UnknownProductError indicates a requested product id does not exist in
// the catalog snapshot
type UnknownProductError struct {
	ProductID int64
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// SelectionCountError indicates the number of selected options for an
// option group fell outside its [MinCount, MaxCount] bounds.
// MaxCount is nil when the group has no upper bound.
type SelectionCountError struct {
	ProductID  int64
	GroupID    int64
	GroupTitle string
	Selected   int
	MinCount   int
	MaxCount   *int
}

func (e *SelectionCountError) Error() string {
	if e.Selected < e.MinCount {
		return fmt.Sprintf("option group %q requires at least %d selection(s), got %d", e.GroupTitle, e.MinCount, e.Selected)
	}
	return fmt.Sprintf("option group %q allows at most %d selection(s), got %d", e.GroupTitle, *e.MaxCount, e.Selected)
}
