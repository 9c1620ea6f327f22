package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is wrapped by every validation failure reported by New.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// ErrorCode classifies catalog validation failures.
type ErrorCode string

const (
	CodeInvalidName   ErrorCode = "invalid_name"
	CodeDuplicateName ErrorCode = "duplicate_name"
	CodeCollision     ErrorCode = "collision"
	CodeEmptyGroup    ErrorCode = "empty_group"
	CodeGroupName     ErrorCode = "duplicate_group"
)

// Error describes a single authoring defect found while building a catalog.
type Error struct {
	Code  ErrorCode
	Group string
	Name  string
	// Other is the group that first declared Name when Code is CodeCollision.
	Other string
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeInvalidName:
		return fmt.Sprintf("catalog: group %s: invalid placeholder name %q", e.Group, e.Name)
	case CodeDuplicateName:
		return fmt.Sprintf("catalog: group %s: duplicate entry %q", e.Group, e.Name)
	case CodeCollision:
		return fmt.Sprintf("catalog: name %q declared in group %s and group %s", e.Name, e.Other, e.Group)
	case CodeEmptyGroup:
		return fmt.Sprintf("catalog: group %s has no entries", e.Group)
	case CodeGroupName:
		return fmt.Sprintf("catalog: group name %q used more than once", e.Group)
	default:
		return fmt.Sprintf("catalog: %s", e.Code)
	}
}

// Is lets errors.Is(err, ErrInvalidCatalog) match every catalog Error.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidCatalog
}
