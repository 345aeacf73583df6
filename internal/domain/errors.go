package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrMemberNotFound   = errors.New("member not found")

	ErrIllegalMember = errors.New("illegal member")
	ErrPersistence   = errors.New("persistence failure")

	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrPriceMismatch   = errors.New("price does not match cart contents")
)

// IllegalMemberError reports an aggregate accessed by someone other than its owner.
type IllegalMemberError struct {
	Resource    string
	ResourceID  uint64
	OwnerID     uint64
	RequesterID uint64
}

func (e *IllegalMemberError) Error() string {
	return fmt.Sprintf("%s %d is not owned by member %d", e.Resource, e.ResourceID, e.RequesterID)
}

func (e *IllegalMemberError) Is(target error) bool {
	return target == ErrIllegalMember
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
