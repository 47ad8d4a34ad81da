package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors matched with errors.Is by the transport layer.
var (
	ErrNotFound             = errors.New("not found")
	ErrCrossTenantViolation = errors.New("cross-tenant violation")
	ErrDuplicateMembership  = errors.New("user is already a member of this organization")
	ErrUniquenessViolation  = errors.New("uniqueness violation")
	ErrInvalidInput         = errors.New("invalid input")
)

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint64
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CrossTenantError reports an attempt to relate rows owned by different
// organizations.
type CrossTenantError struct {
	Entity         string
	ID             uint64
	OrganizationID uint64
}

func (e *CrossTenantError) Error() string {
	return fmt.Sprintf("%s %d must belong to the same organization (%d)", e.Entity, e.ID, e.OrganizationID)
}

func (e *CrossTenantError) Is(target error) bool { return target == ErrCrossTenantViolation }

// UniquenessError reports a value that must be unique but already exists.
type UniquenessError struct {
	Entity string
	Field  string
	Value  string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

func (e *UniquenessError) Is(target error) bool { return target == ErrUniquenessViolation }

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ensureExists loads a referenced row and converts a missing record into a
// NotFoundError naming the entity and id.
func ensureExists[T any](ctx context.Context, entity string, id uint64, find func(context.Context, uint64) (*T, error)) (*T, error) {
	value, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: entity, ID: id}
		}
		return nil, fmt.Errorf("failed to find %s: %w", entity, err)
	}
	return value, nil
}

// writeError classifies a failed insert or update. Constraint violations
// that slip past the pre-checks (concurrent writers) still surface as typed
// errors; anything else is wrapped for the caller to log.
func writeError(action, entity string, err error, onDuplicate error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) && onDuplicate != nil:
		return onDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &NotFoundError{Entity: entity + " reference"}
	default:
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
}
