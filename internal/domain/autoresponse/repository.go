package autoresponse

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/models"
)

type Repository interface {
	List(
		ctx context.Context,
		userID uint,
	) ([]models.AutoResponse, error)

	ListByType(
		ctx context.Context,
		userID uint,
		t Type,
	) ([]models.AutoResponse, error)

	Get(
		ctx context.Context,
		userID uint,
		id uint,
	) (*models.AutoResponse, error)

	// GetDefault returns (nil, nil) when the category has no default.
	GetDefault(
		ctx context.Context,
		userID uint,
		t Type,
	) (*models.AutoResponse, error)

	// Create and Update demote sibling defaults in the same transaction
	// whenever the record carries IsDefault.
	Create(
		ctx context.Context,
		ar *models.AutoResponse,
	) error

	Update(
		ctx context.Context,
		ar *models.AutoResponse,
	) error

	// SetDefault demotes every sibling of the category and promotes the
	// target atomically. Fails without mutation when the id is not among
	// the category's templates.
	SetDefault(
		ctx context.Context,
		userID uint,
		t Type,
		id uint,
	) (*models.AutoResponse, error)

	Delete(
		ctx context.Context,
		userID uint,
		id uint,
	) error
}
