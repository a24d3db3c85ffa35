package autoresponse

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
)

type DeleteTemplate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewDeleteTemplate(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *DeleteTemplate {
	return &DeleteTemplate{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// Execute removes a template. Deleting the default leaves the category with
// no default; no sibling is promoted in its place.
func (uc *DeleteTemplate) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) error {

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, cache.TemplatesKey(userID))

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		ActorID:  &userID,
		Action:   "template_deleted",
		Entity:   "auto_response",
		EntityID: &id,
	})

	return nil
}
