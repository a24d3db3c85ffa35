package autoresponse

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type SetDefaultTemplate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewSetDefaultTemplate(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *SetDefaultTemplate {
	return &SetDefaultTemplate{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// Execute promotes one template to the default of its category. Demotion of
// the previous default and the promotion are one transaction in the
// repository; a missing target fails before anything is written.
func (uc *SetDefaultTemplate) Execute(
	ctx context.Context,
	userID uint,
	typeName string,
	id uint,
) (*models.AutoResponse, error) {

	t := domain.Type(typeName)
	if !t.Valid() {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	ar, err := uc.repo.SetDefault(ctx, userID, t, id)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, cache.TemplatesKey(userID))

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		ActorID:  &userID,
		Action:   "template_set_default",
		Entity:   "auto_response",
		EntityID: &ar.ID,
	})

	return ar, nil
}
