package autoresponse

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type UpdateTemplateInput struct {
	UserID uint
	ID     uint

	Type      *string
	Name      *string
	Content   *string
	IsDefault *bool
}

type UpdateTemplate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewUpdateTemplate(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *UpdateTemplate {
	return &UpdateTemplate{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// Execute applies a partial update. The single-default guard runs on this
// path too, so a direct content edit can never leave two defaults behind.
func (uc *UpdateTemplate) Execute(
	ctx context.Context,
	in UpdateTemplateInput,
) (*models.AutoResponse, error) {

	ar, err := uc.repo.Get(ctx, in.UserID, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("template_not_found")
	}

	if in.Type != nil {
		if !domain.Type(*in.Type).Valid() {
			return nil, httperr.ErrBusiness("invalid_type")
		}
		ar.Type = *in.Type
	}
	if in.Name != nil {
		ar.Name = *in.Name
	}
	if in.Content != nil {
		ar.Content = *in.Content
	}
	if in.IsDefault != nil {
		ar.IsDefault = *in.IsDefault
	}

	if err := uc.repo.Update(ctx, ar); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, cache.TemplatesKey(in.UserID))

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		ActorID:  &in.UserID,
		Action:   "template_updated",
		Entity:   "auto_response",
		EntityID: &ar.ID,
	})

	return ar, nil
}
