package autoresponse

import (
	"context"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type CreateTemplateInput struct {
	UserID uint

	Type      string
	Name      string
	Content   string
	IsDefault bool
}

type CreateTemplate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCreateTemplate(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *CreateTemplate {
	return &CreateTemplate{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *CreateTemplate) Execute(
	ctx context.Context,
	in CreateTemplateInput,
) (*models.AutoResponse, error) {

	if !domain.Type(in.Type).Valid() {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	ar := &models.AutoResponse{
		UserID:    in.UserID,
		Type:      in.Type,
		Name:      in.Name,
		Content:   in.Content,
		IsDefault: in.IsDefault,
	}

	if err := uc.repo.Create(ctx, ar); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, cache.TemplatesKey(in.UserID))

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		ActorID:  &in.UserID,
		Action:   "template_created",
		Entity:   "auto_response",
		EntityID: &ar.ID,
	})

	return ar, nil
}
