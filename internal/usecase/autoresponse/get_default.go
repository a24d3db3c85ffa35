package autoresponse

import (
	"context"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type GetDefaultTemplate struct {
	repo domain.Repository
}

func NewGetDefaultTemplate(repo domain.Repository) *GetDefaultTemplate {
	return &GetDefaultTemplate{repo: repo}
}

// Execute returns nil when the category has no default; that is a valid
// state, not an error.
func (uc *GetDefaultTemplate) Execute(
	ctx context.Context,
	userID uint,
	typeName string,
) (*models.AutoResponse, error) {

	t := domain.Type(typeName)
	if !t.Valid() {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	return uc.repo.GetDefault(ctx, userID, t)
}
