package autoresponse

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/db"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/infra/repository"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	return gdb
}

type fixture struct {
	db   *gorm.DB
	repo *repository.AutoResponseGormRepository

	create     *CreateTemplate
	update     *UpdateTemplate
	deleteTpl  *DeleteTemplate
	setDefault *SetDefaultTemplate
	getDefault *GetDefaultTemplate
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := newTestDB(t)
	repo := repository.NewAutoResponseGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb), zerolog.Nop())

	return &fixture{
		db:         gdb,
		repo:       repo,
		create:     NewCreateTemplate(repo, dispatcher, nil),
		update:     NewUpdateTemplate(repo, dispatcher, nil),
		deleteTpl:  NewDeleteTemplate(repo, dispatcher, nil),
		setDefault: NewSetDefaultTemplate(repo, dispatcher, nil),
		getDefault: NewGetDefaultTemplate(repo),
	}
}

func (f *fixture) defaults(t *testing.T, userID uint, typeName string) []models.AutoResponse {
	t.Helper()

	var out []models.AutoResponse
	require.NoError(t, f.db.
		Where("user_id = ? AND type = ? AND is_default = ?", userID, typeName, true).
		Find(&out).Error)
	return out
}

func TestCreateTemplateRejectsUnknownType(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateTemplateInput{
		UserID:  1,
		Type:    "spam",
		Name:    "Nope",
		Content: "x",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_type"))
}

func TestCreateDefaultDemotesSibling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "general", Name: "A", Content: "a", IsDefault: true,
	})
	require.NoError(t, err)

	second, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "general", Name: "B", Content: "b", IsDefault: true,
	})
	require.NoError(t, err)

	defaults := f.defaults(t, 1, "general")
	require.Len(t, defaults, 1)
	assert.Equal(t, second.ID, defaults[0].ID)
	assert.NotEqual(t, first.ID, defaults[0].ID)
}

func TestSetDefaultSwapsAtomically(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "missed_call", Name: "A", Content: "a", IsDefault: true,
	})
	require.NoError(t, err)

	b, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "missed_call", Name: "B", Content: "b",
	})
	require.NoError(t, err)

	promoted, err := f.setDefault.Execute(ctx, 1, "missed_call", b.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	defaults := f.defaults(t, 1, "missed_call")
	require.Len(t, defaults, 1)
	assert.Equal(t, b.ID, defaults[0].ID)

	var demoted models.AutoResponse
	require.NoError(t, f.db.First(&demoted, a.ID).Error)
	assert.False(t, demoted.IsDefault)
}

func TestSetDefaultMissingTargetLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "general", Name: "A", Content: "a", IsDefault: true,
	})
	require.NoError(t, err)

	_, err = f.setDefault.Execute(ctx, 1, "general", 9999)
	assert.True(t, httperr.IsBusiness(err, "template_not_found"))

	defaults := f.defaults(t, 1, "general")
	require.Len(t, defaults, 1)
	assert.Equal(t, a.ID, defaults[0].ID)
}

func TestSetDefaultScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 2, Type: "general", Name: "Other", Content: "o",
	})
	require.NoError(t, err)

	_, err = f.setDefault.Execute(ctx, 1, "general", other.ID)
	assert.True(t, httperr.IsBusiness(err, "template_not_found"))
}

func TestUpdatePartialFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "general", Name: "A", Content: "old",
	})
	require.NoError(t, err)

	content := "new body"
	updated, err := f.update.Execute(ctx, UpdateTemplateInput{
		UserID:  1,
		ID:      a.ID,
		Content: &content,
	})
	require.NoError(t, err)

	assert.Equal(t, "new body", updated.Content)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "general", updated.Type)
}

func TestUpdatePromotionDemotesSibling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "general", Name: "A", Content: "a", IsDefault: true,
	})
	require.NoError(t, err)

	b, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "general", Name: "B", Content: "b",
	})
	require.NoError(t, err)

	isDefault := true
	_, err = f.update.Execute(ctx, UpdateTemplateInput{
		UserID:    1,
		ID:        b.ID,
		IsDefault: &isDefault,
	})
	require.NoError(t, err)

	defaults := f.defaults(t, 1, "general")
	require.Len(t, defaults, 1)
	assert.Equal(t, b.ID, defaults[0].ID)

	var wasDefault models.AutoResponse
	require.NoError(t, f.db.First(&wasDefault, a.ID).Error)
	assert.False(t, wasDefault.IsDefault)
}

func TestDeleteDefaultDoesNotPromoteSibling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "cancellation", Name: "A", Content: "a", IsDefault: true,
	})
	require.NoError(t, err)

	_, err = f.create.Execute(ctx, CreateTemplateInput{
		UserID: 1, Type: "cancellation", Name: "B", Content: "b",
	})
	require.NoError(t, err)

	require.NoError(t, f.deleteTpl.Execute(ctx, 1, a.ID))

	assert.Empty(t, f.defaults(t, 1, "cancellation"))

	got, err := f.getDefault.Execute(ctx, 1, "cancellation")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetDefaultRejectsUnknownType(t *testing.T) {
	f := newFixture(t)

	_, err := f.getDefault.Execute(context.Background(), 1, "spam")
	assert.True(t, httperr.IsBusiness(err, "invalid_type"))
}

func TestDeleteMissingTemplate(t *testing.T) {
	f := newFixture(t)

	err := f.deleteTpl.Execute(context.Background(), 1, 42)
	assert.True(t, httperr.IsBusiness(err, "template_not_found"))
}
