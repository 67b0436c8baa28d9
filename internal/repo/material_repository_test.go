package repo

import (
	"Fabrika/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMaterialRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	r := NewMaterialRepository(db)
	ctx := context.Background()

	m := &model.Material{Name: "Steel", Description: strPtr("High-quality metal")}
	assert.NoError(t, r.Create(ctx, m))
	assert.NotZero(t, m.ID)

	got, err := r.GetByID(ctx, m.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Steel", got.Name)

	ms, err := r.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, ms, 1)

	got.Name = "Alloy"
	assert.NoError(t, r.Update(ctx, got))
	got, err = r.GetByID(ctx, m.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alloy", got.Name)

	assert.NoError(t, r.Delete(ctx, m.ID))
	_, err = r.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMaterialRepository_DuplicateNameLeavesOneRow(t *testing.T) {
	db := newTestDB(t)
	r := NewMaterialRepository(db)
	ctx := context.Background()

	assert.NoError(t, r.Create(ctx, &model.Material{Name: "Steel"}))

	// уникальность имени держит индекс БД: вторая вставка проигрывает
	err := r.Create(ctx, &model.Material{Name: "Steel"})
	assert.Error(t, err)

	var count int64
	assert.NoError(t, db.Model(&model.Material{}).Where("name = ?", "Steel").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
