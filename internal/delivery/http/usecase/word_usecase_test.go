package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/evandrarf/linguaflow-be/internal/pkg/testdb"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWordUsecase(t *testing.T) (WordUsecase, *clock) {
	db := testdb.New(t)
	c := newClock(testNow)
	return NewWordUsecase(WordConfig{
		DB:         db,
		Repository: repository.NewWordRepository(db),
		Validator:  validate.NewValidator(),
		Log:        quietLogger(),
		Now:        c.Now,
	}), c
}

func TestWordUsecase_CRUD(t *testing.T) {
	u, _ := newWordUsecase(t)
	ctx := context.Background()

	created, err := u.Create(ctx, testUser, entity.WordRequest{English: "  Book ", Arabic: " كتاب "})
	require.NoError(t, err)
	assert.Equal(t, "Book", created.English)
	assert.Equal(t, "كتاب", created.Arabic)

	_, err = u.Create(ctx, testUser, entity.WordRequest{English: "pen", Arabic: "قلم"})
	require.NoError(t, err)

	list, err := u.List(ctx, testUser, entity.ListWordsQuery{Q: "boo"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	list, err = u.List(ctx, testUser, entity.ListWordsQuery{Q: "قلم"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pen", list[0].English)

	updated, err := u.Update(ctx, testUser, created.ID, entity.WordRequest{English: "notebook", Arabic: "دفتر"})
	require.NoError(t, err)
	assert.Equal(t, "notebook", updated.English)

	require.NoError(t, u.Delete(ctx, testUser, created.ID))

	list, err = u.List(ctx, testUser, entity.ListWordsQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWordUsecase_OwnerScoped(t *testing.T) {
	u, _ := newWordUsecase(t)
	ctx := context.Background()

	created, err := u.Create(ctx, testUser, entity.WordRequest{English: "book", Arabic: "كتاب"})
	require.NoError(t, err)

	other := testUser
	other.ID = "user-2"

	_, err = u.Update(ctx, other, created.ID, entity.WordRequest{English: "x", Arabic: "y"})
	assert.True(t, apperror.IsNotFound(err))

	err = u.Delete(ctx, other, created.ID)
	assert.True(t, apperror.IsNotFound(err))

	list, err := u.List(ctx, other, entity.ListWordsQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWordUsecase_Import(t *testing.T) {
	u, _ := newWordUsecase(t)
	ctx := context.Background()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"english", "arabic", "created_at"},
		{"cat", "قطة", "2024-01-10"},
		{"dog", "كلب", ""},
		{"   ", "شمس", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	res, err := u.Import(ctx, testUser.ID, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Row 4")

	list, err := u.List(ctx, testUser, entity.ListWordsQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// newest first: dog was stamped with the import time
	assert.Equal(t, "dog", list[0].English)
	assert.True(t, list[0].CreatedAt.Equal(testNow))
	assert.Equal(t, 10, list[1].CreatedAt.Day())
}
