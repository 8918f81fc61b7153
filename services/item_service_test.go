package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management/models"
)

func TestItemCreateAndDuplicate(t *testing.T) {
	svc := NewItemService(newTestDB(t))

	first, err := svc.Create(models.Item{Name: "Coffee", Price: 5, Description: "hot coffee drink"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	existing, err := svc.Create(models.Item{Name: "Coffee", Price: 9, Description: "another"})
	assert.ErrorIs(t, err, ErrDuplicateItemName)
	assert.Equal(t, first.ID, existing.ID)

	items, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemSearch(t *testing.T) {
	svc := NewItemService(newTestDB(t))

	_, err := svc.Create(models.Item{Name: "Coffee", Price: 5, Description: "espresso"})
	require.NoError(t, err)
	_, err = svc.Create(models.Item{Name: "Latte", Price: 6, Description: "hot coffee drink"})
	require.NoError(t, err)
	_, err = svc.Create(models.Item{Name: "Tea", Price: 4, Description: "green tea"})
	require.NoError(t, err)

	items, err := svc.Search("cof")
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.ElementsMatch(t, []string{"Coffee", "Latte"}, names,
		"matches name or description, case-insensitively")

	items, err = svc.Search("COFFEE")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.Search("nothing-like-this")
	require.NoError(t, err)
	assert.Empty(t, items, "no match is an empty result, not an error")
}

func TestItemUpdate(t *testing.T) {
	svc := NewItemService(newTestDB(t))

	item, err := svc.Create(models.Item{Name: "Coffee", Price: 5, Description: "espresso"})
	require.NoError(t, err)

	updated, err := svc.Update(item.ID, models.Item{Name: "Americano", Price: 7, Description: "long black"})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Americano", updated.Name)
	assert.Equal(t, 7, updated.Price)
	assert.Equal(t, "long black", updated.Description)
}

func TestItemUpdateNotFound(t *testing.T) {
	svc := NewItemService(newTestDB(t))

	_, err := svc.Update("8f14ae27-21cb-4305-a0e1-ec61e7fc1c9d", models.Item{Name: "X", Price: 1, Description: "y"})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Update("nope", models.Item{Name: "X", Price: 1, Description: "y"})
	assert.ErrorIs(t, err, ErrMalformedID)
}

func TestItemDelete(t *testing.T) {
	svc := NewItemService(newTestDB(t))

	item, err := svc.Create(models.Item{Name: "Coffee", Price: 5, Description: "espresso"})
	require.NoError(t, err)

	deleted, err := svc.Delete(item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// second delete of the same id is NotFound, not a crash
	_, err = svc.Delete(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Delete("2f2e2d2c-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Delete("not-a-uuid")
	assert.ErrorIs(t, err, ErrMalformedID)
}
