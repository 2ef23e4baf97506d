package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreasGetNotFound(t *testing.T) {
	t.Parallel()

	as := NewAreas()

	_, err := as.Get("W06000015")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAreasSetAndGet(t *testing.T) {
	t.Parallel()

	as := NewAreas()
	as.Set("W06000015", NewArea("W06000015"))

	a, err := as.Get("W06000015")
	assert.Nil(t, err)
	assert.Equal(t, "W06000015", a.Code())
	assert.Equal(t, 1, as.Size())
}

func TestAreasSetMergesOnCollision(t *testing.T) {
	t.Parallel()

	as := NewAreas()

	first := NewArea("W06000015")
	assert.Nil(t, first.SetName("eng", "Cardiff"))
	as.Set("W06000015", first)

	second := NewArea("W06000015")
	assert.Nil(t, second.SetName("cym", "Caerdydd"))
	as.Set("W06000015", second)

	assert.Equal(t, 1, as.Size())

	a, err := as.Get("W06000015")
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{"eng": "Cardiff", "cym": "Caerdydd"}, a.Names())
}

func TestAreasCodesAreSorted(t *testing.T) {
	t.Parallel()

	as := NewAreas()
	as.Set("W06000024", NewArea("W06000024"))
	as.Set("W06000011", NewArea("W06000011"))
	as.Set("W06000015", NewArea("W06000015"))

	assert.Equal(t, []string{"W06000011", "W06000015", "W06000024"}, as.Codes())
}

func TestAreasNamesOf(t *testing.T) {
	t.Parallel()

	as := NewAreas()

	assert.Empty(t, as.NamesOf("W06000015"))

	a := NewArea("W06000015")
	assert.Nil(t, a.SetName("eng", "Cardiff"))
	assert.Nil(t, a.SetName("cym", "Caerdydd"))
	as.Set("W06000015", a)

	names := as.NamesOf("W06000015")
	assert.ElementsMatch(t, []string{"Cardiff", "Caerdydd"}, names)
}
