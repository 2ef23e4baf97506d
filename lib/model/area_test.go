package model

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/stretchr/testify/assert"
)

func TestAreaSetAndGetName(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")

	err := a.SetName("eng", "Cardiff")
	assert.Nil(t, err)

	name, err := a.Name("eng")
	assert.Nil(t, err)
	assert.Equal(t, "Cardiff", name)

	name, err = a.Name("ENG")
	assert.Nil(t, err)
	assert.Equal(t, "Cardiff", name)
}

func TestAreaSetNameUppercaseCode(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")

	err := a.SetName("CYM", "Caerdydd")
	assert.Nil(t, err)

	name, err := a.Name("cym")
	assert.Nil(t, err)
	assert.Equal(t, "Caerdydd", name)
}

func TestAreaSetNameInvalidCode(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")

	for _, lang := range []string{"", "en", "engl", "e1g", "e g"} {
		err := a.SetName(lang, "Cardiff")
		assert.ErrorIs(t, err, ErrInvalidLanguageCode)
	}

	assert.Empty(t, a.Names())
}

func TestAreaNameNotFound(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")

	_, err := a.Name("eng")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAreaSetNameOverwrites(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")

	assert.Nil(t, a.SetName("eng", "Cardif"))
	assert.Nil(t, a.SetName("eng", "Cardiff"))

	assert.Equal(t, map[string]string{"eng": "Cardiff"}, a.Names())
}

func TestAreaMeasureIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")
	a.SetMeasure("Dens", NewMeasure("Dens", "Population density"))

	m, err := a.Measure("DENS")
	assert.Nil(t, err)
	assert.Equal(t, "dens", m.Codename())

	_, err = a.Measure("pop")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAreaSetMeasureMergesOnCollision(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")

	first := NewMeasure("dens", "Old label")
	first.SetValue(2010, 1)
	a.SetMeasure("dens", first)

	second := NewMeasure("dens", "New label")
	second.SetValue(2011, 2)
	a.SetMeasure("dens", second)

	assert.Equal(t, 1, a.Size())

	m, err := a.Measure("dens")
	assert.Nil(t, err)
	assert.Equal(t, "New label", m.Label())
	assert.Equal(t, map[int]float64{2010: 1, 2011: 2}, m.Values())
}

func TestAreaMerge(t *testing.T) {
	testgroup.RunInParallel(t, &AreaMergeTests{})
}

type AreaMergeTests struct {
}

func (g *AreaMergeTests) UnionOfNames(t *testgroup.T) {
	a := NewArea("W06000015")
	t.NoError(a.SetName("eng", "Cardiff"))

	b := NewArea("W06000015")
	t.NoError(b.SetName("cym", "Caerdydd"))

	a.Merge(b)

	t.Equal(map[string]string{"eng": "Cardiff", "cym": "Caerdydd"}, a.Names())
}

func (g *AreaMergeTests) IncomingNameWins(t *testgroup.T) {
	a := NewArea("W06000015")
	t.NoError(a.SetName("eng", "Cardif"))

	b := NewArea("W06000015")
	t.NoError(b.SetName("eng", "Cardiff"))

	a.Merge(b)

	t.Equal(map[string]string{"eng": "Cardiff"}, a.Names())
}

func (g *AreaMergeTests) MergeNeverRemoves(t *testgroup.T) {
	a := NewArea("W06000015")
	t.NoError(a.SetName("eng", "Cardiff"))
	m := NewMeasure("dens", "Population density")
	m.SetValue(2010, 1)
	a.SetMeasure("dens", m)

	a.Merge(NewArea("W06000015"))

	t.Equal(1, len(a.Names()))
	t.Equal(1, a.Size())
}

func (g *AreaMergeTests) SequentialMergesKeepLastWriter(t *testgroup.T) {
	a := NewArea("W06000015")
	t.NoError(a.SetName("eng", "Cardiff"))

	b := NewArea("W06000015")
	mb := NewMeasure("dens", "Population density")
	mb.SetValue(2010, 10)
	b.SetMeasure("dens", mb)

	c := NewArea("W06000015")
	mc := NewMeasure("dens", "Population density")
	mc.SetValue(2010, 20)
	c.SetMeasure("dens", mc)

	a.Merge(b)
	a.Merge(c)

	name, err := a.Name("eng")
	t.NoError(err)
	t.Equal("Cardiff", name)

	m, err := a.Measure("dens")
	t.NoError(err)
	v, err := m.Value(2010)
	t.NoError(err)
	t.Equal(20., v)
}

func TestAreaEquals(t *testing.T) {
	t.Parallel()

	a := NewArea("W06000015")
	assert.Nil(t, a.SetName("eng", "Cardiff"))

	b := NewArea("W06000015")
	assert.Nil(t, b.SetName("eng", "Cardiff"))

	assert.True(t, a.Equals(b))

	assert.Nil(t, b.SetName("cym", "Caerdydd"))
	assert.False(t, a.Equals(b))

	c := NewArea("W06000016")
	assert.Nil(t, c.SetName("eng", "Cardiff"))
	assert.False(t, a.Equals(c))
}
