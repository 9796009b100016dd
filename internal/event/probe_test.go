package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestProbeFirstPrefersEarlierPaths(t *testing.T) {
	doc := gjson.Parse(`{"new":{"name":"current"},"old":{"name":"legacy"}}`)

	got := Probe{"new.name", "old.name"}.FirstString(doc)
	assert.Equal(t, "current", got)
}

func TestProbeFirstSkipsEmptyValues(t *testing.T) {
	doc := gjson.Parse(`{"new":{"name":""},"old":{"name":"legacy"}}`)

	got := Probe{"new.name", "old.name"}.FirstString(doc)
	assert.Equal(t, "legacy", got)
}

func TestProbeFirstSkipsNullValues(t *testing.T) {
	doc := gjson.Parse(`{"new":{"name":null},"old":{"name":"legacy"}}`)

	got := Probe{"new.name", "old.name"}.FirstString(doc)
	assert.Equal(t, "legacy", got)
}

func TestProbeFirstNoMatch(t *testing.T) {
	doc := gjson.Parse(`{"somewhere":{"else":1}}`)

	p := Probe{"a.b.c", "d"}
	assert.False(t, p.First(doc).Exists())
	assert.Equal(t, "", p.FirstString(doc))
}

func TestProbeFirstOnMissingPathNeverPanics(t *testing.T) {
	doc := gjson.Parse(`{}`)

	assert.NotPanics(t, func() {
		Probe{"deeply.nested.path.that.does.not.exist"}.FirstString(doc)
	})
}

func TestProbeFirstExistingAcceptsEmptyObjects(t *testing.T) {
	doc := gjson.Parse(`{"sender":{},"user":{"displayName":"Fallback"}}`)

	got := Probe{"sender", "user"}.FirstExisting(doc)
	require.True(t, got.Exists())
	assert.Equal(t, "", got.Get("displayName").String())
}

func TestEmptyProbeMatchesNothing(t *testing.T) {
	doc := gjson.Parse(`{"a":1}`)

	assert.False(t, Probe{}.First(doc).Exists())
	assert.False(t, Probe(nil).FirstExisting(doc).Exists())
}
