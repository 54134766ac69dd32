package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInvariants(t *testing.T) {
	t.Run("slugs are unique and url safe", func(t *testing.T) {
		seen := make(map[string]struct{})
		for _, p := range projects {
			_, dup := seen[p.Slug]
			assert.False(t, dup, "duplicate slug %q", p.Slug)
			seen[p.Slug] = struct{}{}
			assert.Equal(t, normalize(p.Slug), p.Slug, "slug %q should already be normalized", p.Slug)
		}
	})

	t.Run("every project has the required fields", func(t *testing.T) {
		for _, p := range projects {
			assert.NotEmpty(t, p.Title, "slug %s", p.Slug)
			assert.NotEmpty(t, p.Stack, "slug %s", p.Slug)
			assert.Contains(t, []string{"work", "faculty", "personal"}, p.Type, "slug %s", p.Slug)
			assert.NotZero(t, p.Year, "slug %s", p.Slug)
		}
	})
}

func TestProjectLookups(t *testing.T) {
	p, ok := projectBySlug("forking-food")
	require.True(t, ok)
	assert.Equal(t, "Forking Food", p.Title)

	_, ok = projectBySlug("nope")
	assert.False(t, ok)

	assert.NotEmpty(t, featuredProjects())
	for _, p := range featuredProjects() {
		assert.True(t, p.Featured)
	}

	for _, p := range projectsByType("faculty") {
		assert.Equal(t, "faculty", p.Type)
	}
}
