package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		assert.Equal(t, "hello world", normalize("  Hello   World "))
	})

	t.Run("keeps tech name symbols", func(t *testing.T) {
		assert.Equal(t, "c++", normalize("C++"))
		assert.Equal(t, "c#", normalize("C#"))
		assert.Equal(t, "node.js", normalize("Node.js!"))
	})

	t.Run("strips punctuation", func(t *testing.T) {
		assert.Equal(t, "whats up", normalize("what's up?"))
	})

	t.Run("drops diacritics via decomposition", func(t *testing.T) {
		assert.Equal(t, "iasi", normalize("Iași"))
		assert.Equal(t, "multumesc", normalize("mulțumesc"))
	})

	t.Run("total on empty and symbol-only input", func(t *testing.T) {
		assert.Equal(t, "", normalize(""))
		assert.Equal(t, "", normalize("!?~@"))
	})

	t.Run("deterministic", func(t *testing.T) {
		in := "Proiecte în C++ și Node.js"
		assert.Equal(t, normalize(in), normalize(in))
	})
}

func TestHasExactTech(t *testing.T) {
	stack := []string{"Flutter", "Dart", "Node.js"}

	assert.True(t, hasExactTech(stack, "flutter"))
	assert.True(t, hasExactTech(stack, "NODE.JS"))
	assert.False(t, hasExactTech(stack, "flut"), "no partial matching")
	assert.False(t, hasExactTech(nil, "flutter"))
}

func TestEqualsAny(t *testing.T) {
	assert.True(t, equalsAny("  Tech Stack ", []string{"skills", "tech stack"}))
	assert.False(t, equalsAny("techstack", []string{"tech stack"}))
}
