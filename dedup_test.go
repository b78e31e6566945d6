package rolodex_test

import (
	"testing"

	"github.com/fwojciec/rolodex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeDocument(t *testing.T) {
	t.Parallel()

	t.Run("first occurrence wins and order is preserved", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeDocument([]*rolodex.Contact{
			{Name: "Alice Johnson", Email: "alice@example.com"},
			{Name: "Bob Singh"},
			{Name: "Alice Johnson", Email: "alice@example.com"},
			{Phone: "555-1234"},
		})

		require.Len(t, got, 3)
		assert.Equal(t, "Alice Johnson", got[0].Name)
		assert.Equal(t, "Bob Singh", got[1].Name)
		assert.Equal(t, "555-1234", got[2].Phone)
	})

	t.Run("key is case insensitive and trimmed", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeDocument([]*rolodex.Contact{
			{Name: "Alice Johnson", Email: "alice@example.com"},
			{Name: "  aLICE jOHNSON ", Email: "ALICE@EXAMPLE.COM "},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name, "first occurrence keeps its casing")
	})

	t.Run("phone trim only", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeDocument([]*rolodex.Contact{
			{Phone: "555-1234"},
			{Phone: " 555-1234 "},
			{Phone: "5551234"},
		})

		assert.Len(t, got, 2, "formatting variants are distinct before canonicalization")
	})

	t.Run("discards contacts without content", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeDocument([]*rolodex.Contact{
			{Name: "   ", Email: " ", Phone: "\t"},
			{},
			{Name: "Bob Singh"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "Bob Singh", got[0].Name)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rolodex.DedupeDocument(nil))
	})
}

func TestDedupeAcross(t *testing.T) {
	t.Parallel()

	t.Run("collapses email case variants with same phone", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeAcross([]*rolodex.Contact{
			{Name: "Alice Johnson", Email: "X@y.com", Phone: "5551234", SourceURL: "https://a.example"},
			{Name: "Alice J", Email: "x@Y.COM", Phone: "555-1234", SourceURL: "https://b.example"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name, "name comes from the first document")
		assert.Equal(t, "https://a.example", got[0].SourceURL)
	})

	t.Run("name is not part of the key", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeAcross([]*rolodex.Contact{
			{Name: "Alice Johnson", Email: "alice@example.com"},
			{Name: "Alicia Johnson", Email: "alice@example.com"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name)
	})

	t.Run("distinct emails survive", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeAcross([]*rolodex.Contact{
			{Email: "alice@example.com"},
			{Email: "bob@example.com"},
		})

		assert.Len(t, got, 2)
	})

	t.Run("name-only records share one key", func(t *testing.T) {
		t.Parallel()

		got := rolodex.DedupeAcross([]*rolodex.Contact{
			{Name: "Alice Johnson"},
			{Name: "Bob Singh"},
		})

		require.Len(t, got, 1, "records without email and phone collapse")
		assert.Equal(t, "Alice Johnson", got[0].Name)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		in := []*rolodex.Contact{
			{Email: "alice@example.com", Phone: "5551234"},
			{Email: "alice@example.com", Phone: "5559999"},
			{Name: "Bob Singh"},
		}

		once := rolodex.DedupeAcross(in)
		twice := rolodex.DedupeAcross(once)

		assert.Equal(t, once, twice)
	})
}
