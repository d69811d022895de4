package roster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hullo.dev/hullo/internal/roster"
)

func TestFilter(t *testing.T) {
	filter := roster.DefaultFilter()

	t.Run("accepts known figures", func(t *testing.T) {
		require.True(t, filter.Valid("Albert Einstein"))
		require.True(t, filter.Valid("Leonardo da Vinci"))
		require.True(t, filter.Valid("Martin Luther King Jr."))
	})

	t.Run("rejects denied first and last name combinations", func(t *testing.T) {
		require.False(t, filter.Valid("Albert Newton"))
		require.False(t, filter.Valid("Isaac Einstein"))
		require.False(t, filter.Valid("Marie Tesla"))
		require.False(t, filter.Valid("Nikola Darwin"))
		require.False(t, filter.Valid("Leonardo Shakespeare"))
	})

	t.Run("denies on the outermost parts of longer names", func(t *testing.T) {
		require.False(t, filter.Valid("Albert von Newton"))
	})

	t.Run("accepts unknown but plausible names", func(t *testing.T) {
		require.True(t, filter.Valid("Grace Hopper"))
		require.True(t, filter.Valid("Jane Austen"))
	})

	t.Run("accepts single word names", func(t *testing.T) {
		require.True(t, filter.Valid("Aristotle"))
		require.True(t, filter.Valid("Cleopatra"))
	})

	t.Run("zero value accepts everything", func(t *testing.T) {
		var f roster.Filter
		require.True(t, f.Valid("Albert Newton"))
		require.True(t, f.Valid("Anything At All"))
	})

	t.Run("custom data overrides the defaults", func(t *testing.T) {
		f := roster.NewFilter(roster.FilterData{
			Allow:     []string{"Ichabod Crane"},
			DenyPairs: [][]string{{"Grace", "Hopper"}},
		})
		require.True(t, f.Valid("Ichabod Crane"))
		require.False(t, f.Valid("Grace Hopper"))
	})

	t.Run("allowed names pass even when a deny pair matches", func(t *testing.T) {
		f := roster.NewFilter(roster.FilterData{
			Allow:     []string{"Isaac Einstein"},
			DenyPairs: [][]string{{"Isaac", "Einstein"}},
		})
		require.True(t, f.Valid("Isaac Einstein"))
	})

	t.Run("restricts first names when a first name set is present", func(t *testing.T) {
		f := roster.NewFilter(roster.FilterData{
			FirstNames: []string{"Ada", "Alan"},
		})
		require.True(t, f.Valid("Ada Lovelace"))
		require.True(t, f.Valid("Alan Turing"))
		require.False(t, f.Valid("Grace Hopper"))
		// Single word names never reach the part sets
		require.True(t, f.Valid("Cleopatra"))
	})

	t.Run("restricts last names when a last name set is present", func(t *testing.T) {
		f := roster.NewFilter(roster.FilterData{
			LastNames: []string{"Curie", "Hopper"},
		})
		require.True(t, f.Valid("Marie Curie"))
		require.True(t, f.Valid("Grace Hopper"))
		require.False(t, f.Valid("Marie Antoinette"))
	})

	t.Run("applies both part sets together", func(t *testing.T) {
		f := roster.NewFilter(roster.FilterData{
			FirstNames: []string{"Ada"},
			LastNames:  []string{"Lovelace"},
		})
		require.True(t, f.Valid("Ada Lovelace"))
		require.False(t, f.Valid("Ada Turing"))
		require.False(t, f.Valid("Alan Lovelace"))
	})

	t.Run("ignores malformed deny entries", func(t *testing.T) {
		f := roster.NewFilter(roster.FilterData{DenyPairs: [][]string{{"OnlyOne"}, nil}})
		require.True(t, f.Valid("OnlyOne Name"))
	})
}
