package urth_test

import (
	"testing"

	"github.com/fwojciec/urth"
	"github.com/fwojciec/urth/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_ExtractTree(t *testing.T) {
	t.Parallel()

	t.Run("enriches extracted entries", func(t *testing.T) {
		t.Parallel()

		p := urth.NewPipeline(treeConfig("information"), urth.NewEnricher(fixedPlurals(map[string]string{
			"cat":         "cats",
			"information": "information",
		})))
		elements := []urth.Element{
			mock.P("cat", "a small feline"),
			mock.P("information", "facts"),
		}

		result, err := p.ExtractTree(elements)

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"cat", "cats"}, "a small feline"},
			{[]string{"information"}, "facts"},
		}, keysAndDefinitions(result.Entries))
		assert.Equal(t, 2, result.Parsed)
		assert.Equal(t, 1, result.Enriched)
	})

	t.Run("looks up enriched entries by variant key", func(t *testing.T) {
		t.Parallel()

		p := urth.NewPipeline(treeConfig("dog"), urth.NewEnricher(fixedPlurals(map[string]string{
			"cat": "cats",
			"dog": "dogs",
		})))

		result, err := p.ExtractTree([]urth.Element{
			mock.P("cat", "a small feline"),
			mock.P("dog", "a canine"),
		})

		require.NoError(t, err)
		require.NotNil(t, result.Lookup("cats"))
		assert.Equal(t, "a small feline", result.Lookup("cats").Definition)
		require.NotNil(t, result.Lookup("dog"))
		assert.Equal(t, "a canine", result.Lookup("dog").Definition)
		assert.Nil(t, result.Lookup("cows"))
	})

	t.Run("headword wins over another entry's variant", func(t *testing.T) {
		t.Parallel()

		p := urth.NewPipeline(treeConfig("datum"), urth.NewEnricher(fixedPlurals(map[string]string{
			"data":  "data",
			"datum": "data",
		})))

		result, err := p.ExtractTree([]urth.Element{
			mock.P("data", "facts collectively"),
			mock.P("datum", "a single fact"),
		})

		require.NoError(t, err)
		assert.Equal(t, "facts collectively", result.Lookup("data").Definition)
		assert.Equal(t, []string{"datum", "data"}, result.Entries[1].Keys)
	})

	t.Run("without enricher keeps single keys", func(t *testing.T) {
		t.Parallel()

		p := urth.NewPipeline(treeConfig("cat"), nil)

		result, err := p.ExtractTree([]urth.Element{mock.P("cat", "feline")})

		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, result.Entries[0].Keys)
		assert.Equal(t, 0, result.Enriched)
	})
}

func TestPipeline_ExtractStream(t *testing.T) {
	t.Parallel()

	t.Run("collects enrichment warnings", func(t *testing.T) {
		t.Parallel()

		p := urth.NewPipeline(streamConfig("dog"), urth.NewEnricher(fixedPlurals(map[string]string{
			"cat": "cats",
		})))

		result, err := p.ExtractStream("***cat***feline***dog***canine")

		require.NoError(t, err)
		assert.Equal(t, 1, result.Enriched)
		assert.Equal(t, []string{urth.WarnVariant}, warningCodes(result.Warnings))
		assert.Equal(t, []string{"dog"}, result.Entries[1].Keys)
	})

	t.Run("returns config errors", func(t *testing.T) {
		t.Parallel()

		p := urth.NewPipeline(urth.DefaultConfig(), nil)

		_, err := p.ExtractStream("***cat***feline")

		assert.Equal(t, urth.EINVALID, urth.ErrorCode(err))
	})
}
