package urth_test

import (
	"testing"

	"github.com/fwojciec/urth"
	"github.com/fwojciec/urth/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamConfig(sentinel string) urth.Config {
	cfg := urth.DefaultConfig()
	cfg.Delimiter = "***"
	cfg.Sentinel = sentinel
	return cfg
}

func treeConfig(sentinel string) urth.Config {
	cfg := urth.DefaultConfig()
	cfg.Sentinel = sentinel
	return cfg
}

func keysAndDefinitions(entries []*urth.Entry) [][2]any {
	out := make([][2]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, [2]any{e.Keys, e.Definition})
	}
	return out
}

func TestExtractStream(t *testing.T) {
	t.Parallel()

	t.Run("splits headwords and truncates trailing apparatus", func(t *testing.T) {
		t.Parallel()

		text := "junk***alef***def1\n\n\nfootnote***zoetic***final"

		result, err := urth.ExtractStream(text, streamConfig("zoetic"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "def1"},
			{[]string{"zoetic"}, "final"},
		}, keysAndDefinitions(result.Entries))
		assert.Equal(t, 2, result.Parsed)
		assert.True(t, result.Terminated)
		assert.Empty(t, result.Warnings)
	})

	t.Run("keeps full body without truncation marker", func(t *testing.T) {
		t.Parallel()

		text := "***alef***  line one\n\nline two  "

		result, err := urth.ExtractStream(text, streamConfig(""))

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "line one\n\nline two", result.Entries[0].Definition)
	})

	t.Run("truncates at first triple newline", func(t *testing.T) {
		t.Parallel()

		text := "***alef***line one\n\n\nfootnote junk"

		result, err := urth.ExtractStream(text, streamConfig("alef"))

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "line one", result.Entries[0].Definition)
	})

	t.Run("no truncate keeps trailing material", func(t *testing.T) {
		t.Parallel()

		cfg := streamConfig("alef")
		cfg.NoTruncate = true

		result, err := urth.ExtractStream("***alef***line one\n\n\nfootnote", cfg)

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "line one\n\n\nfootnote", result.Entries[0].Definition)
	})

	t.Run("custom truncation marker", func(t *testing.T) {
		t.Parallel()

		cfg := streamConfig("alef")
		cfg.Truncate = "--"

		result, err := urth.ExtractStream("***alef***body -- page 12", cfg)

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "body", result.Entries[0].Definition)
	})

	t.Run("discards front matter", func(t *testing.T) {
		t.Parallel()

		result, err := urth.ExtractStream("Preface text\n***alef***def", streamConfig("alef"))

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.NotContains(t, result.Entries[0].Definition, "Preface")
	})

	t.Run("empty headword continues active entry", func(t *testing.T) {
		t.Parallel()

		text := "***alef***first ***  *** second***beth***b"

		result, err := urth.ExtractStream(text, streamConfig("beth"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "first  second"},
			{[]string{"beth"}, "b"},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("empty headword before any entry is dropped", func(t *testing.T) {
		t.Parallel()

		result, err := urth.ExtractStream("****** orphan***alef***a", streamConfig("alef"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "a"},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("headword at end of text gets empty definition", func(t *testing.T) {
		t.Parallel()

		result, err := urth.ExtractStream("***alef***a***beth", streamConfig(""))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "a"},
			{[]string{"beth"}, ""},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("stops at sentinel", func(t *testing.T) {
		t.Parallel()

		text := "***alef***a***zoetic***z***appendix***should not appear"

		result, err := urth.ExtractStream(text, streamConfig("zoetic"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "a"},
			{[]string{"zoetic"}, "z"},
		}, keysAndDefinitions(result.Entries))
		assert.True(t, result.Terminated)
	})

	t.Run("sentinel match is case sensitive", func(t *testing.T) {
		t.Parallel()

		result, err := urth.ExtractStream("***Zoetic***z***after***x", streamConfig("zoetic"))

		require.NoError(t, err)
		assert.Len(t, result.Entries, 2)
		assert.False(t, result.Terminated)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, urth.WarnSentinelNotFound, result.Warnings[0].Code)
	})

	t.Run("propagates definition format", func(t *testing.T) {
		t.Parallel()

		cfg := streamConfig("alef")
		cfg.Format = urth.FormatHTML

		result, err := urth.ExtractStream("***alef***<i>a</i>", cfg)

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, urth.FormatHTML, result.Entries[0].Format)
	})

	t.Run("reports no entries", func(t *testing.T) {
		t.Parallel()

		result, err := urth.ExtractStream("no delimiters here", streamConfig("zoetic"))

		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, 0, result.Parsed)
		codes := warningCodes(result.Warnings)
		assert.Contains(t, codes, urth.WarnNoEntries)
		assert.Contains(t, codes, urth.WarnSentinelNotFound)
	})

	t.Run("warns without sentinel", func(t *testing.T) {
		t.Parallel()

		result, err := urth.ExtractStream("***alef***a", streamConfig(""))

		require.NoError(t, err)
		assert.Equal(t, []string{urth.WarnNoSentinel}, warningCodes(result.Warnings))
	})

	t.Run("rejects empty delimiter", func(t *testing.T) {
		t.Parallel()

		_, err := urth.ExtractStream("text", urth.DefaultConfig())

		require.Error(t, err)
		assert.Equal(t, urth.EINVALID, urth.ErrorCode(err))
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		cfg := streamConfig("")
		cfg.Dedup = "bogus"

		_, err := urth.ExtractStream("***a***b", cfg)

		require.Error(t, err)
		assert.Equal(t, urth.EINVALID, urth.ErrorCode(err))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		text := "x***alef***a\n\n\nb***beth***c***zoetic***z***tail"
		cfg := streamConfig("zoetic")

		first, err := urth.ExtractStream(text, cfg)
		require.NoError(t, err)
		second, err := urth.ExtractStream(text, cfg)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestExtractStream_Duplicates(t *testing.T) {
	t.Parallel()

	text := "***alef***one***beth***b***alef***two"

	tests := []struct {
		name   string
		policy urth.DedupPolicy
		want   [][2]any
	}{
		{
			name:   "overwrite keeps first position",
			policy: urth.DedupOverwrite,
			want: [][2]any{
				{[]string{"alef"}, "two"},
				{[]string{"beth"}, "b"},
			},
		},
		{
			name:   "keep first",
			policy: urth.DedupKeepFirst,
			want: [][2]any{
				{[]string{"alef"}, "one"},
				{[]string{"beth"}, "b"},
			},
		},
		{
			name:   "append",
			policy: urth.DedupAppend,
			want: [][2]any{
				{[]string{"alef"}, "one"},
				{[]string{"beth"}, "b"},
				{[]string{"alef"}, "two"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := streamConfig("")
			cfg.Dedup = tt.policy

			result, err := urth.ExtractStream(text, cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.want, keysAndDefinitions(result.Entries))
			assert.Contains(t, warningCodes(result.Warnings), urth.WarnDuplicate)
		})
	}
}

func TestExtractTree(t *testing.T) {
	t.Parallel()

	t.Run("extracts entries and stops at sentinel", func(t *testing.T) {
		t.Parallel()

		elements := []urth.Element{
			mock.P("alef", "alef def"),
			mock.P("zoetic", "final def"),
		}

		result, err := urth.ExtractTree(elements, treeConfig("zoetic"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "alef def"},
			{[]string{"zoetic"}, "final def"},
		}, keysAndDefinitions(result.Entries))
		assert.True(t, result.Terminated)
	})

	t.Run("ignores elements after sentinel", func(t *testing.T) {
		t.Parallel()

		elements := []urth.Element{
			mock.P("alef", "a"),
			mock.P("zoetic", "z"),
			mock.P("", "colophon"),
			mock.P("appendix", "not an entry"),
		}

		result, err := urth.ExtractTree(elements, treeConfig("zoetic"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "a"},
			{[]string{"zoetic"}, "z"},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("joins fragments with line break", func(t *testing.T) {
		t.Parallel()

		elements := []urth.Element{
			mock.P("alef", "first"),
			mock.P("", "second"),
			mock.P("", "   "),
			mock.P("", "third"),
			mock.P("beth", ""),
		}

		result, err := urth.ExtractTree(elements, treeConfig(""))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "first\nsecond\nthird"},
			{[]string{"beth"}, ""},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("html format joins with br", func(t *testing.T) {
		t.Parallel()

		cfg := treeConfig("")
		cfg.Format = urth.FormatHTML
		elements := []urth.Element{
			mock.P("alef", "first"),
			mock.P("", "second"),
		}

		result, err := urth.ExtractTree(elements, cfg)

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "first<br/>second", result.Entries[0].Definition)
		assert.Equal(t, urth.FormatHTML, result.Entries[0].Format)
	})

	t.Run("drops text before first headword", func(t *testing.T) {
		t.Parallel()

		elements := []urth.Element{
			mock.P("", "Title page"),
			mock.P("", "Preface"),
			mock.P("alef", "a"),
		}

		result, err := urth.ExtractTree(elements, treeConfig("alef"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "a"},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("empty bold does not start or flush an entry", func(t *testing.T) {
		t.Parallel()

		empty := &mock.Element{Nodes: []urth.Element{mock.Bold("  "), mock.Text("more")}}
		elements := []urth.Element{
			mock.P("alef", "a"),
			empty,
			mock.P("beth", "b"),
		}

		result, err := urth.ExtractTree(elements, treeConfig("beth"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"alef"}, "a\nmore"},
			{[]string{"beth"}, "b"},
		}, keysAndDefinitions(result.Entries))
	})

	t.Run("joins multiple bold children into one headword", func(t *testing.T) {
		t.Parallel()

		p := &mock.Element{Nodes: []urth.Element{
			mock.Bold("abbey "),
			mock.Bold(" road"),
			mock.Text(" a street"),
		}}

		result, err := urth.ExtractTree([]urth.Element{p}, treeConfig("abbey road"))

		require.NoError(t, err)
		assert.Equal(t, [][2]any{
			{[]string{"abbey road"}, "a street"},
		}, keysAndDefinitions(result.Entries))
		assert.True(t, result.Terminated)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		elements := []urth.Element{
			mock.P("", "front"),
			mock.P("alef", "a"),
			mock.P("", "a2"),
			mock.P("zoetic", "z"),
		}

		first, err := urth.ExtractTree(elements, treeConfig("zoetic"))
		require.NoError(t, err)
		second, err := urth.ExtractTree(elements, treeConfig("zoetic"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func warningCodes(warnings []urth.Warning) []string {
	codes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}
