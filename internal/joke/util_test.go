package joke_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortisbot/mortis/internal/joke"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", joke.Truncate("short", 10))
	assert.Equal(t, "exact", joke.Truncate("exact", 5))
	assert.Equal(t, "long st...", joke.Truncate("long string here", 10))
	assert.Equal(t, "ab", joke.Truncate("abcdef", 2))
}

func TestTruncateMultibyte(t *testing.T) {
	// 10 CJK characters are 30 bytes; the limit counts characters.
	assert.Equal(t, strings.Repeat("笑", 10), joke.Truncate(strings.Repeat("笑", 10), 10))

	cut := joke.Truncate(strings.Repeat("笑", 20), 10)
	assert.Equal(t, strings.Repeat("笑", 7)+"...", cut)
	assert.True(t, utf8.ValidString(cut))
}

func TestSplitMessage(t *testing.T) {
	t.Run("FitsInOnePart", func(t *testing.T) {
		parts := joke.SplitMessage("hello world", 2000)
		assert.Equal(t, []string{"hello world"}, parts)
	})

	t.Run("SplitsOnNewline", func(t *testing.T) {
		content := strings.Repeat("a", 50) + "\n" + strings.Repeat("b", 50)
		parts := joke.SplitMessage(content, 60)

		require.Len(t, parts, 2)
		assert.Equal(t, strings.Repeat("a", 50), parts[0])
		assert.Equal(t, strings.Repeat("b", 50), parts[1])
	})

	t.Run("SplitsOnSpace", func(t *testing.T) {
		content := strings.Repeat("a", 50) + " " + strings.Repeat("b", 50)
		parts := joke.SplitMessage(content, 60)

		require.Len(t, parts, 2)
		assert.Equal(t, strings.Repeat("a", 50), parts[0])
		assert.Equal(t, strings.Repeat("b", 50), parts[1])
	})

	t.Run("HardSplitWithoutBoundaries", func(t *testing.T) {
		content := strings.Repeat("x", 150)
		parts := joke.SplitMessage(content, 100)

		require.Len(t, parts, 2)
		assert.Equal(t, strings.Repeat("x", 100), parts[0])
		assert.Equal(t, strings.Repeat("x", 50), parts[1])
	})

	t.Run("HardSplitKeepsRunesIntact", func(t *testing.T) {
		content := strings.Repeat("笑", 100)
		parts := joke.SplitMessage(content, 100)

		require.Len(t, parts, 4)
		for _, part := range parts {
			assert.True(t, utf8.ValidString(part))
			assert.LessOrEqual(t, len(part), 100)
		}
		assert.Equal(t, content, strings.Join(parts, ""))
	})

	t.Run("AllPartsWithinLimit", func(t *testing.T) {
		content := strings.Repeat("word ", 1000)
		parts := joke.SplitMessage(content, 200)

		require.NotEmpty(t, parts)
		for _, part := range parts {
			assert.LessOrEqual(t, len(part), 200)
			assert.NotEmpty(t, part)
		}
	})

	t.Run("EmbedOverflowFitsMessages", func(t *testing.T) {
		// An analysis too long for an embed description still has to fit
		// Discord's plain message limit after splitting.
		content := strings.Repeat("a very long analysis ", 250)
		parts := joke.SplitMessage(content, 2000)

		require.Greater(t, len(parts), 1)
		for _, part := range parts {
			assert.LessOrEqual(t, len(part), 2000)
		}
		assert.Equal(t, strings.Join(strings.Fields(content), " "),
			strings.Join(parts, " "))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Display", joke.DisplayName(discord.User{Username: "user", DisplayName: "Display"}))
	assert.Equal(t, "user", joke.DisplayName(discord.User{Username: "user"}))
}

func TestNewReportEmbed(t *testing.T) {
	embed := joke.NewReportEmbed("Joke analysis report", "the analysis")

	assert.Equal(t, "Joke analysis report", embed.Title)
	assert.Equal(t, "the analysis", embed.Description)
	assert.NotZero(t, embed.Color)
	require.NotNil(t, embed.Footer)
	assert.NotEmpty(t, embed.Footer.Text)
}
