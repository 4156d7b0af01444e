package joke

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session"
)

const (
	discordMaxMessageLength = 2000
	maxEmbedDescription     = 4096

	reportColor  = 0x097969
	reportFooter = "Analysis provided by Mortis"
)

// NewReportEmbed builds the base analysis report embed.
func NewReportEmbed(title, analysis string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: analysis,
		Color:       reportColor,
		Footer:      &discord.EmbedFooter{Text: reportFooter},
	}
}

// DisplayName returns the user's display name, or username if it is empty.
func DisplayName(user discord.User) string {
	if user.DisplayName != "" {
		return user.DisplayName
	}

	return user.Username
}

// Truncate shortens s to at most maxLen characters, appending an ellipsis
// when something was cut. Cuts land on rune boundaries so multi-byte text
// stays valid UTF-8.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// SplitMessage breaks content into chunks that fit the given limit,
// preferring newline and then space boundaries.
func SplitMessage(content string, limit int) []string {
	var parts []string
	remaining := content
	for len(remaining) > 0 {
		if len(remaining) <= limit {
			parts = append(parts, remaining)

			break
		}

		splitAt := limit
		for splitAt > 0 && !utf8.RuneStart(remaining[splitAt]) {
			splitAt--
		}
		if lastNewline := strings.LastIndex(remaining[:splitAt], "\n"); lastNewline > 0 {
			splitAt = lastNewline
		} else if lastSpace := strings.LastIndex(remaining[:splitAt], " "); lastSpace > 0 {
			splitAt = lastSpace
		}

		part := strings.TrimSpace(remaining[:splitAt])
		if part != "" {
			parts = append(parts, part)
		}
		remaining = strings.TrimSpace(remaining[splitAt:])
	}

	return parts
}

// SendLongMessage sends content to a channel, splitting it into multiple
// messages when it exceeds Discord's message length limit.
func SendLongMessage(s *session.Session, channelID discord.ChannelID, content string) error {
	parts := SplitMessage(content, discordMaxMessageLength)
	for i, part := range parts {
		if _, err := s.SendMessageComplex(channelID, api.SendMessageData{Content: part}); err != nil {
			return fmt.Errorf("failed to send message part %d/%d: %w", i+1, len(parts), err)
		}
	}

	return nil
}
