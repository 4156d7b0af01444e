package joke

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"
)

const (
	// TriggerEmoji is the reaction that requests an analysis.
	TriggerEmoji = "🤡"
	// workingEmoji marks a message while its analysis is in flight.
	workingEmoji = "🔍"
)

// HandleReaction processes a reaction-add event and, when the trigger emoji
// lands on an analyzable message, replies with an analysis report.
func (s *Service) HandleReaction(ctx context.Context, ses *session.Session, ev *gateway.MessageReactionAddEvent) error {
	if ev.Member != nil && ev.Member.User.Bot {
		return nil
	}
	if ev.Emoji.Name != TriggerEmoji {
		return nil
	}

	messageKey := ev.MessageID.String()
	if s.ignored.Contains(messageKey) {
		s.logger.Debug("Message is in ignore cache, skipping", zap.String("messageID", messageKey))

		return nil
	}

	msg, err := ses.Message(ev.ChannelID, ev.MessageID)
	if err != nil {
		return fmt.Errorf("failed to fetch reacted message: %w", err)
	}

	if msg.Content == "" || msg.Author.Bot {
		s.ignored.Add(messageKey)

		return nil
	}

	if utf8.RuneCountInString(msg.Content) > MaxJokeLength {
		s.ignored.Add(messageKey)
		_, err := ses.SendMessageComplex(ev.ChannelID, api.SendMessageData{
			Content:   fmt.Sprintf("That message is too long to analyze! Please keep it under %d characters.", MaxJokeLength),
			Reference: &discord.MessageReference{MessageID: msg.ID},
		})

		return err
	}

	if err := ses.React(ev.ChannelID, ev.MessageID, discord.APIEmoji(workingEmoji)); err != nil {
		s.logger.Warn("Failed to add working reaction", zap.Error(err), zap.String("messageID", messageKey))
	}

	analysis, analyzeErr := s.Analyze(ctx, messageKey, msg.Content)

	if err := ses.Unreact(ev.ChannelID, ev.MessageID, discord.APIEmoji(workingEmoji)); err != nil {
		s.logger.Warn("Failed to remove working reaction", zap.Error(err), zap.String("messageID", messageKey))
	}

	if analyzeErr != nil {
		_, sendErr := ses.SendMessageComplex(ev.ChannelID, api.SendMessageData{
			Content:   "Sorry, I couldn't analyze that one. Please try again later.",
			Reference: &discord.MessageReference{MessageID: msg.ID},
		})
		if sendErr != nil {
			s.logger.Error("Failed to send analysis failure reply", zap.Error(sendErr), zap.String("messageID", messageKey))
		}

		return analyzeErr
	}

	// Embed descriptions cap out at 4096 characters. An analysis past that
	// goes out as plain messages, split under the message length limit.
	if utf8.RuneCountInString(analysis) > maxEmbedDescription {
		if err := SendLongMessage(ses, ev.ChannelID, analysis); err != nil {
			return fmt.Errorf("failed to send analysis report: %w", err)
		}

		s.logger.Info("Reaction-triggered analysis completed", zap.String("messageID", messageKey))

		return nil
	}

	embed := NewReportEmbed("Automated joke analysis", analysis)
	embed.Fields = append(embed.Fields, discord.EmbedField{
		Name:  "Original message",
		Value: fmt.Sprintf("[Jump to message](%s)", msg.URL()),
	})
	if ev.Member != nil {
		user := ev.Member.User
		embed.Author = &discord.EmbedAuthor{
			Name: DisplayName(user) + " requested an analysis",
			Icon: user.AvatarURL(),
		}
	}

	_, err = ses.SendMessageComplex(ev.ChannelID, api.SendMessageData{
		Embeds:    []discord.Embed{embed},
		Reference: &discord.MessageReference{MessageID: msg.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to send analysis report: %w", err)
	}

	s.logger.Info("Reaction-triggered analysis completed", zap.String("messageID", messageKey))

	return nil
}
