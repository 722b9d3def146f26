package youtubedetective

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"video-detective/agents/youtube-detective/youtube"
	"video-detective/shared/logging"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Messenger sends or edits chat messages. *tgbotapi.BotAPI satisfies it.
type Messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Investigator is the pipeline the bot hands links to.
type Investigator interface {
	Investigate(ctx context.Context, text string, progress func(Stage)) (string, error)
}

// Bot routes Telegram updates to the command replies or the investigation
// pipeline. Each update is handled on its own goroutine.
type Bot struct {
	messenger    Messenger
	investigator Investigator
	dice         *dice
	logger       zerolog.Logger
	wg           sync.WaitGroup
}

func NewBot(messenger Messenger, investigator Investigator, rng *rand.Rand) *Bot {
	return &Bot{
		messenger:    messenger,
		investigator: investigator,
		dice:         newDice(rng),
		logger:       logging.WithComponent("dispatcher"),
	}
}

// Run consumes updates until ctx is cancelled or the channel closes, then
// waits for in-flight investigations to finish.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	// Investigations already under way run to completion.
	handlerCtx := context.WithoutCancel(ctx)
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.HandleUpdate(handlerCtx, update)
			}()
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return
	}

	logger := b.logger.With().Int64("chat_id", msg.Chat.ID).Int("message_id", msg.MessageID).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("handler panicked")
		}
	}()

	if msg.IsCommand() {
		b.handleCommand(logger, msg)
		return
	}

	if !youtube.LooksLikeVideoLink(msg.Text) {
		b.reply(logger, msg.Chat.ID, b.dice.pick(notALinkMessages), false)
		return
	}

	b.handleLink(ctx, logger, msg)
}

func (b *Bot) handleCommand(logger zerolog.Logger, msg *tgbotapi.Message) {
	text, ok := commandReplies[msg.Command()]
	if !ok {
		logger.Debug().Str("command", msg.Command()).Msg("ignoring unknown command")
		return
	}
	b.reply(logger, msg.Chat.ID, text, true)
}

func (b *Bot) handleLink(ctx context.Context, logger zerolog.Logger, msg *tgbotapi.Message) {
	placeholder := tgbotapi.NewMessage(msg.Chat.ID, b.dice.pick(loadingMessages))
	placeholder.ReplyToMessageID = msg.MessageID

	status, err := b.messenger.Send(placeholder)
	if err != nil {
		logger.Error().Err(err).Msg("failed to send status message")
		return
	}

	report, err := b.investigator.Investigate(ctx, msg.Text, func(stage Stage) {
		if stage == StageAnalyzing {
			if err := b.edit(logger, msg.Chat.ID, status.MessageID, analyzingMessage, false); err != nil {
				logger.Error().Err(err).Msg("failed to edit status message")
			}
		}
	})
	final := report
	if err != nil {
		var invErr *InvestigationError
		if !errors.As(err, &invErr) {
			invErr = &InvestigationError{Kind: AnalysisError, Err: err}
		}
		final = invErr.UserMessage()
	}

	// The last edit must leave a report or an error on screen, so a
	// rejected final edit is replaced by the error it produced.
	if err := b.edit(logger, msg.Chat.ID, status.MessageID, final, true); err != nil {
		logger.Error().Err(err).Msg("failed to edit status message")
		fallback := &InvestigationError{Kind: AnalysisError, Err: err}
		if err := b.edit(logger, msg.Chat.ID, status.MessageID, fallback.UserMessage(), true); err != nil {
			logger.Error().Err(err).Msg("failed to report edit failure")
		}
	}
}

func (b *Bot) reply(logger zerolog.Logger, chatID int64, text string, markdown bool) {
	out := tgbotapi.NewMessage(chatID, text)
	if markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := b.messenger.Send(out); err != nil {
		logger.Error().Err(err).Msg("failed to send reply")
	}
}

// edit rewrites the status message in place. Model output can carry
// unbalanced Markdown that Telegram refuses to parse; in that case the same
// text is sent once more without formatting.
func (b *Bot) edit(logger zerolog.Logger, chatID int64, messageID int, text string, markdown bool) error {
	cfg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	cfg.DisableWebPagePreview = true
	if markdown {
		cfg.ParseMode = tgbotapi.ModeMarkdown
	}

	_, err := b.messenger.Send(cfg)
	if err == nil || !markdown {
		return err
	}

	logger.Warn().Err(err).Msg("markdown rejected, resending as plain text")
	cfg.ParseMode = ""
	_, err = b.messenger.Send(cfg)
	return err
}

// telegramLogger routes the Telegram library's own logging into zerolog.
type telegramLogger struct {
	logger zerolog.Logger
}

// NewTelegramLogger adapts a zerolog logger to tgbotapi.BotLogger.
func NewTelegramLogger(logger zerolog.Logger) tgbotapi.BotLogger {
	return telegramLogger{logger: logger}
}

func (l telegramLogger) Println(v ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprint(v...))
}

func (l telegramLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}
