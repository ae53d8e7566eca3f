package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

type AskCommand struct{}

func (c *AskCommand) Name() string        { return "ask" }
func (c *AskCommand) Description() string { return "Ask a question to the bot" }
func (c *AskCommand) Category() string    { return "💬 Chat" }

func (c *AskCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "question",
				Description: "Your question",
				Required:    true,
			},
		},
	}
}

func (c *AskCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event
	user := resolveUser(event)

	var question string
	for _, opt := range event.ApplicationCommandData().Options {
		if opt.Name == "question" {
			question = opt.StringValue()
		}
	}

	status := slash.Asker.LimitStatus(user.ID)
	if !status.Allowed {
		return respondEmbedEphemeral(session, event, &discordgo.MessageEmbed{
			Title: "⚠️ Daily Limit Reached",
			Description: fmt.Sprintf(
				"You've reached your daily limit of %d messages. Please try again tomorrow!",
				status.DailyLimit),
			Color: colorRed,
		})
	}

	// Acknowledge first; the ask sequence includes a disk write.
	if err := respondDeferred(session, event); err != nil {
		return err
	}

	result := slash.Asker.Ask(user.ID, user.Username, question)
	if !result.Allowed {
		// Another in-flight request used up the last slot.
		return followupEmbed(session, event, &discordgo.MessageEmbed{
			Title: "⚠️ Daily Limit Reached",
			Description: fmt.Sprintf(
				"You've reached your daily limit of %d messages. Please try again tomorrow!",
				status.DailyLimit),
			Color: colorRed,
		})
	}

	return followupEmbed(session, event, &discordgo.MessageEmbed{
		Title:       "💬 Response",
		Description: result.Response,
		Color:       colorBlue,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: "Asked by " + user.Username},
	})
}

func init() {
	Register(ApplyMiddlewares(&AskCommand{}, WithCommandLogger()))
}
