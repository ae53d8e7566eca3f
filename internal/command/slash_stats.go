package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type StatsCommand struct{}

func (c *StatsCommand) Name() string        { return "stats" }
func (c *StatsCommand) Description() string { return "View your usage statistics" }
func (c *StatsCommand) Category() string    { return "🕯️ Information" }

func (c *StatsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *StatsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event
	user := resolveUser(event)

	rec, found := slash.Asker.Stats(user.ID)
	if !found {
		return respondEmbedEphemeral(session, event, &discordgo.MessageEmbed{
			Title:       "📊 Your Statistics",
			Description: "You haven't used the bot yet. Use `/ask` to get started!",
			Color:       colorOrange,
		})
	}

	limit := slash.Asker.DailyLimit()
	remaining := limit - rec.MessageCount

	return respondEmbedEphemeral(session, event, &discordgo.MessageEmbed{
		Title: "📊 Your Statistics",
		Color: colorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Today's Messages", Value: fmt.Sprintf("%d/%d", rec.MessageCount, limit), Inline: true},
			{Name: "Total Messages", Value: fmt.Sprintf("%d", rec.TotalMessages), Inline: true},
			{Name: "Last Reset", Value: rec.LastReset, Inline: true},
			{Name: "Remaining Today", Value: fmt.Sprintf("%d", remaining), Inline: true},
		},
	})
}

func init() {
	Register(ApplyMiddlewares(&StatsCommand{}, WithCommandLogger()))
}
