package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"askbot/internal/version"
)

type InfoCommand struct{}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Description() string { return "Get information about the bot" }
func (c *InfoCommand) Category() string    { return "🕯️ Information" }

func (c *InfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *InfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event

	features := "• `/ask` - Ask questions\n" +
		"• `/stats` - View your statistics\n" +
		"• `/history` - View your chat history\n" +
		"• `/limit` - Check your daily limit\n" +
		"• `/info` - Bot information"

	return respondEmbed(session, event, &discordgo.MessageEmbed{
		Title:       "ℹ️ Bot Information",
		Description: version.AppName + " - A simple chat bot with rate limiting",
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Features", Value: features},
			{Name: "Rate Limit", Value: fmt.Sprintf("%d messages per day", slash.Asker.DailyLimit()), Inline: true},
			{Name: "Servers", Value: fmt.Sprintf("%d server(s)", len(session.State.Guilds)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Bot by " + session.State.User.Username},
	})
}

func init() {
	Register(ApplyMiddlewares(&InfoCommand{}, WithCommandLogger()))
}
