package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const defaultHistoryCount = 5

type HistoryCommand struct{}

func (c *HistoryCommand) Name() string        { return "history" }
func (c *HistoryCommand) Description() string { return "View your recent chat history" }
func (c *HistoryCommand) Category() string    { return "🕯️ Information" }

func (c *HistoryCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "Number of recent messages to show (default: 5)",
				Required:    false,
			},
		},
	}
}

func (c *HistoryCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event
	user := resolveUser(event)

	count := defaultHistoryCount
	for _, opt := range event.ApplicationCommandData().Options {
		if opt.Name == "count" {
			count = int(opt.IntValue())
		}
	}

	entries := slash.Asker.History(user.ID, count)
	if len(entries) == 0 {
		return respondEmbedEphemeral(session, event, &discordgo.MessageEmbed{
			Title:       "📜 Chat History",
			Description: "You don't have any chat history yet. Use `/ask` to start chatting!",
			Color:       colorOrange,
		})
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(entries))
	for i, entry := range entries {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", i+1, entry.Timestamp.Format("2006-01-02 15:04")),
			Value: "**Q:** " + truncate(entry.Question, 100),
		})
	}

	return respondEmbedEphemeral(session, event, &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("📜 Your Recent Chat History (Last %d)", len(entries)),
		Color:  colorBlue,
		Fields: fields,
	})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func init() {
	Register(ApplyMiddlewares(&HistoryCommand{}, WithCommandLogger()))
}
