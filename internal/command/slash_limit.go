package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

type LimitCommand struct{}

func (c *LimitCommand) Name() string        { return "limit" }
func (c *LimitCommand) Description() string { return "Check your daily message limit" }
func (c *LimitCommand) Category() string    { return "🕯️ Information" }

func (c *LimitCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *LimitCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event
	user := resolveUser(event)

	status := slash.Asker.LimitStatus(user.ID)

	color := colorBlue
	if !status.Allowed {
		color = colorRed
	}

	embed := &discordgo.MessageEmbed{
		Title: "⏱️ Daily Message Limit",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Usage",
				Value: fmt.Sprintf("%s %d/%d", progressBar(status.Used, status.DailyLimit), status.Used, status.DailyLimit),
			},
			{
				Name:   "Remaining",
				Value:  fmt.Sprintf("%d %s left today", status.Remaining, plural("message", status.Remaining)),
				Inline: true,
			},
		},
	}

	if !status.Allowed {
		hours, minutes := untilMidnight(time.Now())
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Reset In",
			Value:  fmt.Sprintf("%dh %dm", hours, minutes),
			Inline: true,
		})
	}

	return respondEmbedEphemeral(session, event, embed)
}

// progressBar renders used/limit as a ten-cell bar.
func progressBar(used, limit int) string {
	filled := 0
	if limit > 0 {
		filled = used * 10 / limit
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// untilMidnight returns the hours and minutes left until the next local
// midnight, when the daily counter rolls over.
func untilMidnight(now time.Time) (hours, minutes int) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	left := midnight.Sub(now)
	return int(left.Hours()), int(left.Minutes()) % 60
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func init() {
	Register(ApplyMiddlewares(&LimitCommand{}, WithCommandLogger()))
}
