package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"askbot/internal/version"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show all available commands" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	return respondEmbedEphemeral(slash.Session, slash.Event, &discordgo.MessageEmbed{
		Title:       version.AppName + " Commands",
		Description: buildHelpByCategory(),
		Color:       colorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Daily limit: %d messages per user", slash.Asker.DailyLimit()),
		},
	})
}

func buildHelpByCategory() string {
	byCategory := map[string][]Command{}
	for _, cmd := range All() {
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, cat := range categories {
		cmds := byCategory[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

		sb.WriteString("**" + cat + "**\n")
		for _, cmd := range cmds {
			sb.WriteString(fmt.Sprintf("`/%s` — %s\n", cmd.Name(), cmd.Description()))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	Register(ApplyMiddlewares(&HelpCommand{}, WithCommandLogger()))
}
