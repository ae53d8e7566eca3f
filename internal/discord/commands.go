package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"askbot/internal/command"
	"askbot/pkg/retrylimit"
)

// registerCommands syncs the guild's slash commands with the registry.
// Unchanged commands (by definition hash) are skipped, obsolete ones are
// deleted, and new or changed ones are created.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	localHashes := loadGuildCommandHashes(b.cfg.DataDir, guildID)

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, cmd := range command.All() {
		if def := slashDefinition(cmd); def != nil {
			wanted = append(wanted, def)
			wantedHashes[def.Name] = hashCommand(def)
		}
	}

	// Delete obsolete
	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
			}
			delete(localHashes, old.Name)
		}
	}

	// Create or update changed commands
	var changed []*discordgo.ApplicationCommand
	for _, cmd := range wanted {
		if localHashes[cmd.Name] != wantedHashes[cmd.Name] {
			changed = append(changed, cmd)
		}
	}

	if len(changed) > 0 {
		log.Printf("[INFO] [%s] %d commands changed — updating with rate limit...", guildID, len(changed))
		b.createCommandsWithRateLimit(appID, guildID, changed)
		for _, c := range changed {
			localHashes[c.Name] = wantedHashes[c.Name]
		}
	}

	saveGuildCommandHashes(b.cfg.DataDir, guildID, localHashes)
	return nil
}

// createCommandsWithRateLimit creates commands one by one behind an adaptive
// limiter, retrying transient Discord API failures.
func (b *Bot) createCommandsWithRateLimit(appID, guildID string, cmds []*discordgo.ApplicationCommand) {
	lim := retrylimit.NewAdaptiveLimiter(10, 1, 40, 1, 0.5)
	ctx := context.Background()

	for _, cmd := range cmds {
		err := retrylimit.WithRetryMax(ctx, func() error {
			_, err := b.dg.ApplicationCommandCreate(appID, guildID, cmd)
			return asRetryable(err)
		}, lim, 5)
		if err != nil {
			log.Printf("[ERR] Can't create command %s: %v", cmd.Name, err)
		} else {
			log.Printf("[DONE] Command created: %s", cmd.Name)
		}
	}
}

func slashDefinition(cmd command.Command) *discordgo.ApplicationCommand {
	if slash, ok := cmd.(command.SlashProvider); ok {
		if def := slash.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			return def
		}
	}
	return nil
}

// restError adapts a discordgo REST error to retrylimit's HTTPError so 429
// responses are retried quickly instead of backing off.
type restError struct {
	err *discordgo.RESTError
}

func (e restError) Error() string { return e.err.Error() }

func (e restError) StatusCode() int {
	if e.err.Response != nil {
		return e.err.Response.StatusCode
	}
	return 0
}

func asRetryable(err error) error {
	if err == nil {
		return nil
	}
	var rerr *discordgo.RESTError
	if errors.As(err, &rerr) {
		return restError{err: rerr}
	}
	return err
}
