package command

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithCommandLogger wraps a command to log each invocation with its caller.
func WithCommandLogger() Middleware {
	return func(c Command) Command {
		return &wrappedCommand{Command: c, wrap: func(ctx interface{}) error {
			if slash, ok := ctx.(*SlashContext); ok {
				user := resolveUser(slash.Event)
				log.Printf("[INFO] /%s by %s (%s)", c.Name(), user.Username, user.ID)
			}
			return c.Run(ctx)
		}}
	}
}
