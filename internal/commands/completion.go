package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/core/players"
)

// NameCompleter returns a ShellCompleteFunc that suggests player names in
// scope as the first positional argument.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func NameCompleter(app *chat.App, scope players.Scope) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		var prefix string
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
			if args.Len() > 1 {
				return
			}
			prefix = last
		}

		if app.Store == nil || app.Config == nil {
			return
		}

		r, err := configuredRoster(app)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, name := range app.Store.Suggest(r, scope, prefix) {
			_, _ = fmt.Fprintln(w, name)
		}
	}
}
