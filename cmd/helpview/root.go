package main

import (
	"context"
	"fmt"
	"io"

	"github.com/keshon/better-help/internal/catalog"
	"github.com/keshon/better-help/internal/cogs/betterhelp"
	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/internal/help"
	"github.com/keshon/better-help/internal/logging"
	"github.com/keshon/better-help/internal/terminal"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	catalog    string
	prefix     string
	pageSize   int
	color      int
	admin      bool
	guild      bool
	useDefault bool
	noCategory string
	plain      bool
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "helpview [command or category...]",
		Short: "Preview bot help pages in the terminal",
		Long: `helpview loads a YAML catalog of cogs and commands and prints the help
pages the bot would send for the given query, one page per block.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.catalog, "catalog", "c", "", "YAML catalog describing the bot's commands")
	flags.StringVar(&opts.prefix, "prefix", "", "Command prefix (defaults to the catalog's, then \"!\")")
	flags.IntVar(&opts.pageSize, "page-size", 2000, "Maximum page length in characters")
	flags.IntVar(&opts.color, "color", 0, "Bot display colour as an integer, 0 for none")
	flags.BoolVar(&opts.admin, "admin", false, "Preview as a server administrator")
	flags.BoolVar(&opts.guild, "guild", true, "Preview as if invoked in a server rather than a DM")
	flags.BoolVar(&opts.useDefault, "default", false, "Use the stock help instead of the markdown formatter")
	flags.StringVar(&opts.noCategory, "no-category", help.NoCategory, "Heading for commands outside any category")
	flags.BoolVar(&opts.plain, "plain", false, "Print markdown without terminal styling")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	_ = cmd.MarkFlagRequired("catalog")

	cmd.AddCommand(newReadmeCmd(out))
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := catalog.Load(opts.catalog)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = logging.New("debug"); err != nil {
			return err
		}
	}

	prefix := opts.prefix
	if prefix == "" {
		prefix = f.Prefix
	}
	botOpts := []core.Option{core.WithDescription(f.Description), core.WithLogger(logger)}
	if prefix != "" {
		botOpts = append(botOpts, core.WithPrefix(prefix))
	}
	bot := core.New(botOpts...)
	if err := f.Install(bot); err != nil {
		return fmt.Errorf("install catalog: %w", err)
	}
	if !opts.useDefault {
		cog := betterhelp.New(help.WithPageSize(opts.pageSize),
			help.WithNoCategory(opts.noCategory),
			help.WithLogger(logger),
		)
		if err := bot.AddCog(cog); err != nil {
			return err
		}
	} else if d, ok := bot.HelpCommand().(*core.DefaultHelp); ok {
		d.PageSize = opts.pageSize
	}

	var mdOpts []terminal.Option
	if opts.plain {
		mdOpts = []terminal.Option{glamour.WithStandardStyle("notty"), glamour.WithWordWrap(80)}
	}
	messenger, err := terminal.New(out, mdOpts...)
	if err != nil {
		return err
	}

	c := &core.Context{
		Bot:       bot,
		Messenger: messenger,
		ChannelID: "help",
		AuthorID:  "preview",
		Color:     opts.color,
	}
	if opts.guild {
		c.GuildID = "preview"
	}
	if opts.admin {
		c.Permissions = discordgo.PermissionAdministrator
	}
	return bot.RunHelp(ctx, c, args)
}
