package main

import (
	"fmt"
	"io"

	"github.com/keshon/better-help/internal/catalog"
	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/internal/docs"

	"github.com/spf13/cobra"
)

func newReadmeCmd(out io.Writer) *cobra.Command {
	var (
		catalogPath string
		name        string
		tmplPath    string
		outPath     string
	)
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Write a README with the command reference from a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}
			opts := []core.Option{core.WithDescription(f.Description)}
			if f.Prefix != "" {
				opts = append(opts, core.WithPrefix(f.Prefix))
			}
			bot := core.New(opts...)
			if err := f.Install(bot); err != nil {
				return fmt.Errorf("install catalog: %w", err)
			}
			if err := docs.WriteFile(bot, name, tmplPath, outPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "README written to %s\n", outPath)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&catalogPath, "catalog", "c", "", "YAML catalog describing the bot's commands")
	flags.StringVar(&name, "name", "better-help", "Project name used as the README title")
	flags.StringVar(&tmplPath, "template", "", "README template (text/template), built-in when empty")
	flags.StringVarP(&outPath, "out", "o", "README.md", "Output file")
	_ = cmd.MarkFlagRequired("catalog")
	return cmd
}
