package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stockhist/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `stockhist topic [<topic>...]

  Shows the documentation of topics, "*" for all of them. Without topic, lists them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(os.Stdout, f.Args()...))
}

func (c *topicCmd) run(w io.Writer, topics ...string) error {
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}
	doc, err := docs.Topics(topics...)
	if err != nil {
		return err
	}
	printMarkdown(w, doc)
	return nil
}
