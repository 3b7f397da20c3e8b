package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/respkv-go/internal/cli/connection"
)

// PingCommand returns the ping command.
func PingCommand() *cli.Command {
	return &cli.Command{
		Name:   "ping",
		Usage:  "Check that the server answers",
		Action: doAction(0, func(args cli.Args) []string { return []string{"PING"} }),
	}
}

// EchoCommand returns the echo command.
func EchoCommand() *cli.Command {
	return &cli.Command{
		Name:      "echo",
		Usage:     "Echo a message back from the server",
		ArgsUsage: "MESSAGE",
		Action: doAction(1, func(args cli.Args) []string {
			return []string{"ECHO", args.Get(0)}
		}),
	}
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get the value of a key",
		ArgsUsage: "KEY",
		Action: doAction(1, func(args cli.Args) []string {
			return []string{"GET", args.Get(0)}
		}),
	}
}

// SetCommand returns the set command.
func SetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set a key, optionally expiring after --px milliseconds",
		ArgsUsage: "KEY VALUE",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "px",
				Usage: "expiry in milliseconds (0 means no expiry)",
			},
		},
		Action: setAction,
	}
}

func setAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("set requires KEY and VALUE")
	}
	px := c.Int64("px")
	if px < 0 {
		return fmt.Errorf("--px must not be negative")
	}

	client, err := dial(c)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Set(c.Args().Get(0), c.Args().Get(1), px); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

// doAction sends the command built from the positional arguments and
// prints the reply.
func doAction(nargs int, build func(cli.Args) []string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != nargs {
			return fmt.Errorf("%s expects %d argument(s), got %d", c.Command.Name, nargs, c.NArg())
		}

		client, err := dial(c)
		if err != nil {
			return err
		}
		defer client.Close()

		reply, err := client.Do(build(c.Args())...)
		if err != nil {
			return err
		}
		printReply(c, reply)
		return nil
	}
}

func printReply(c *cli.Context, r connection.Reply) {
	fmt.Fprintln(c.App.Writer, r.String())
}
