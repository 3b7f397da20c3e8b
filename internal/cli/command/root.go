package command

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/respkv-go/internal/cli/connection"
	"github.com/yndnr/respkv-go/internal/infra/buildinfo"
)

// DefaultServer is the address used when --server is not given.
const DefaultServer = "127.0.0.1:6379"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "respkv-cli",
		Usage:   "respkv command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			PingCommand(),
			EchoCommand(),
			GetCommand(),
			SetCommand(),
			BenchCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "respkv server address (host:port)",
			EnvVars: []string{"RESPKV_SERVER"},
			Value:   DefaultServer,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "dial and per-command timeout",
			Value: connection.DefaultTimeout,
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server  string
	Timeout time.Duration
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:  c.String("server"),
		Timeout: c.Duration("timeout"),
	}
}

// dial opens a client using the global flags.
func dial(c *cli.Context) (*connection.Client, error) {
	flags := ParseGlobalFlags(c)
	client, err := connection.Dial(flags.Server, flags.Timeout)
	if err != nil {
		return nil, fmt.Errorf("connect failed: %w", err)
	}
	return client, nil
}
