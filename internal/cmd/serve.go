package cmd

import (
	"forja/internal/server"
)

// ServeCmd serves the dashboard over SSH so teammates can watch and
// drive change requests from their own terminals.
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"localhost"`
	Port string `help:"Port to bind the SSH server to" default:"23234"`
}

func (s *ServeCmd) Run(cli *CLI) error {
	host := s.Host
	port := s.Port
	if cli.settings != nil {
		if host == "localhost" && cli.settings.SSHHost != "" {
			host = cli.settings.SSHHost
		}
		if port == "23234" && cli.settings.SSHPort != "" {
			port = cli.settings.SSHPort
		}
	}

	srv, err := server.NewServer(host, port, cli.Container.Submission, cli.Container.Previews)
	if err != nil {
		return err
	}

	return srv.Start()
}
