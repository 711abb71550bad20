package main

import (
	"fmt"

	kamarhttp "github.com/fwojciec/kamar/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := kamarhttp.NewServer()
	server.Addr = c.Addr
	server.Analyzer = deps.Analyzer
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	<-deps.Ctx.Done()
	return server.Close()
}
