package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ajugbo/aiq-platform/internal/app"
	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/config"
	"github.com/Ajugbo/aiq-platform/internal/screens/home"
	"github.com/Ajugbo/aiq-platform/internal/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.Store.Backend == config.BackendMemory {
		fmt.Fprintln(os.Stderr, "warning: using the memory store, your result is lost when aiq exits")
	}

	return app.Run(home.Deps{
		Store:    st,
		Sessions: session.NewService(st),
		Verifier: certificate.NewVerifier(st),
	})
}
