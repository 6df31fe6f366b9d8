package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Check a certificate code against the stored result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := certificate.NewVerifier(st).Verify(cmd.Context(), certificate.Normalize(args[0]))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, v.Status)
		if v.Valid {
			fmt.Fprintf(out, "Score: %d / 100\nLevel: %s\nDate:  %s\n", *v.Score, v.Level, v.Date)
		}
		return nil
	},
}
