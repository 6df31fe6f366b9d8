package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show the stored result",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := st.Get(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if res == nil {
			fmt.Fprintln(out, "No result recorded yet. Run `aiq` to take the assessment.")
			return nil
		}
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResult(out, res)
		return nil
	},
}

func init() {
	resultCmd.Flags().Bool("json", false, "Print the stored record as JSON")
}
