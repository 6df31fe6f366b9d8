package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ajugbo/aiq-platform/internal/session"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

var submitCmd = &cobra.Command{
	Use:   "submit <file|->",
	Short: "Score a set of answers and store the result",
	Long: "Read a JSON object mapping question numbers to answers, for example\n" +
		"{\"1\": \"First, I will...\", \"2\": \"...\"}, score it and record the result.\n" +
		"Use - to read from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("decode answers: %w", err)
		}
		responses, err := session.ParseResponses(body)
		if err != nil {
			return err
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := session.NewService(st).Complete(cmd.Context(), responses)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

func printResult(w io.Writer, res *store.Result) {
	fmt.Fprintf(w, "Score:       %d / 100\n", res.Score)
	fmt.Fprintf(w, "Level:       %s\n", res.Level)
	fmt.Fprintf(w, "Certificate: %s\n", res.CertificateCode)
	fmt.Fprintf(w, "Issued:      %s\n\n", res.Timestamp.Local().Format("2006-01-02 15:04"))
	printBreakdown(w, res.Breakdown)
}
