package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/voxa-ai/voxa-go/voxa"
)

var (
	voicesLanguage string
	voicesGender   string
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List available voices",
	RunE:  runVoices,
}

func init() {
	voicesCmd.Flags().StringVar(&voicesLanguage, "language", "", "filter by language code")
	voicesCmd.Flags().StringVar(&voicesGender, "gender", "", "filter by gender")
}

func runVoices(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	voices, err := client.Voices.List(cmd.Context(), voxa.VoiceListParams{
		Language: voicesLanguage,
		Gender:   voicesGender,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLANGUAGE\tGENDER")
	for _, v := range voices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Language, v.Gender)
	}
	return w.Flush()
}
