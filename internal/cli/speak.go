package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/voxa-ai/voxa-go/voxa"
)

var (
	speakText   string
	speakFile   string
	speakVoice  string
	speakModel  string
	speakFormat string
	speakOutput string
)

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Synthesize speech and stream it to a local audio file",
	RunE:  runSpeak,
}

func init() {
	speakCmd.Flags().StringVar(&speakText, "text", "", "text to synthesize")
	speakCmd.Flags().StringVar(&speakFile, "file", "", "read text from a file instead of --text")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "voice ID")
	speakCmd.Flags().StringVar(&speakModel, "model", "", "model name")
	speakCmd.Flags().StringVar(&speakFormat, "format", "mp3", "audio format")
	speakCmd.Flags().StringVarP(&speakOutput, "output", "o", "out.mp3", "output file path")
}

func resolveText() (string, error) {
	switch {
	case speakText != "":
		return speakText, nil
	case speakFile != "":
		data, err := os.ReadFile(speakFile)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	default:
		return "", errors.New("either --text or --file is required")
	}
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text, err := resolveText()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	stream, err := client.Generations.Stream(cmd.Context(), voxa.GenerationParams{
		Text:   text,
		Voice:  speakVoice,
		Model:  speakModel,
		Format: speakFormat,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	out, err := os.Create(speakOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	n, err := io.Copy(out, stream)
	if err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	slog.Info("Wrote audio", "path", speakOutput, "bytes", n, "content_type", stream.ContentType())
	return nil
}
