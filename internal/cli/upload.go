package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/voxa-ai/voxa-go/voxa"
)

var (
	uploadName    string
	uploadPurpose string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a reference audio file",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "display name (defaults to the file name)")
	uploadCmd.Flags().StringVar(&uploadPurpose, "purpose", "voice_clone", "file purpose")
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	name := uploadName
	if name == "" {
		name = filepath.Base(path)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	uploaded, err := client.Files.Upload(cmd.Context(), voxa.UploadParams{
		Name:     name,
		Purpose:  uploadPurpose,
		Filename: filepath.Base(path),
		Content:  f,
	})
	if err != nil {
		return err
	}

	slog.Info("Uploaded file", "id", uploaded.ID, "name", uploaded.Name, "bytes", uploaded.SizeBytes)
	return nil
}
