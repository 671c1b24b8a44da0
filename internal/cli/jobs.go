package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/voxa-ai/voxa-go/internal/jobstore"
	"github.com/voxa-ai/voxa-go/voxa"
)

var (
	jobsText  string
	jobsVoice string
	jobsModel string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage async generation jobs",
}

var jobsSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an async generation job and return immediately",
	RunE:  runJobsSubmit,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs recorded in the local registry",
	RunE:  runJobsList,
}

var jobsWaitCmd = &cobra.Command{
	Use:   "wait <job-id>",
	Short: "Poll a job until it finishes and print the audio URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsWait,
}

func init() {
	jobsSubmitCmd.Flags().StringVar(&jobsText, "text", "", "text to synthesize")
	jobsSubmitCmd.Flags().StringVar(&jobsVoice, "voice", "", "voice ID")
	jobsSubmitCmd.Flags().StringVar(&jobsModel, "model", "", "model name")
	_ = jobsSubmitCmd.MarkFlagRequired("text")
	jobsCmd.AddCommand(jobsSubmitCmd, jobsListCmd, jobsWaitCmd)
}

// openStore returns the Redis-backed registry, or nil when not configured.
func openStore() (*jobstore.Store, error) {
	if cfg.Jobs.RedisURL == "" {
		return nil, nil
	}
	return jobstore.New(jobstore.Config{
		URL:      cfg.Jobs.RedisURL,
		Password: cfg.Jobs.RedisPassword,
	})
}

func runJobsSubmit(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	job, err := client.Generations.Create(cmd.Context(), voxa.GenerationParams{
		Text:  jobsText,
		Voice: jobsVoice,
		Model: jobsModel,
	})
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		rec := &jobstore.Record{
			JobID:          job.ID,
			Voice:          jobsVoice,
			Model:          jobsModel,
			CharacterCount: utf8.RuneCountInString(jobsText),
			SubmittedAt:    time.Now().UTC(),
		}
		if err := store.Add(cmd.Context(), rec); err != nil {
			slog.Warn("Failed to record job in registry", "job_id", job.ID, "error", err)
		}
	}

	slog.Info("Submitted job", "job_id", job.ID, "status", job.Status,
		"estimated_seconds", job.EstimatedSeconds)
	fmt.Println(job.ID)
	return nil
}

func runJobsList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("no job registry configured; set jobs.redis_url in %s", cfgPath)
	}
	defer store.Close()

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "JOB ID\tVOICE\tMODEL\tCHARS\tSUBMITTED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			r.JobID, r.Voice, r.Model, r.CharacterCount, r.SubmittedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func runJobsWait(cmd *cobra.Command, args []string) error {
	jobID := args[0]

	client, err := newClient()
	if err != nil {
		return err
	}

	job, err := client.Generations.WaitForJobID(cmd.Context(), jobID)
	if err != nil {
		return err
	}

	store, serr := openStore()
	if serr == nil && store != nil {
		defer store.Close()
		if rerr := store.Remove(cmd.Context(), jobID); rerr != nil {
			slog.Warn("Failed to remove job from registry", "job_id", jobID, "error", rerr)
		}
	}

	slog.Info("Job completed", "job_id", job.ID)
	fmt.Println(job.AudioURL)
	return nil
}
