package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kernel/steam-collections/internal/config"
	"github.com/kernel/steam-collections/internal/steam"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// CollectionsInput is everything a collections lookup needs from the outside world.
type CollectionsInput struct {
	// Home is the directory the Steam install is searched under
	Home string

	// UserID is used verbatim, even when empty, if HasUserID is set
	UserID    string
	HasUserID bool
}

// CollectionsCmd prints the collections fragment of a local Steam install.
type CollectionsCmd struct {
	out io.Writer
}

func (c CollectionsCmd) Run(ctx context.Context, in CollectionsInput) error {
	steamPath := steam.FindInstallPath(in.Home)
	if steamPath == "" {
		return userFacing("Could not find Steam install path, exiting...", steam.ErrInstallNotFound)
	}
	pterm.Debug.Printf("Using Steam install at %s\n", steamPath)

	userID, err := resolveUserID(steamPath, in)
	if err != nil {
		return userFacing("Could not determine your Steam user ID. Pass it as an argument.", err)
	}

	storePath := steam.LocalStoragePath(steamPath)
	pterm.Debug.Printf("Scanning %s for user %s\n", storePath, userID)

	rec, found, err := steam.FindRecord(ctx, storePath, steam.CloudStorageNeedles(userID)...)
	if err != nil {
		if errors.Is(err, steam.ErrStoreUnavailable) {
			return userFacing("Could not connect to DB! Maybe Steam is running?", err)
		}
		return err
	}
	if !found {
		return userFacing(fmt.Sprintf("No collections found for Steam user %s", userID), steam.ErrRecordNotFound)
	}
	pterm.Debug.Printf("Matched key %q\n", rec.Key)

	fragment, err := steam.ExtractFragment(rec.Value)
	if err != nil {
		return userFacing(fmt.Sprintf("Collections record for Steam user %s is malformed", userID), err)
	}

	_, err = fmt.Fprintln(c.out, fragment)
	return err
}

// resolveUserID prefers the supplied ID and falls back to guessing from userdata.
func resolveUserID(steamPath string, in CollectionsInput) (string, error) {
	if in.HasUserID {
		return in.UserID, nil
	}

	guessed, err := steam.GuessUserID(steamPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", steam.ErrUserIDUnknown, err)
	}
	if guessed == "" {
		return "", steam.ErrUserIDUnknown
	}
	pterm.Debug.Printf("Guessed Steam user ID %s\n", guessed)
	return guessed, nil
}

// collectionsInput merges the positional argument over the configured user ID. An
// argument is used verbatim, even when it is empty.
func collectionsInput(cfg config.Config, args []string) CollectionsInput {
	in := CollectionsInput{
		Home:      cfg.Home,
		UserID:    cfg.UserID,
		HasUserID: cfg.UserID != "",
	}
	if len(args) > 0 {
		in.UserID = args[0]
		in.HasUserID = true
	}
	return in
}

func runCollections(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c := CollectionsCmd{out: os.Stdout}
	return c.Run(cmd.Context(), collectionsInput(cfg, args))
}
