package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kernel/steam-collections/internal/config"
	"github.com/kernel/steam-collections/internal/steam"
	"github.com/kernel/steam-collections/pkg/util"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type candidateStatus struct {
	Path     string `json:"path"`
	Valid    bool   `json:"valid"`
	Selected bool   `json:"selected"`
}

// LocateReport describes what steam-collections would read on this machine.
type LocateReport struct {
	Candidates []candidateStatus `json:"candidates"`
	SteamPath  string            `json:"steam_path"`
	StorePath  string            `json:"store_path"`
	StoreSize  int64             `json:"store_size"`
	UserIDs    []string          `json:"user_ids"`
}

type LocateInput struct {
	Home   string
	Output string
}

type LocateCmd struct {
	out io.Writer
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show where Steam and its Local Storage database were found",
	Long: `Show every place a Steam install is looked for, which one is used, the
Steam user IDs found under its userdata directory and the Local Storage
database that would be scanned.`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringP("output", "o", "", "Output format (json)")
	rootCmd.AddCommand(locateCmd)
}

func buildLocateReport(home string) LocateReport {
	steamPath := steam.FindInstallPath(home)
	report := LocateReport{
		SteamPath: steamPath,
		Candidates: lo.Map(steam.CandidatePaths(home), func(path string, _ int) candidateStatus {
			return candidateStatus{
				Path:     path,
				Valid:    steam.IsValidInstallPath(path),
				Selected: path == steamPath,
			}
		}),
	}
	if steamPath == "" {
		return report
	}

	report.StorePath = steam.LocalStoragePath(steamPath)
	if size, err := util.DirSize(report.StorePath); err == nil {
		report.StoreSize = size
	} else {
		pterm.Debug.Printf("Could not stat Local Storage database: %v\n", err)
	}

	ids, err := steam.ListUserIDs(steamPath)
	if err != nil {
		pterm.Debug.Printf("Could not list Steam user IDs: %v\n", err)
	}
	report.UserIDs = ids
	return report
}

func (l LocateCmd) Run(in LocateInput) error {
	if in.Output != "" && in.Output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}

	report := buildLocateReport(in.Home)

	if in.Output == "json" {
		enc := json.NewEncoder(l.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	rows := pterm.TableData{{"Candidate", "Valid", "Selected"}}
	for _, c := range report.Candidates {
		rows = append(rows, []string{c.Path, yesNo(c.Valid), yesNo(c.Selected)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).WithWriter(l.out).Render(); err != nil {
		return err
	}

	if report.SteamPath == "" {
		return userFacing("No Steam install found. Is Steam installed for this user?", steam.ErrInstallNotFound)
	}

	details := pterm.TableData{
		{"Property", "Value"},
		{"Steam Path", report.SteamPath},
		{"Local Storage", report.StorePath},
		{"Local Storage Size", util.FormatBytes(report.StoreSize)},
		{"User IDs", util.JoinOrDash(report.UserIDs...)},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(details).WithWriter(l.out).Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	l := LocateCmd{out: os.Stdout}
	return l.Run(LocateInput{
		Home:   cfg.Home,
		Output: output,
	})
}
