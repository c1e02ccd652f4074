package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kupranin/jobswipe/internal/matching"
	"github.com/kupranin/jobswipe/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <candidate.json> <vacancy.json>",
	Short: "Score a candidate/vacancy pair offline",
	Long:  `Load a candidate profile and a vacancy profile from JSON files and print the gate outcome and 0-100 match score.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	var candidate types.CandidateProfile
	if err := loadJSON(args[0], &candidate); err != nil {
		return fmt.Errorf("failed to load candidate profile: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("invalid candidate profile: %w", err)
	}

	var vacancy types.VacancyProfile
	if err := loadJSON(args[1], &vacancy); err != nil {
		return fmt.Errorf("failed to load vacancy profile: %w", err)
	}
	if err := vacancy.Validate(); err != nil {
		return fmt.Errorf("invalid vacancy profile: %w", err)
	}

	score, passed := matching.Evaluate(&candidate, &vacancy)
	if passed {
		fmt.Println("gate: pass")
	} else {
		fmt.Println("gate: fail")
	}
	fmt.Printf("score: %d\n", score)
	return nil
}

func loadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
