package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weathereats/models"
)

// ReadVenueSeedsFromJSON loads the venue catalog seed file from disk.
func ReadVenueSeedsFromJSON(filePath string) ([]models.VenueSeed, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var seeds []models.VenueSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue seeds: %w", err)
	}
	return seeds, nil
}

// ReadRankRequestFromJSON loads a RankRequest fixture from disk.
func ReadRankRequestFromJSON(filePath string) (*models.RankRequest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var req models.RankRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RankRequest: %w", err)
	}
	return &req, nil
}

// WriteJSONFile writes v as indented JSON.
func WriteJSONFile(filePath string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", filePath, err)
	}
	return nil
}

// PrintRankingPartially prints the top n venues of a ranking.
func PrintRankingPartially(resp *models.RankingResponse, n int) {
	fmt.Printf("Ranked: %v (categories: %v)\n", resp.Ranked, resp.Categories)
	if resp.Error != "" {
		fmt.Printf("Error: %s\n", resp.Error)
	}
	fmt.Printf("Venues: %d\n", resp.Total)
	for i, v := range resp.Venues {
		if i >= n {
			break
		}
		fmt.Printf("%2d. %s\n", i+1, v.ToString())
	}
}
