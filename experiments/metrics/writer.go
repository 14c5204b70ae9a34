package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RoundRecord ties a simulated round to the evaluator config it ran
// under.
type RoundRecord struct {
	ID          string // Round UUID
	Config      string
	Penalties   []int
	MoonShooter int
	RoundMetric
}

// RewardRecord is one step reward for one player of one round.
type RewardRecord struct {
	Round  string
	Step   int
	Player int
	Reward float64
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "round_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "config", "steps", "tricks", "illegal_plays", "moon_shooter", "duration", "penalties"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.Config,
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.Tricks),
			strconv.Itoa(record.IllegalPlays),
			strconv.Itoa(record.MoonShooter),
			record.Duration.String(),
			fmt.Sprint(record.Penalties),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRewardRecords(records []RewardRecord) error {
	path := filepath.Join(w.baseDir, "reward_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create reward records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"round", "step", "player", "reward"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write reward records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Round,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.FormatFloat(record.Reward, 'f', 6, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write reward record row: %w", err)
		}
	}

	return nil
}
