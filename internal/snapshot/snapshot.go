// Package snapshot serializes the whole dataset to and from a versioned
// JSON envelope. The original storage model is wholesale read/write, so
// backups work the same way: one file, the entire state.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// Version is the current envelope version.
const Version = 1

// Envelope wraps a dataset with enough metadata to validate an import.
type Envelope struct {
	Version    int           `json:"version"`
	ExportedAt time.Time     `json:"exported_at"`
	Data       model.Dataset `json:"data"`
}

// Export writes the dataset as indented JSON.
func Export(ds model.Dataset, w io.Writer) error {
	env := Envelope{
		Version:    Version,
		ExportedAt: time.Now().UTC(),
		Data:       ds,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Import reads and validates a snapshot envelope.
func Import(r io.Reader) (model.Dataset, error) {
	var env Envelope
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return model.Dataset{}, fmt.Errorf("decoding snapshot: %w", err)
	}

	if env.Version != Version {
		return model.Dataset{}, fmt.Errorf("unsupported snapshot version %d (expected %d)", env.Version, Version)
	}

	if err := validate(env.Data); err != nil {
		return model.Dataset{}, err
	}
	return env.Data, nil
}

// validate rejects datasets with tags outside the closed enumerations so
// a hand-edited file fails at import, not mid-calculation.
func validate(ds model.Dataset) error {
	for _, a := range ds.Accounts {
		if _, err := model.ParseAccountCategory(string(a.Category)); err != nil {
			return fmt.Errorf("account %q: %w", a.Name, err)
		}
	}
	for _, b := range ds.Bills {
		if !b.Frequency.ValidForBill() {
			return fmt.Errorf("bill %q: invalid bill frequency %q", b.Name, b.Frequency)
		}
		if b.Amount < 0 {
			return fmt.Errorf("bill %q: negative amount", b.Name)
		}
	}
	for _, d := range ds.Debts {
		if d.Balance < 0 || d.MinimumPayment < 0 {
			return fmt.Errorf("debt %q: negative balance or payment", d.Name)
		}
	}
	if ds.Settings.PayFrequency != "" && !ds.Settings.PayFrequency.Valid() {
		return fmt.Errorf("settings: unknown pay frequency %q", ds.Settings.PayFrequency)
	}
	return nil
}
