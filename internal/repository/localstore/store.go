// Package localstore persists the whole appointment collection as a single
// JSON array in one file, rewritten in full on every mutation. That is the
// intended scale: one operator, one clinic, a few hundred records.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/calendar-api/internal/model"
)

// readAll loads the persisted collection. A missing, unreadable, or corrupt
// file degrades to an empty collection; that is the recovery policy, not an
// error path.
func readAll(path string) []model.Appointment {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", path).Msg("failed to read appointment store")
		}
		return nil
	}

	var appts []model.Appointment
	if err := json.Unmarshal(data, &appts); err != nil {
		log.Error().Err(err).Str("path", path).Msg("appointment store is corrupt, starting empty")
		return nil
	}
	return appts
}

// writeAll rewrites the persisted collection atomically: temp file in the
// same directory, then rename over the target.
func writeAll(path string, appts []model.Appointment) error {
	data, err := json.MarshalIndent(appts, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
