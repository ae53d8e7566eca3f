package discord

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// guildCachePath returns the path to the guild command cache.
func guildCachePath(dataDir, guildID string) string {
	return filepath.Join(dataDir, "commands", guildID+".json")
}

// loadGuildCommandHashes loads the guild command cache.
func loadGuildCommandHashes(dataDir, guildID string) map[string]string {
	data := make(map[string]string)

	file, err := os.ReadFile(guildCachePath(dataDir, guildID))
	if err == nil {
		_ = json.Unmarshal(file, &data)
	}
	return data
}

// saveGuildCommandHashes saves the guild command cache.
func saveGuildCommandHashes(dataDir, guildID string, hashes map[string]string) {
	path := guildCachePath(dataDir, guildID)
	os.MkdirAll(filepath.Dir(path), 0755)
	data, _ := json.MarshalIndent(hashes, "", "  ")
	_ = os.WriteFile(path, data, 0644)
}
