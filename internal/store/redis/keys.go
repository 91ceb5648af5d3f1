package redis

const (
	// DefaultStateKey is the key the browser client also uses for its saved state.
	DefaultStateKey = "makerhub_state"
	// KeySuffixBackup is appended to the state key for the previous record.
	KeySuffixBackup = ":prev"
)

// BackupKey returns the key holding the record replaced by the last write.
func BackupKey(stateKey string) string {
	return stateKey + KeySuffixBackup
}
