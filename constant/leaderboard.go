package constant

// Leaderboard limits
const (
	// LeaderboardCapacity is the default number of records kept after load
	LeaderboardCapacity = 100

	// MaxNameLength is the longest accepted player name in runes
	MaxNameLength = 49

	// LeaderboardPageSize is the number of rows shown per leaderboard page
	LeaderboardPageSize = 20
)
