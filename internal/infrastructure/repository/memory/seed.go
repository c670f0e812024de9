package memory

import "github.com/mittlag/flaggstats/internal/domain/team"

// SeedTeams provides a small roster so local runs without a database still
// resolve readable names in standings and game history.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "GGI", Name: "Gothenburg Giants"},
		{ID: "SST", Name: "Stockholm Stars"},
		{ID: "MAL", Name: "Malmo Hurricanes"},
		{ID: "UPP", Name: "Uppsala Bears"},
		{ID: "ORE", Name: "Orebro Black Knights"},
		{ID: "LIN", Name: "Linkoping Wildcats"},
	}
}
