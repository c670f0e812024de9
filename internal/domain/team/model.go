package team

// Team is a row of the optional flagg_teams lookup table.
type Team struct {
	ID   string
	Name string
}
