package domain

// Team представляет именованную команду
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Group представляет группу внутри команды
type Group struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TeamID *int64 `json:"team_id"`
}

// FindTeam ищет команду по ID в списке
func FindTeam(teams []Team, id int64) (Team, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// FindGroup ищет группу по ID в списке
func FindGroup(groups []Group, id int64) (Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}
