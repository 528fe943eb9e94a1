// Package staff models the household care staff directory.
package staff

// Member is one person on the household staff.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Status string `json:"status"`
}

// Roster returns the demonstration staff directory.
func Roster() []Member {
	return []Member{
		{ID: "1", Name: "Sunita Didi", Role: "Full-time Nanny", Avatar: "https://picsum.photos/seed/sunita/100/100", Status: "At Home"},
		{ID: "2", Name: "Ramesh Singh", Role: "Driver", Avatar: "https://picsum.photos/seed/ramesh/100/100", Status: "On Duty"},
		{ID: "3", Name: "Leela Devi", Role: "Night Nanny", Avatar: "https://picsum.photos/seed/leela/100/100", Status: "Off Duty"},
	}
}
