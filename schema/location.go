package schema

// Building is an entry of the school location catalog offered on the
// report form.
type Building struct {
	Name  string   `json:"building"`
	Rooms []string `json:"rooms"`
}

var Buildings = []Building{
	{Name: "Main Building", Rooms: []string{"101", "102", "103", "104", "105", "201", "202", "203", "204", "205"}},
	{Name: "Science Building", Rooms: []string{"Lab-1", "Lab-2", "Lab-3", "301", "302", "303"}},
	{Name: "Arts Building", Rooms: []string{"Studio-1", "Studio-2", "401", "402", "403"}},
	{Name: "Sports Complex", Rooms: []string{"Gym-1", "Gym-2", "Pool Area", "501", "502"}},
}

// KnownLocation reports whether a building/room pair exists in the catalog.
func KnownLocation(building, room string) bool {
	for _, b := range Buildings {
		if b.Name != building {
			continue
		}
		for _, r := range b.Rooms {
			if r == room {
				return true
			}
		}
	}
	return false
}
