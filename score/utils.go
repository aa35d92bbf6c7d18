package score

// ChangeRate returns the percent change from old to new. A zero baseline
// maps to 0 when nothing changed and to 100 when something appeared.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		}
		return float64(100)
	}

	return (new - old) / old * 100
}
