package searcher

import "math"

// uct scores the children of a node that has been visited parentVisits times.
type uct struct {
	exploration float64 // c^2 * ln(N)
}

func newUCT(parentVisits int) uct {
	if parentVisits <= 0 {
		panic("cannot score children of an unvisited node")
	}
	return uct{exploration: CSquared * math.Log(float64(parentVisits))}
}

// score is wins/n + sqrt(c^2*ln(N)/n). Unvisited children have no score and
// must be selected before any scoring happens.
func (u uct) score(wins, visits int) float64 {
	if visits == 0 {
		panic("cannot score an unvisited child")
	}
	n := float64(visits)
	return float64(wins)/n + math.Sqrt(u.exploration/n)
}
