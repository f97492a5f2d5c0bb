package sim

import "github.com/sirupsen/logrus"

// AnomalyPair records a capacity increase that produced more faults.
type AnomalyPair struct {
	From SizeFaults `json:"from"`
	To   SizeFaults `json:"to"`
}

// DetectAnomalies looks for Belady's anomaly: policy is evaluated at capacities
// 1..baseCapacity+2, and every consecutive pair where the larger capacity faults more is
// reported, in ascending capacity order.
//
// The boolean is false (and the slice nil) when no such pair exists.
func DetectAnomalies(refs []int, policy Policy, baseCapacity int) ([]AnomalyPair, bool) {
	if len(refs) == 0 {
		return nil, false
	}
	results := Sweep(refs, policy, 1, baseCapacity+2)

	var pairs []AnomalyPair
	for i := 1; i < len(results); i++ {
		if results[i].Faults > results[i-1].Faults {
			pairs = append(pairs, AnomalyPair{From: results[i-1], To: results[i]})
			logrus.Debugf("[%s] anomaly: %d frames -> %d faults, %d frames -> %d faults", policy,
				results[i-1].Size, results[i-1].Faults, results[i].Size, results[i].Faults)
		}
	}
	return pairs, len(pairs) > 0
}
