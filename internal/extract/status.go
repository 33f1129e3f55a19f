package extract

import (
	"slices"
	"strings"
)

// Status describes what a person is listed for.
type Status string

const (
	StatusSanctioned       Status = "sanctioned"
	StatusDebarred         Status = "debarred"
	StatusWanted           Status = "wanted"
	StatusCrimeRelated     Status = "crime-related"
	StatusPEP              Status = "pep"
	StatusPersonOfInterest Status = "person-of-interest"
	StatusInterpolNotice   Status = "interpol-notice"
	StatusDisqualified     Status = "disqualified"
)

// topicStatuses maps FTM topics to statuses, in derivation order.
var topicStatuses = []struct {
	topic  string
	status Status
}{
	{"sanction", StatusSanctioned},
	{"debarment", StatusDebarred},
	{"wanted", StatusWanted},
	{"crime", StatusCrimeRelated},
	{"pep", StatusPEP},
	{"poi", StatusPersonOfInterest},
}

// deriveStatus maps topics to statuses, then adds statuses implied by the
// names of the datasets the entity was published in.
func deriveStatus(topics, datasets []string) []Status {
	statuses := []Status{}
	for _, ts := range topicStatuses {
		if slices.Contains(topics, ts.topic) {
			statuses = append(statuses, ts.status)
		}
	}

	if anyDatasetContains(datasets, "interpol") &&
		!slices.Contains(statuses, StatusWanted) &&
		!slices.Contains(statuses, StatusInterpolNotice) {
		statuses = append(statuses, StatusInterpolNotice)
	}
	if anyDatasetContains(datasets, "pep") && !slices.Contains(statuses, StatusPEP) {
		statuses = append(statuses, StatusPEP)
	}
	if anyDatasetContains(datasets, "disqualified") {
		statuses = append(statuses, StatusDisqualified)
	}
	return statuses
}

func anyDatasetContains(datasets []string, needle string) bool {
	return slices.ContainsFunc(datasets, func(ds string) bool {
		return strings.Contains(strings.ToLower(ds), needle)
	})
}
