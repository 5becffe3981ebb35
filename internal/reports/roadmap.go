package reports

// Per-phase selection bounds. Primary-category items get four slots, other
// categories two, and the combined phase is trimmed to five so
// audience-relevant actions are never crowded out by volume.
const (
	phasePrimaryLimit = 4
	phaseOtherLimit   = 2
	phaseTotalLimit   = 5
)

// ComposeRoadmap applies the two-tier phase selection to each of the three
// roadmap phases.
func ComposeRoadmap(r Roadmap, primary []string) Roadmap {
	return Roadmap{
		Days30: composePhase(r.Days30, primary),
		Days60: composePhase(r.Days60, primary),
		Days90: composePhase(r.Days90, primary),
	}
}

func composePhase(items []RoadmapItem, primary []string) []RoadmapItem {
	primarySet := make(map[string]struct{}, len(primary))
	for _, code := range primary {
		primarySet[code] = struct{}{}
	}

	selected := make([]RoadmapItem, 0, phasePrimaryLimit+phaseOtherLimit)
	for _, item := range items {
		if _, ok := primarySet[item.Category]; ok {
			selected = append(selected, item)
			if len(selected) == phasePrimaryLimit {
				break
			}
		}
	}
	others := 0
	for _, item := range items {
		if _, ok := primarySet[item.Category]; ok {
			continue
		}
		selected = append(selected, item)
		others++
		if others == phaseOtherLimit {
			break
		}
	}

	if len(selected) > phaseTotalLimit {
		selected = selected[:phaseTotalLimit]
	}
	return selected
}
