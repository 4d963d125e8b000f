package display

import "twentyone/internal/game"

func matchTargets(targets []Target, ev game.Event) []Target {
	if len(targets) == 0 {
		return nil
	}
	out := make([]Target, 0, len(targets))
	for _, target := range targets {
		if target.Sink == nil {
			continue
		}
		if !eventAllowed(target.EventAllowlist, ev.Type) {
			continue
		}
		out = append(out, target)
	}
	return out
}

func eventAllowed(allowlist []game.EventType, evType game.EventType) bool {
	if len(allowlist) == 0 {
		return true
	}
	for _, v := range allowlist {
		if v == evType {
			return true
		}
	}
	return false
}
