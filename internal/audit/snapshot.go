package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Snapshot is the serialized-comparable state of a tracked entity at a
// point in time, keyed by column name.
type Snapshot map[string]any

// Capture takes a snapshot of the entity's tracked fields. Call it before
// applying changes to obtain the previous state for an update hook.
func Capture(entity Tracked) Snapshot {
	fields := entity.TrackedFields()
	snap := make(Snapshot, len(fields))
	for k, v := range fields {
		snap[k] = v
	}
	return snap
}

// Encode serializes a snapshot as JSON text for storage in the audit table.
// The encoding lives here, in one place, so it can change without touching
// the recorder logic. json.Marshal emits map keys sorted, which keeps the
// stored text stable across runs.
func Encode(snap Snapshot) (*string, error) {
	if snap == nil {
		return nil, nil
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	s := string(raw)
	return &s, nil
}

// Diff returns the sorted names of fields present in both snapshots whose
// serialized values differ.
func Diff(previous, next Snapshot) ([]string, error) {
	var changed []string
	for name, nextValue := range next {
		prevValue, ok := previous[name]
		if !ok {
			continue
		}
		prevRaw, err := json.Marshal(prevValue)
		if err != nil {
			return nil, fmt.Errorf("comparing field %s: %w", name, err)
		}
		nextRaw, err := json.Marshal(nextValue)
		if err != nil {
			return nil, fmt.Errorf("comparing field %s: %w", name, err)
		}
		if !bytes.Equal(prevRaw, nextRaw) {
			changed = append(changed, name)
		}
	}
	sort.Strings(changed)
	return changed, nil
}
