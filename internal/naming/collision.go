package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CollisionResolver tracks output paths claimed by input items during a
// single batch run and disambiguates duplicates with " (N)" suffixes, so a
// standalone file and an archive sharing a stem cannot overwrite each
// other. Sequential use by the single batch worker; no locking needed.
type CollisionResolver struct {
	owners map[string]string // output path to the input path that owns it
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{owners: make(map[string]string)}
}

// Resolve returns the final output path for input. An unclaimed path (or
// one already owned by the same input) is returned unchanged; otherwise
// the first free " (N)" variant is claimed.
func (cr *CollisionResolver) Resolve(input, requested string) string {
	owner, taken := cr.owners[requested]
	if !taken || owner == input {
		cr.owners[requested] = input
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if cOwner, exists := cr.owners[candidate]; !exists || cOwner == input {
			cr.owners[candidate] = input
			return candidate
		}
	}
}
