package reconcile

// ComputeDiff returns the names to create and delete so target ends up equal
// to source as a set. ToCreate keeps source order and ToDelete keeps target
// order. Duplicates in either input are reported once.
func ComputeDiff(source, target []string) Diff {
	sourceSet := buildSet(source)
	targetSet := buildSet(target)

	diff := Diff{
		ToCreate: []string{},
		ToDelete: []string{},
	}

	seen := make(map[string]struct{}, len(source))
	for _, name := range source {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, exists := targetSet[name]; !exists {
			diff.ToCreate = append(diff.ToCreate, name)
		}
	}

	seen = make(map[string]struct{}, len(target))
	for _, name := range target {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, exists := sourceSet[name]; !exists {
			diff.ToDelete = append(diff.ToDelete, name)
		}
	}

	return diff
}

// buildSet creates a membership set from names.
func buildSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
