package spec

// Merge unions toMerge into master at the path/method level and returns
// master. Paths missing from master are copied wholesale; for paths present
// in both, only methods missing from master are copied. Master wins every
// conflict; an individual operation's internals are never deep-merged here.
func Merge(master, toMerge *Spec) *Spec {
	if master.Paths == nil {
		master.Paths = make(Paths)
	}
	for _, path := range toMerge.SortedPaths() {
		item, ok := master.Paths[path]
		if !ok {
			master.Paths[path] = toMerge.Paths[path]
			continue
		}
		for _, method := range toMerge.Paths[path].SortedMethods() {
			if _, ok := item[method]; !ok {
				item[method] = toMerge.Paths[path][method]
			}
		}
	}
	return master
}
