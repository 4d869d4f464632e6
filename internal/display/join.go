package display

// JoinResult pairs old and new keys the way a keyed data join does.
type JoinResult struct {
	Update []Pair
	Enter  []int
	Exit   []int
}

// Pair links an index in the old keys to an index in the new ones.
type Pair struct {
	Old, New int
}

// Join matches next against prev by key. The first old occurrence of a key
// is the one that can be matched; later old duplicates exit. Likewise only
// the first new occurrence matches and later new duplicates enter. With
// duplicate keys identities can therefore swap between items that share a
// key.
func Join(prev, next []string) JoinResult {
	old := make(map[string]int, len(prev))
	var res JoinResult
	for i, k := range prev {
		if _, dup := old[k]; dup {
			res.Exit = append(res.Exit, i)
			continue
		}
		old[k] = i
	}

	for i, k := range next {
		if j, ok := old[k]; ok {
			res.Update = append(res.Update, Pair{Old: j, New: i})
			delete(old, k)
			continue
		}
		res.Enter = append(res.Enter, i)
	}

	for i, k := range prev {
		if j, ok := old[k]; ok && j == i {
			res.Exit = append(res.Exit, i)
		}
	}
	return res
}
