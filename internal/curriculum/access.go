package curriculum

// AccessibleLessons computes the set of lesson IDs a user may currently
// open. It is a pure function of the catalog and the arguments and must
// be recomputed on every read; the result is never stored in user state.
//
// Admins see every lesson. For students the catalog is walked in
// module-then-lesson order: administratively hidden lessons are skipped
// without affecting gating, and the walk stops adding lessons after the
// first checkpoint the user has not had validated (that checkpoint
// itself remains accessible). The result is therefore a prefix of the
// non-hidden lessons, truncated at the first unmet checkpoint.
func (c *Catalog) AccessibleLessons(validated, hidden map[string]bool, isAdmin bool) map[string]bool {
	accessible := make(map[string]bool, len(c.lessons))

	if isAdmin {
		for _, l := range c.lessons {
			accessible[l.ID] = true
		}
		return accessible
	}

	blocked := false
	for _, l := range c.lessons {
		if hidden[l.ID] {
			continue
		}
		if blocked {
			continue
		}
		accessible[l.ID] = true
		if l.ValidationRequired && !validated[l.ID] {
			blocked = true
		}
	}
	return accessible
}

// FirstUnmetCheckpoint returns the first non-hidden checkpoint lesson
// the user has not had validated, in catalog order. The second return
// value is false when every checkpoint is met.
func (c *Catalog) FirstUnmetCheckpoint(validated, hidden map[string]bool) (Lesson, bool) {
	for _, l := range c.checkpoints {
		if hidden[l.ID] {
			continue
		}
		if !validated[l.ID] {
			return l, true
		}
	}
	return Lesson{}, false
}
