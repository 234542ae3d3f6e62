package booking

// allowedTransitions enumerates the legal status edges.
//
// pending   -> confirmed (admin accept), cancelled (reject / client cancel)
// confirmed -> completed (admin), cancelled (reject / client cancel),
//              pending (reschedule reverts for re-approval)
// completed and cancelled are terminal.
//
// Hard deletion is not an edge; it removes the record entirely.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
		StatusPending:   true,
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}

// IsTerminal reports whether no transition leads out of s.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}
