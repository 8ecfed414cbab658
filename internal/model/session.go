package model

// ExecutionSession is the in-progress workout draft. Workout nil means
// idle. LastCompleted is epoch milliseconds of the last finished session,
// 0 when none; it survives the draft being cleared.
type ExecutionSession struct {
	Workout         *Workout        `json:"workout,omitempty"`
	CompletedSetIDs map[string]bool `json:"completedSetIds,omitempty"`
	LastCompleted   int64           `json:"lastCompletedTime,omitempty"`
}

func (s *ExecutionSession) Active() bool {
	return s != nil && s.Workout != nil
}
