package picker

// LiveSessions returns the number of sessions whose producer is still registered.
func LiveSessions() int { return sessions.live() }
