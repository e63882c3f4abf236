package skipset

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// locateHook is invoked once per level by the leveled walk with the
	// predecessor it settled on.
	locateHook func(level int, pred nodeID)
)
