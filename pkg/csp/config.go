package csp

// SolverConfig holds solver parameters.
//
// Forward checking is the default; disabling it yields plain chronological
// backtracking, which visits more nodes but must produce exactly the same
// solution set for the same variable order.
type SolverConfig struct {
	// ForwardChecking prunes future variables' domains after each
	// successful assignment, restoring them on backtrack.
	ForwardChecking bool
}

// DefaultSolverConfig returns the default configuration.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{ForwardChecking: true}
}
