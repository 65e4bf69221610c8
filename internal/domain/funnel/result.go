package funnel

// ValidationResult is the outcome of checking a stage's exit conditions.
// Reasons is non-empty exactly when Valid is false.
type ValidationResult struct {
	Valid   bool
	Reasons []string
}

func valid() ValidationResult { return ValidationResult{Valid: true} }

func invalid(reasons ...string) ValidationResult {
	return ValidationResult{Reasons: reasons}
}

// TransitionResult is the engine's decision. Exactly one of NewStage and
// Reasons is populated.
type TransitionResult struct {
	Success  bool
	NewStage Stage
	Reasons  []string
}

func succeed(s Stage) TransitionResult {
	return TransitionResult{Success: true, NewStage: s}
}

func fail(reasons ...string) TransitionResult {
	return TransitionResult{Reasons: reasons}
}
