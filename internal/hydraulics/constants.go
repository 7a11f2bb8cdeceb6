package hydraulics

// Physical constants and solver defaults. All quantities are SI.
const (
	G = 9.806 // gravitational acceleration (m/s²)

	// Search domain is clamped to (ε, D-ε) with ε = EdgeFraction·D
	EdgeFraction = 1e-4

	// Seeds, as fractions of the conduit height
	FlowSeedFraction       = 1e-3 // uniform and critical depth
	ConveyanceSeedFraction = 0.95 // depth of maximum conveyance

	// Finite-difference steps, as fractions of the conduit height
	ConveyanceStepFraction = 1e-6 // dQ/dy for the conveyance peak
	NewtonStepFraction     = 1e-7 // Newton slope of the uniform and critical residuals
	PeakNewtonStepFraction = 1e-5 // Newton slope of dQ/dy

	DefaultTolerance     = 1e-10 // relative tolerance on depth and residual
	DefaultMaxIterations = 100
)
