// Standard attribute keys for statistical operations.
//
// Using these keys consistently keeps simulation logs filterable: every
// coverage run, power calculation, or model fit logs the same field names.
// Keys follow a hierarchical naming convention ("sim.trials", "data.samples")
// for structured log analysis.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "LinearRegression", "StandardScaler", "CoverageChecker"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "estimate_coverage"
	OperationKey = "stats.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "linear", "montecarlo", "metrics"
	ComponentKey = "stats.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) processed.
	FeaturesKey = "data.features"
)

// Simulation context.
const (
	// TrialsKey is the number of Monte Carlo trials in a run.
	TrialsKey = "sim.trials"

	// SampleSizeKey is the per-trial sample size.
	SampleSizeKey = "sim.sample_size"

	// ConfidenceKey is the nominal confidence level of the interval
	// construction under test.
	ConfidenceKey = "sim.confidence"

	// CoverageKey is the empirical coverage fraction produced by a run.
	CoverageKey = "sim.coverage"

	// SeedKey records the random seed for reproducibility.
	SeedKey = "sim.seed"
)

// Performance metrics.
const (
	// DurationMsKey records execution time in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2ScoreKey records the coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"
)

// Standard operation values.
const (
	OperationFit              = "fit"
	OperationPredict          = "predict"
	OperationTransform        = "transform"
	OperationScore            = "score"
	OperationEstimateCoverage = "estimate_coverage"
	OperationExperimentSize   = "experiment_size"
)
