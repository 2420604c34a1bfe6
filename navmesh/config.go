package navmesh

const DefaultEpsilonContainsTest = 1e-3

type Config struct {
	// MergeConvexRegions merges adjacent polygons into larger convex regions
	// during Build. When false every input polygon becomes its own region.
	MergeConvexRegions bool `yaml:"merge_convex_regions"`
	// EpsilonContainsTest is the tolerance used when resolving which region
	// contains a point.
	EpsilonContainsTest float32 `yaml:"epsilon_contains_test"`
}

func DefaultConfig() Config {
	return Config{
		MergeConvexRegions:  true,
		EpsilonContainsTest: DefaultEpsilonContainsTest,
	}
}
