package shared //nolint:revive // internal shared package is intentional

// DistanceMetric defines the distance function between two vectors.
type DistanceMetric string

const (
	// DistanceL2 represents Euclidean (L2) distance.
	DistanceL2 DistanceMetric = "l2"

	// DistanceCosine represents cosine distance (1 - cosine similarity).
	DistanceCosine DistanceMetric = "cosine"

	// DistanceInnerProduct represents negated inner product (dot product) distance.
	DistanceInnerProduct DistanceMetric = "inner_product"
)
