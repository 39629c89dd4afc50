package internals

// score coefficient depends on the contribution type
const ScoreCoefficientLike = 1
const ScoreCoefficientReview = 3
const ScoreCoefficientRestaurant = 5

// ComputeUserScore returns the score earned by a user for the likes and
// reviews they submitted and the restaurants they registered.
func ComputeUserScore(numLikes, numReviews, numRestaurants int) int {
	return ScoreCoefficientLike*numLikes +
		ScoreCoefficientReview*numReviews +
		ScoreCoefficientRestaurant*numRestaurants
}
