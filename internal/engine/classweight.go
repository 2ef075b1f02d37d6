package engine

// getClassWeight scores a node's class and id strings against the
// positive/negative catalogs (§4.7). Returns 0 whenever weightClasses
// is false, regardless of the node's class and id. Each attribute contributes
// up to ±25, for a combined range of [-50, +50].
func getClassWeight(e interface{ Attr(string) (string, bool) }, weightClasses bool) int {
	if !weightClasses {
		return 0
	}

	weight := 0
	if class, ok := e.Attr("class"); ok && class != "" {
		if negative.MatchString(class) {
			weight -= ClassWeightNegative
		}
		if positive.MatchString(class) {
			weight += ClassWeightPositive
		}
	}
	if id, ok := e.Attr("id"); ok && id != "" {
		if negative.MatchString(id) {
			weight -= ClassWeightNegative
		}
		if positive.MatchString(id) {
			weight += ClassWeightPositive
		}
	}
	return weight
}
