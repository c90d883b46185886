package scan

import (
	"strconv"
	"strings"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// Prices applies the profile's ordered pattern list over the text,
// strips thousands separators, and retains only values passing the
// profile's price band. Values failing the band are discarded silently.
func Prices(text string, p Profile) []int {
	var found []int
	for _, pat := range p.PricePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			if err != nil {
				continue
			}
			if p.AcceptPrice(v) {
				found = append(found, v)
			}
		}
	}
	return found
}

// Range summarizes a price bag. All fields stay absent for an empty
// bag; Average is integer floor division and only computed when the
// profile asks for it.
func Range(prices []int, p Profile) entity.PriceRange {
	var r entity.PriceRange
	if len(prices) == 0 {
		return r
	}
	min, max, sum := prices[0], prices[0], 0
	for _, v := range prices {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	r.Min = entity.IntPtr(min)
	r.Max = entity.IntPtr(max)
	if p.ComputeAverage {
		r.Average = entity.IntPtr(sum / len(prices))
	}
	return r
}
