package models

import "testing"

func reviewsWithRatings(ratings ...int) []Review {
	reviews := make([]Review, len(ratings))
	for i, r := range ratings {
		reviews[i].Rating = r
	}
	return reviews
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 5.0},
		{"mean of 4 5 3", []int{4, 5, 3}, 4.0},
		{"rounds to one decimal", []int{4, 5, 5}, 4.7},
		{"rounds down", []int{1, 2}, 1.5},
		{"two thirds", []int{5, 5, 4}, 4.7},
		{"one third", []int{5, 4, 4}, 4.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageRating(reviewsWithRatings(tt.ratings...)); got != tt.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}
