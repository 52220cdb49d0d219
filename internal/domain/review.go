package domain

import (
	"errors"
	"fmt"
	"math"
)

type ReviewerRole string

const (
	ReviewerRoleRenter ReviewerRole = "renter"
	ReviewerRoleVendor ReviewerRole = "vendor"
)

func (r ReviewerRole) Valid() bool {
	return r == ReviewerRoleRenter || r == ReviewerRoleVendor
}

// Other returns the counterpart role on the same booking.
func (r ReviewerRole) Other() ReviewerRole {
	if r == ReviewerRoleRenter {
		return ReviewerRoleVendor
	}
	return ReviewerRoleRenter
}

const MaxReviewCommentLen = 500

// ReviewCriteria lists the criterion keys each role must score. A renter
// rates the vendor's equipment and service; a vendor rates the renter's
// handling of the rental.
func ReviewCriteria(role ReviewerRole) []string {
	if role == ReviewerRoleRenter {
		return []string{"equipment_condition", "inventory_accuracy", "communication", "punctuality"}
	}
	return []string{"equipment_care", "return_time", "adherence_to_terms", "communication"}
}

var (
	ErrUnknownCriterion   = errors.New("unknown review criterion")
	ErrIncompleteCriteria = errors.New("all criteria must be rated")
	ErrScoreOutOfRange    = errors.New("criterion score must be between 1 and 5")
	ErrCommentTooLong     = fmt.Errorf("comment exceeds %d characters", MaxReviewCommentLen)
)

// Review is one side's submission for a completed booking. Overall is the
// unrounded mean of the criterion scores; Revealed stays false until the
// counterpart review exists.
type Review struct {
	ID         int32            `json:"id"`
	BookingID  int32            `json:"booking_id"`
	ReviewerID int32            `json:"reviewer_id"`
	RateeID    int32            `json:"ratee_id"`
	Role       ReviewerRole     `json:"role"`
	Scores     map[string]int32 `json:"scores"`
	Comment    string           `json:"comment,omitempty"`
	Overall    float64          `json:"overall"`
	Revealed   bool             `json:"revealed"`
	CreatedOn  string           `json:"created_on"`
}

// ValidateScores checks a submission against the role's criteria set:
// every criterion present, every score in [1,5], nothing extra.
func ValidateScores(role ReviewerRole, scores map[string]int32) error {
	want := ReviewCriteria(role)
	if len(scores) != len(want) {
		return ErrIncompleteCriteria
	}
	for _, key := range want {
		score, ok := scores[key]
		if !ok {
			return ErrIncompleteCriteria
		}
		if score < 1 || score > 5 {
			return ErrScoreOutOfRange
		}
	}
	for key := range scores {
		known := false
		for _, k := range want {
			if k == key {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownCriterion, key)
		}
	}
	return nil
}

// OverallScore is the arithmetic mean of the criterion scores, unrounded.
func OverallScore(scores map[string]int32) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum int32
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// DisplayRating rounds a rating to one decimal for presentation. Storage
// keeps the unrounded value.
func DisplayRating(r float64) float64 {
	return math.Round(r*10) / 10
}

// RatingSummary is the running cross-review aggregate for one user, updated
// in the same transaction as each review insert.
type RatingSummary struct {
	UserID  int32   `json:"user_id"`
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
	Star5   int32   `json:"star_5"`
	Star4   int32   `json:"star_4"`
	Star3   int32   `json:"star_3"`
	Star2   int32   `json:"star_2"`
	Star1   int32   `json:"star_1"`
}

// Add folds a new overall rating into the summary: the new average is
// (sum of historical overalls + overall) / (count + 1), and the histogram
// bucket for the rounded star value is incremented.
func (s *RatingSummary) Add(overall float64) {
	s.Average = (s.Average*float64(s.Count) + overall) / float64(s.Count+1)
	s.Count++
	switch int(math.Round(overall)) {
	case 5:
		s.Star5++
	case 4:
		s.Star4++
	case 3:
		s.Star3++
	case 2:
		s.Star2++
	default:
		s.Star1++
	}
}
