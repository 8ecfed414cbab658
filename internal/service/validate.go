package service

import (
	"math"
	"regexp"
	"strings"
)

const (
	MinWorkoutNameLength  = 1
	MaxWorkoutNameLength  = 50
	MaxExerciseNameLength = 100
	MaxNoteLength         = 500
	MinReps               = 0
	MaxReps               = 1000
	MinWeight             = 0
	MaxWeight             = 2000 // lbs
)

const DefaultWorkoutColor = "#F97316"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidateWorkoutName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= MinWorkoutNameLength && len(trimmed) <= MaxWorkoutNameLength
}

func ValidateExerciseName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= 1 && len(trimmed) <= MaxExerciseNameLength
}

func ValidateReps(reps int) bool {
	return reps >= MinReps && reps <= MaxReps
}

func ValidateWeight(weight float64) bool {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return false
	}
	return weight >= MinWeight && weight <= MaxWeight
}

// GenerateLabel derives the 1-2 letter calendar badge from a workout
// name: first letters of the first two words, or the first two letters
// of a single word, uppercased. Empty input yields "W".
func GenerateLabel(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "W"
	}
	first := []rune(words[0])
	if len(words) >= 2 {
		second := []rune(words[1])
		return strings.ToUpper(string(first[:1]) + string(second[:1]))
	}
	if len(first) == 1 {
		return strings.ToUpper(string(first))
	}
	return strings.ToUpper(string(first[:2]))
}
