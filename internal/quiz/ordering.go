package quiz

import (
	"math/rand"
	"sort"
)

const orderKeyMod = 1000

// OrderKey is the seeded sort key for a question: (id * seed) mod 1000,
// normalized so a negative seed still lands in [0, 1000). The same
// (question, seed) pair always produces the same key.
func OrderKey(questionID, seed int64) int64 {
	k := (questionID * seed) % orderKeyMod
	if k < 0 {
		k += orderKeyMod
	}
	return k
}

// SortBySeed orders questions by OrderKey ascending, in place. The sort is
// stable: equal keys keep the order the store returned the questions in.
func SortBySeed(questions []Question, seed int64) {
	sort.SliceStable(questions, func(i, j int) bool {
		return OrderKey(questions[i].ID, seed) < OrderKey(questions[j].ID, seed)
	})
}

// Shuffle permutes questions uniformly at random, in place. Each call
// produces a fresh order; only seeded ordering is reproducible.
func Shuffle(questions []Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
