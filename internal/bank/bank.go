// Package bank provides deterministic question selection over an
// immutable pool. Selection is a pure function of (seed, index); the bank
// holds no mutable state, which keeps replays bit-identical across nodes.
package bank

import (
	"github.com/quizlabs/triviacore/internal/models"
)

// Error is a typed error for question bank failures
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrEmptyPool indicates the bank was created with no questions
	ErrEmptyPool Error = "question pool is empty"

	// ErrQuestionBankExhausted indicates the requested index exceeds the
	// pool size; callers must size the game's round count accordingly
	ErrQuestionBankExhausted Error = "question bank exhausted"
)

// Bank is an immutable, ordered pool of questions
type Bank struct {
	pool []*models.Question
}

// New creates a bank over the given pool. The pool is copied so later
// mutation of the input slice cannot affect selection.
func New(pool []*models.Question) (*Bank, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	questions := make([]*models.Question, len(pool))
	copy(questions, pool)

	return &Bank{pool: questions}, nil
}

// Size returns the number of questions in the pool
func (b *Bank) Size() int {
	return len(b.pool)
}

// Select returns the question for the given seed and round index. The
// same (seed, index) pair always yields the same question, and distinct
// indexes below the pool size yield distinct questions.
func (b *Bank) Select(seed uint64, index int) (*models.Question, error) {
	if index < 0 || index >= len(b.pool) {
		return nil, ErrQuestionBankExhausted
	}

	n := uint64(len(b.pool))
	pos := (seed%n + uint64(index)) % n

	return b.pool[pos], nil
}
