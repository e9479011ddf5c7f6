// Package quotes provides stateless random selection from a fixed quote list.
package quotes

import (
	"fmt"
	"math/rand"

	"github.com/resetapp/tracker/pkg/logger"
)

// DefaultQuotes is the built-in motivational quote list. It is fixed at
// process start; nothing mutates it at runtime.
var DefaultQuotes = []string{
	"You are doing better than you think.",
	"Small steps every day.",
	"Just like a phone needs a reboot, so too does your mind deserve a fresh start.",
	"You are not alone in this.",
	"Every day is a new chance to improve.",
	"Your effort is what counts.",
	"In the journey of self-discovery, every reset is a step towards clarity.",
	"Resetting is not failing, it’s learning.",
	"Your past does not define your future.",
	"Embrace the process, not just the outcome.",
	"You are stronger than your challenges.",
	"Every setback is a setup for a comeback.",
	"Believe in the power of starting over.",
	"Your journey is unique, and so is your progress.",
	"Resetting your mind is the first step to resetting your life.",
	"You have the power to change your story.",
	"Resetting is a sign of strength, not weakness.",
	"Every reset is a new beginning.",
	"You are capable of more than you know.",
	"Your mindset is your most powerful tool.",
	"Resetting allows you to refocus on what truly matters.",
	"You are not defined by your mistakes, but by how you rise from them.",
	"Resetting is a chance to realign with your goals.",
	"Your potential is limitless.",
	"Every reset is an opportunity to grow.",
	"You are worthy of a fresh start.",
	"Resetting your mind can lead to breakthroughs.",
	"You have the strength to overcome any obstacle.",
	"Resetting is a journey, not a destination.",
	"Your mindset shapes your reality.",
}

// Service picks quotes uniformly at random. It retains no state between
// calls beyond the immutable list.
type Service struct {
	quotes []string
	log    *logger.Logger
}

// New constructs a quote service. A nil or empty list falls back to
// DefaultQuotes.
func New(quotes []string, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("quotes")
	}
	if len(quotes) == 0 {
		quotes = DefaultQuotes
	}
	return &Service{quotes: quotes, log: log}
}

// Pick returns a uniformly random quote from the list.
func (s *Service) Pick() (string, error) {
	if len(s.quotes) == 0 {
		return "", fmt.Errorf("quote list is empty")
	}
	return s.quotes[rand.Intn(len(s.quotes))], nil
}
