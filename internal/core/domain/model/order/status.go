package order

import (
	"ordering/internal/pkg/errs"
)

// Status is the free-text lifecycle label of an order. The set of labels is
// open: administrators may write any non-empty value.
type Status string

// Placed is the label every order starts with.
const Placed Status = "order placed"

// NewStatus validates a label received from a request.
func NewStatus(label string) (Status, error) {
	s := Status(label)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects the empty label. Any other value is accepted.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// TransitionPolicy decides whether an order may move from one status to
// another. It is consulted after authorization, so implementations only judge
// workflow legality.
type TransitionPolicy interface {
	Allow(from, to Status) error
}

// PermissiveTransitions allows any status to follow any other.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allow(_, _ Status) error {
	return nil
}

// TransitionPolicyFunc adapts a plain function to TransitionPolicy.
type TransitionPolicyFunc func(from, to Status) error

func (f TransitionPolicyFunc) Allow(from, to Status) error {
	return f(from, to)
}
