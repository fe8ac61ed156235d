package restaurant

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

const (
	MinSlugLength = 3
	MaxSlugLength = 63
)

var (
	ErrSlugIsNotConstructed = errors.New("Slug must be created via NewSlug constructor")

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slug is the URL-safe public handle of a restaurant: lowercase letters,
// digits and single inner hyphens.
type Slug struct {
	value string
	guard guard.ConstructorGuard
}

// NewSlug trims and lowercases s before validating it.
func NewSlug(s string) (Slug, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return Slug{}, errs.NewValueIsRequiredError("slug")
	}
	if n := len(v); n < MinSlugLength || n > MaxSlugLength {
		return Slug{}, errs.NewValueIsOutOfRangeError("slug length", n, MinSlugLength, MaxSlugLength)
	}
	if !slugPattern.MatchString(v) {
		return Slug{}, errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q must contain only a-z, 0-9 and inner hyphens", v))
	}
	return Slug{value: v, guard: guard.NewConstructorGuard()}, nil
}

func (s Slug) String() string {
	return s.value
}

func (s Slug) IsEqual(other Slug) bool {
	return s.value == other.value
}

func (s Slug) Validate() error {
	return s.guard.Validate(ErrSlugIsNotConstructed)
}
