package waybacknews

import (
	"errors"

	"github.com/mediacloud/waybacknews-go/internal/types"
)

// ErrPagerExhausted is returned by ItemPager.Next after the final page has
// been consumed.
var ErrPagerExhausted = errors.New("pager exhausted")

// IsPagerExhausted reports whether err marks the end of a paginated set.
func IsPagerExhausted(err error) bool { return errors.Is(err, ErrPagerExhausted) }

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrUnsupportedMethod = types.ErrUnsupportedMethod
	ErrMissingField      = types.ErrMissingField
)
