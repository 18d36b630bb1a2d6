package rules

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID validates a canonical 36-character UUID string, returning it
// normalized to lowercase. Length and hyphen positions are checked before
// parsing to reject most garbage cheaply.
func UUID() Rule {
	return New("uuid", func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a UUID string, got %T", value)
		}
		if len(s) != 36 {
			return nil, fmt.Errorf("must be a valid UUID, got %q", s)
		}
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return nil, fmt.Errorf("must be a valid UUID, got %q", s)
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("must be a valid UUID, got %q", s)
		}
		return u.String(), nil
	})
}
