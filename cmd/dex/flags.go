package main

import (
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// parseTypeFlags validates --type values into a tag set.
func parseTypeFlags(names []string) (entities.TagSet, error) {
	tags, err := entities.ParseTagSet(names)
	if err != nil {
		return nil, fmt.Errorf("invalid --type: %w (see 'dex types')", err)
	}
	return tags, nil
}
