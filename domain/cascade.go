package domain

// CascadeResult reports the outcome of a cascade delete. FailedIDs carries the
// descendants that could not be removed; the cascade still runs to completion,
// so a non-empty FailedIDs means completed-with-warnings, not total failure.
type CascadeResult struct {
	DeletedAudios        int      `json:"deletedAudios"`
	DeletedSubcategories int      `json:"deletedSubcategories"`
	FailedIDs            []string `json:"failedIds,omitempty"`
}

func (r *CascadeResult) Partial() bool {
	return len(r.FailedIDs) > 0
}
