package domain

import "context"

type TotalCounts struct {
	Categories    int64 `json:"totalNumOfCategory"`
	SubCategories int64 `json:"totalNumOfSubCategory"`
	Audios        int64 `json:"totalNumOfAudio"`
}

type StatsUsecase interface {
	Totals(ctx context.Context) (TotalCounts, error)
}
