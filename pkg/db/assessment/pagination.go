package assessment

type PaginationInfos struct {
	TotalCount  int64 `json:"totalCount"`
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	PageSize    int64 `json:"pageSize"`
}

func prepPaginationInfos(totalCount int64, page int64, limit int64) *PaginationInfos {
	if limit < 1 {
		limit = 10
	}
	totalPages := totalCount / limit
	if totalCount%limit > 0 {
		totalPages += 1
	}
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return &PaginationInfos{
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    limit,
	}
}
